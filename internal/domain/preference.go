package domain

import "time"

// ListPreference is the stored sort choice of one user for one goal table.
type ListPreference struct {
	UserID    int64
	List      string
	SortKey   string
	Direction string
	UpdatedAt time.Time
}
