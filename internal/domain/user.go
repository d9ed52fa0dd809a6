package domain

import "time"

// User is the profile of the signed-in account as returned by the backend.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Session is the server-side auth state for one browser. It is the only
// holder of the backend access token.
type Session struct {
	ID        string
	Token     string
	UserID    int64
	Phone     string
	ExpiresAt time.Time
	RefreshAt time.Time
	CreatedAt time.Time
}
