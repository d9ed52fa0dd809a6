package repo

import (
	"context"

	dom "Motiv/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PreferenceRepo persists per-user sort state of goal tables.
type PreferenceRepo interface {
	// Get returns pgx.ErrNoRows when nothing is stored.
	Get(ctx context.Context, userID int64, list string) (dom.ListPreference, error)
	Save(ctx context.Context, p dom.ListPreference) (dom.ListPreference, error)
}

type PGPreferenceRepo struct {
	db *pgxpool.Pool
}

func NewPGPreferenceRepo(db *pgxpool.Pool) *PGPreferenceRepo {
	return &PGPreferenceRepo{db: db}
}

func (r *PGPreferenceRepo) Get(ctx context.Context, userID int64, list string) (dom.ListPreference, error) {
	query := `
		SELECT user_id, list, sort_key, direction, updated_at
		FROM list_preferences WHERE user_id = $1 AND list = $2`
	var p dom.ListPreference
	err := r.db.QueryRow(ctx, query, userID, list).Scan(
		&p.UserID, &p.List, &p.SortKey, &p.Direction, &p.UpdatedAt,
	)
	return p, err
}

func (r *PGPreferenceRepo) Save(ctx context.Context, p dom.ListPreference) (dom.ListPreference, error) {
	query := `
		INSERT INTO list_preferences (user_id, list, sort_key, direction)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, list)
		DO UPDATE SET sort_key = EXCLUDED.sort_key, direction = EXCLUDED.direction, updated_at = NOW()
		RETURNING user_id, list, sort_key, direction, updated_at`
	var out dom.ListPreference
	err := r.db.QueryRow(ctx, query, p.UserID, p.List, p.SortKey, p.Direction).Scan(
		&out.UserID, &out.List, &out.SortKey, &out.Direction, &out.UpdatedAt,
	)
	return out, err
}
