package service

import (
	"context"

	"Motiv/internal/backend"
	dom "Motiv/internal/domain"
)

// Backend is the remote goals API. *backend.Client implements it.
type Backend interface {
	SendCode(ctx context.Context, phone string) (backend.CodeSent, error)
	Auth(ctx context.Context, in backend.AuthRequest) (backend.AuthResult, error)
	GetMe(ctx context.Context, token string) (dom.User, error)
	EditUser(ctx context.Context, token string, in backend.ProfileUpdate) (dom.User, error)
	EditPassword(ctx context.Context, token, password, confirmation string) error

	SetGoal(ctx context.Context, token string, in backend.NewGoal) (string, error)
	GetGoals(ctx context.Context, token string, page int) ([]dom.Goal, error)
	GetSupervisions(ctx context.Context, token string, page int) ([]dom.Goal, error)
	ViewGoal(ctx context.Context, token string, id int64) (dom.Goal, error)
	SuperviseGoal(ctx context.Context, token string, id int64, done bool, note string) (dom.Goal, error)
	GetPayment(ctx context.Context, token string, id int64) (dom.Payment, error)

	GetConfig(ctx context.Context) (dom.Rules, error)
	GetCharities(ctx context.Context) ([]dom.Charity, error)
}

var _ Backend = (*backend.Client)(nil)
