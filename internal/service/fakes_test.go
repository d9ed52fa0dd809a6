package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"Motiv/internal/backend"
	"Motiv/internal/cache"
	"Motiv/internal/calendar"
	dom "Motiv/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

type fakeBackend struct {
	mu sync.Mutex

	rules     dom.Rules
	rulesErr  error
	charities []dom.Charity
	goals     []dom.Goal
	goalsErr  error
	goal      dom.Goal
	goalErr   error
	user      dom.User
	authErr   error
	callErr   error
	auth      backend.AuthResult

	configCalls int
	goalsCalls  int
	created     []backend.NewGoal
	decisions   []bool
	lastAuth    backend.AuthRequest
}

func (f *fakeBackend) SendCode(_ context.Context, phone string) (backend.CodeSent, error) {
	return backend.CodeSent{PhoneNumber: phone, Timeout: 120}, f.callErr
}

func (f *fakeBackend) Auth(_ context.Context, in backend.AuthRequest) (backend.AuthResult, error) {
	f.lastAuth = in
	if f.authErr != nil {
		return backend.AuthResult{}, f.authErr
	}
	return f.auth, nil
}

func (f *fakeBackend) GetMe(context.Context, string) (dom.User, error) {
	return f.user, f.callErr
}

func (f *fakeBackend) EditUser(_ context.Context, _ string, in backend.ProfileUpdate) (dom.User, error) {
	u := f.user
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	return u, f.callErr
}

func (f *fakeBackend) EditPassword(context.Context, string, string, string) error {
	return f.callErr
}

func (f *fakeBackend) SetGoal(_ context.Context, _ string, in backend.NewGoal) (string, error) {
	f.created = append(f.created, in)
	return "https://pay.example/123", f.callErr
}

func (f *fakeBackend) GetGoals(ctx context.Context, _ string, _ int) ([]dom.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.goalsCalls++
	f.mu.Unlock()
	return f.goals, f.goalsErr
}

func (f *fakeBackend) GetSupervisions(ctx context.Context, token string, page int) ([]dom.Goal, error) {
	return f.GetGoals(ctx, token, page)
}

func (f *fakeBackend) ViewGoal(context.Context, string, int64) (dom.Goal, error) {
	return f.goal, f.goalErr
}

func (f *fakeBackend) SuperviseGoal(_ context.Context, _ string, _ int64, done bool, _ string) (dom.Goal, error) {
	f.decisions = append(f.decisions, done)
	return dom.Goal{}, f.callErr
}

func (f *fakeBackend) GetPayment(_ context.Context, _ string, id int64) (dom.Payment, error) {
	return dom.Payment{GoalID: id, AmountMinor: 5_000_000, Gateway: "zarinpal", TracingCode: "T-1"}, f.goalErr
}

func (f *fakeBackend) GetConfig(ctx context.Context) (dom.Rules, error) {
	if err := ctx.Err(); err != nil {
		return dom.Rules{}, err
	}
	f.mu.Lock()
	f.configCalls++
	f.mu.Unlock()
	return f.rules, f.rulesErr
}

func (f *fakeBackend) GetCharities(ctx context.Context) ([]dom.Charity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.charities, f.callErr
}

type fakePrefs struct {
	stored map[string]dom.ListPreference
	err    error
}

func (f *fakePrefs) Get(_ context.Context, _ int64, list string) (dom.ListPreference, error) {
	if f.err != nil {
		return dom.ListPreference{}, f.err
	}
	p, ok := f.stored[list]
	if !ok {
		return dom.ListPreference{}, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakePrefs) Save(_ context.Context, p dom.ListPreference) (dom.ListPreference, error) {
	if f.err != nil {
		return dom.ListPreference{}, f.err
	}
	if f.stored == nil {
		f.stored = map[string]dom.ListPreference{}
	}
	f.stored[p.List] = p
	return p, nil
}

type fakeSessions struct {
	current dom.Session
	created []dom.Session
	deleted []string
}

func (f *fakeSessions) Create(_ context.Context, s dom.Session) (dom.Session, error) {
	s.ID = "sess-1"
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeSessions) Get(context.Context, string) (dom.Session, error) {
	return f.current, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newRedisCache(t *testing.T) (*cache.GoalCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewGoalCache(rdb, time.Minute, time.Hour), mr
}

func tehran(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, calendar.Location)
}

func at(t time.Time) *time.Time { return &t }
