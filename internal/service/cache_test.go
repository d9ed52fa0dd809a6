package service

import (
	"context"
	"testing"
	"time"

	"Motiv/internal/backend"
	"Motiv/internal/cache"
	dom "Motiv/internal/domain"
	"Motiv/internal/goalsort"
	"Motiv/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var supervisor = dom.Session{ID: "s2", Token: "tok2", UserID: 9, Phone: "09127654321"}

func newCachedGoalService(t *testing.T, b *fakeBackend, c *cache.GoalCache, now time.Time) *GoalService {
	t.Helper()
	conv, err := money.NewConverter(money.DefaultRatio)
	require.NoError(t, err)
	log := zap.NewNop()
	s := NewGoalService(b, NewCatalogService(b, c, log), nil, c, conv, log)
	s.now = func() time.Time { return now }
	return s
}

func TestGoalService_ListServedFromCache(t *testing.T) {
	now := tehran(2025, time.October, 16, 10)
	c, mr := newRedisCache(t)
	b := &fakeBackend{rules: testRules, goals: []dom.Goal{{ID: 1, Deadline: at(now.Add(48 * time.Hour))}}}
	s := newCachedGoalService(t, b, c, now)
	ctx := context.Background()

	_, err := s.List(ctx, owner, goalsort.ListGoals, 0, nil)
	require.NoError(t, err)
	assert.True(t, mr.Exists(cache.ListKey(owner.UserID, "goals", 0)))

	res, err := s.List(ctx, owner, goalsort.ListGoals, 0, nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, b.goalsCalls)
}

func TestGoalService_CreateEvictsSupervisorPages(t *testing.T) {
	now := tehran(2025, time.October, 16, 10)
	c, mr := newRedisCache(t)
	b := &fakeBackend{rules: testRules}
	s := newCachedGoalService(t, b, c, now)
	ctx := context.Background()

	_, err := s.List(ctx, supervisor, goalsort.ListSupervisions, 0, nil)
	require.NoError(t, err)
	_, err = s.List(ctx, owner, goalsort.ListGoals, 0, nil)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.ListKey(supervisor.UserID, "supervisions", 0)))

	_, err = s.Create(ctx, owner, CreateGoalInput{
		Title:           "Run 5k",
		Deadline:        "1404/08/01",
		Amount:          500_000,
		SupervisorPhone: supervisor.Phone,
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.ListKey(supervisor.UserID, "supervisions", 0)))
	assert.False(t, mr.Exists(cache.ListKey(owner.UserID, "goals", 0)))

	// The new goal shows up on the supervisor's next read.
	b.goals = []dom.Goal{{ID: 11, SupervisorPhone: supervisor.Phone, Deadline: at(now.Add(15 * 24 * time.Hour))}}
	res, err := s.List(ctx, supervisor, goalsort.ListSupervisions, 0, nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(11), res.Items[0].Goal.ID)
}

func TestGoalService_SuperviseEvictsOwnerPages(t *testing.T) {
	now := tehran(2025, time.October, 16, 10)
	c, mr := newRedisCache(t)
	b := &fakeBackend{rules: testRules, goal: dom.Goal{
		ID: 3, CreatorPhone: owner.Phone, SupervisorPhone: supervisor.Phone, Deadline: at(now.Add(time.Hour)),
	}}
	s := newCachedGoalService(t, b, c, now)
	ctx := context.Background()

	_, err := s.List(ctx, owner, goalsort.ListGoals, 0, nil)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.ListKey(owner.UserID, "goals", 0)))

	_, err = s.Supervise(ctx, supervisor, 3, true, "")
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.ListKey(owner.UserID, "goals", 0)))
}

func TestGoalService_SharedLoadOutlivesCanceledCaller(t *testing.T) {
	now := tehran(2025, time.October, 16, 10)
	b := &fakeBackend{rules: testRules, goals: []dom.Goal{{ID: 1}}}
	s := newGoalService(t, b, nil, now)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.List(ctx, owner, goalsort.ListGoals, 0, nil)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
}

func TestCatalogService_SharedLoadOutlivesCanceledCaller(t *testing.T) {
	b := &fakeBackend{rules: testRules, charities: []dom.Charity{{ID: 1, Name: "Mahak"}}}
	s := NewCatalogService(b, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := s.Rules(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(24), r.SupervisionTimeoutHours)

	list, err := s.Charities(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCatalogService_RulesCached(t *testing.T) {
	c, mr := newRedisCache(t)
	b := &fakeBackend{rules: testRules}
	s := NewCatalogService(b, c, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := s.Rules(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, b.configCalls)
	assert.Equal(t, time.Hour, mr.TTL("motiv:rules"))
}

func TestUserService_LogoutEvictsOwnPages(t *testing.T) {
	c, mr := newRedisCache(t)
	ctx := context.Background()
	require.NoError(t, c.SetGoals(ctx, owner.UserID, "goals", 0, []dom.Goal{{ID: 1}}))
	require.NoError(t, c.SetGoals(ctx, supervisor.UserID, "supervisions", 0, []dom.Goal{{ID: 1}}))

	sessions := &fakeSessions{current: owner}
	s := NewUserService(&fakeBackend{}, sessions, c, zap.NewNop())
	require.NoError(t, s.Logout(ctx, owner.ID))

	assert.Equal(t, []string{owner.ID}, sessions.deleted)
	assert.False(t, mr.Exists(cache.ListKey(owner.UserID, "goals", 0)))
	assert.True(t, mr.Exists(cache.ListKey(supervisor.UserID, "supervisions", 0)))
}

func TestUserService_ProfileChangeEvictsPages(t *testing.T) {
	c, mr := newRedisCache(t)
	ctx := context.Background()
	require.NoError(t, c.SetGoals(ctx, supervisor.UserID, "supervisions", 0, []dom.Goal{{ID: 1, CreatorName: "Sara"}}))

	s := NewUserService(&fakeBackend{user: dom.User{ID: 7, FirstName: "Sara"}}, &fakeSessions{}, c, zap.NewNop())
	_, err := s.UpdateProfile(ctx, owner, backend.ProfileUpdate{FirstName: "Sahar"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.ListKey(supervisor.UserID, "supervisions", 0)))
}
