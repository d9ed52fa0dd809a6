package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"Motiv/internal/backend"
	"Motiv/internal/cache"
	"Motiv/internal/calendar"
	dom "Motiv/internal/domain"
	"Motiv/internal/goalsort"
	"Motiv/internal/money"
	"Motiv/internal/repo"
	"Motiv/internal/status"
	"Motiv/internal/validation"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Role is the relation of the signed-in user to a goal.
type Role string

const (
	RoleOwner      Role = "owner"
	RoleSupervisor Role = "supervisor"
	RoleViewer     Role = "viewer"
)

// GoalView is a goal with everything derived from it at one instant.
type GoalView struct {
	Goal        dom.Goal
	AmountMajor int64
	Status      status.Status
	Window      status.SupervisionWindow
	Role        Role
}

// ListResult is one sorted page of a goal table.
type ListResult struct {
	List  goalsort.List
	Page  int
	Sort  goalsort.Config
	Items []GoalView
	At    time.Time
}

// CreateGoalInput is a new goal as entered in the wizard. Deadline is a
// local date ("1404/08/01") and Amount is in toman.
type CreateGoalInput struct {
	Title           string
	Description     string
	Deadline        string
	Amount          int64
	SupervisorPhone string
}

// DeadlineBounds are the first and last days a new goal may end on.
type DeadlineBounds struct {
	First    calendar.Date
	Last     calendar.Date
	MinHours int64
	MaxHours int64
}

// PaymentView is a payment with its amount in toman.
type PaymentView struct {
	Payment     dom.Payment
	AmountMajor int64
}

type GoalService struct {
	backend Backend
	catalog *CatalogService
	prefs   repo.PreferenceRepo
	cache   *cache.GoalCache
	conv    money.Converter
	sf      singleflight.Group
	log     *zap.Logger
	now     func() time.Time
}

// NewGoalService creates a GoalService. If c is nil, caching is disabled; if
// prefs is nil, sort choices are not persisted.
func NewGoalService(b Backend, catalog *CatalogService, prefs repo.PreferenceRepo, c *cache.GoalCache, conv money.Converter, log *zap.Logger) *GoalService {
	return &GoalService{
		backend: b,
		catalog: catalog,
		prefs:   prefs,
		cache:   c,
		conv:    conv,
		log:     log,
		now:     time.Now,
	}
}

// List returns one page of list sorted by requested, or by the stored
// preference when requested is nil.
func (s *GoalService) List(ctx context.Context, sess dom.Session, list goalsort.List, page int, requested *goalsort.Config) (ListResult, error) {
	if page < 0 {
		return ListResult{}, invalid("page must not be negative")
	}
	goals, err := s.fetch(ctx, sess, list, page)
	if err != nil {
		return ListResult{}, err
	}

	var cfg goalsort.Config
	if requested != nil {
		cfg = *requested
	} else {
		cfg = s.SortConfig(ctx, sess.UserID, list)
	}

	now := s.now()
	rules := s.rulesOrEmpty(ctx)
	sorted := goalsort.Sort(goals, cfg, s.conv, now)
	items := make([]GoalView, len(sorted))
	for i, g := range sorted {
		items[i] = s.viewOf(g, sess, rules, now)
	}
	return ListResult{List: list, Page: page, Sort: cfg, Items: items, At: now}, nil
}

func (s *GoalService) fetch(ctx context.Context, sess dom.Session, list goalsort.List, page int) ([]dom.Goal, error) {
	load := func(ctx context.Context) ([]dom.Goal, error) {
		var (
			goals []dom.Goal
			err   error
		)
		switch list {
		case goalsort.ListGoals:
			goals, err = s.backend.GetGoals(ctx, sess.Token, page)
		case goalsort.ListSupervisions:
			goals, err = s.backend.GetSupervisions(ctx, sess.Token, page)
		default:
			return nil, goalsort.ErrUnknownList
		}
		return goals, translate(err)
	}

	// Pages are shared by user ID; without one there is nothing safe to key on.
	if sess.UserID == 0 {
		return load(ctx)
	}

	key := "goals:" + strconv.FormatInt(sess.UserID, 10) + ":" + string(list) + ":" + strconv.Itoa(page)
	// The load is shared by every waiter on key, so it must outlive the caller that started it.
	ctx = context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if s.cache != nil {
			if goals, err := s.cache.GetGoals(ctx, sess.UserID, string(list), page); err == nil && goals != nil {
				return goals, nil
			}
		}
		goals, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			_ = s.cache.SetGoals(ctx, sess.UserID, string(list), page, goals)
		}
		return goals, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Goal), nil
}

// SortConfig returns the stored sort state of list, or its default.
func (s *GoalService) SortConfig(ctx context.Context, userID int64, list goalsort.List) goalsort.Config {
	def := goalsort.DefaultFor(list)
	if s.prefs == nil || userID == 0 {
		return def
	}
	p, err := s.prefs.Get(ctx, userID, string(list))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.log.Warn("load sort preference", zap.Int64("user_id", userID), zap.Error(err))
		}
		return def
	}
	key, err := goalsort.ParseKey(p.SortKey)
	if err != nil {
		return def
	}
	dir, err := goalsort.ParseDirection(p.Direction)
	if err != nil {
		return def
	}
	return goalsort.Config{Key: key, Direction: dir}
}

// ToggleSort applies a column pick to the stored state of list and saves it.
func (s *GoalService) ToggleSort(ctx context.Context, sess dom.Session, list goalsort.List, key goalsort.Key) (goalsort.Config, error) {
	next := s.SortConfig(ctx, sess.UserID, list).Toggle(key)
	if s.prefs == nil || sess.UserID == 0 {
		return next, nil
	}
	_, err := s.prefs.Save(ctx, dom.ListPreference{
		UserID:    sess.UserID,
		List:      string(list),
		SortKey:   string(next.Key),
		Direction: string(next.Direction),
	})
	if err != nil {
		return goalsort.Config{}, fmt.Errorf("save sort preference: %w", err)
	}
	return next, nil
}

// Get returns one goal as seen by the signed-in user.
func (s *GoalService) Get(ctx context.Context, sess dom.Session, id int64) (GoalView, error) {
	g, err := s.view(ctx, sess, id)
	if err != nil {
		return GoalView{}, err
	}
	return s.viewOf(g, sess, s.rulesOrEmpty(ctx), s.now()), nil
}

func (s *GoalService) view(ctx context.Context, sess dom.Session, id int64) (dom.Goal, error) {
	g, err := s.backend.ViewGoal(ctx, sess.Token, id)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			return dom.Goal{}, fmt.Errorf("%w: %s", ErrNotFound, be.Message)
		}
		return dom.Goal{}, translate(err)
	}
	return g, nil
}

// Create validates in against the goal rules and registers the goal. It
// returns the payment URL for the stake.
func (s *GoalService) Create(ctx context.Context, sess dom.Session, in CreateGoalInput) (string, error) {
	rules, err := s.catalog.Rules(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRulesUnavailable, err)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return "", invalid("title is required")
	}

	day, err := calendar.ParseDate(in.Deadline)
	if err != nil {
		return "", invalid("deadline must be a date like 1404/08/01")
	}
	now := s.now()
	if !calendar.IsDeadlineWindowValid(day, rules, now) {
		first, last, ok := calendar.Bounds(rules, now)
		if !ok {
			return "", fmt.Errorf("%w: deadline limits are not configured", ErrRulesUnavailable)
		}
		return "", invalid("deadline must be between %s and %s", first, last)
	}

	if in.Amount < rules.MinGoalValue || in.Amount > rules.MaxGoalValue {
		return "", invalid("amount must be between %d and %d toman", rules.MinGoalValue, rules.MaxGoalValue)
	}

	supervisor := strings.TrimSpace(in.SupervisorPhone)
	if !validation.IsIranianMobile(supervisor) {
		return "", invalid("supervisor phone number is not a valid mobile number")
	}
	if validation.SamePhone(supervisor, sess.Phone) {
		return "", invalid("supervisor must be someone other than you")
	}

	url, err := s.backend.SetGoal(ctx, sess.Token, backend.NewGoal{
		Goal:                  title,
		Description:           strings.TrimSpace(in.Description),
		Value:                 s.conv.ToMinor(in.Amount),
		Deadline:              calendar.EndOfDay(day).Unix(),
		SupervisorPhoneNumber: supervisor,
	})
	if err != nil {
		return "", translate(err)
	}
	// The supervisor's pages change as well as the owner's.
	s.invalidateAll(ctx)
	return url, nil
}

// Supervise records the signed-in supervisor's decision. The viewer must be
// the goal's supervisor and the supervision window must be open.
func (s *GoalService) Supervise(ctx context.Context, sess dom.Session, id int64, done bool, note string) (GoalView, error) {
	g, err := s.view(ctx, sess, id)
	if err != nil {
		return GoalView{}, err
	}
	if !validation.SamePhone(g.SupervisorPhone, sess.Phone) {
		return GoalView{}, ErrNotSupervisor
	}
	rules, err := s.catalog.Rules(ctx)
	if err != nil {
		return GoalView{}, fmt.Errorf("%w: %v", ErrRulesUnavailable, err)
	}

	w := status.Window(g, rules, s.now())
	switch w.State {
	case status.WindowDecided:
		return GoalView{}, ErrAlreadyDecided
	case status.WindowNotYetOpen:
		return GoalView{}, fmt.Errorf("%w: opens at %s", ErrWindowNotOpen, w.OpensAt.Format(time.RFC3339))
	case status.WindowClosed:
		return GoalView{}, ErrWindowClosed
	case status.WindowUnknown:
		return GoalView{}, fmt.Errorf("%w: supervision timeout is not configured", ErrRulesUnavailable)
	}

	updated, err := s.backend.SuperviseGoal(ctx, sess.Token, id, done, strings.TrimSpace(note))
	if err != nil {
		return GoalView{}, translate(err)
	}
	s.invalidateAll(ctx)
	s.log.Info("goal supervised", zap.Int64("goal_id", id), zap.Bool("done", done))

	// The decision response may omit fields the goal already had.
	if updated.ID == 0 {
		updated = g
		decided := s.now()
		updated.SupervisedAt = &decided
		updated.Done = done
		updated.SupervisorNote = strings.TrimSpace(note)
	}
	return s.viewOf(updated, sess, rules, s.now()), nil
}

// Bounds returns the selectable deadline range for a new goal.
func (s *GoalService) Bounds(ctx context.Context) (DeadlineBounds, error) {
	rules, err := s.catalog.Rules(ctx)
	if err != nil {
		return DeadlineBounds{}, fmt.Errorf("%w: %v", ErrRulesUnavailable, err)
	}
	first, last, ok := calendar.Bounds(rules, s.now())
	if !ok {
		return DeadlineBounds{}, fmt.Errorf("%w: deadline limits are not configured", ErrRulesUnavailable)
	}
	return DeadlineBounds{First: first, Last: last, MinHours: rules.MinGoalHours, MaxHours: rules.MaxGoalHours}, nil
}

// Payment returns the status of a stake payment.
func (s *GoalService) Payment(ctx context.Context, sess dom.Session, paymentID int64) (PaymentView, error) {
	p, err := s.backend.GetPayment(ctx, sess.Token, paymentID)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			return PaymentView{}, fmt.Errorf("%w: %s", ErrNotFound, be.Message)
		}
		return PaymentView{}, translate(err)
	}
	return PaymentView{Payment: p, AmountMajor: s.conv.ToMajor(p.AmountMinor)}, nil
}

func (s *GoalService) viewOf(g dom.Goal, sess dom.Session, rules dom.Rules, now time.Time) GoalView {
	return GoalView{
		Goal:        g,
		AmountMajor: s.conv.ToMajor(g.StakeMinor),
		Status:      status.Derive(g, now),
		Window:      status.Window(g, rules, now),
		Role:        roleOf(g, sess),
	}
}

func roleOf(g dom.Goal, sess dom.Session) Role {
	switch {
	case validation.SamePhone(g.SupervisorPhone, sess.Phone):
		return RoleSupervisor
	case validation.SamePhone(g.CreatorPhone, sess.Phone):
		return RoleOwner
	}
	return RoleViewer
}

// rulesOrEmpty never fails a read: without rules the window is Unknown.
func (s *GoalService) rulesOrEmpty(ctx context.Context) dom.Rules {
	r, err := s.catalog.Rules(ctx)
	if err != nil {
		s.log.Warn("goal rules unavailable", zap.Error(err))
		return dom.Rules{}
	}
	return r
}

func (s *GoalService) invalidateAll(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateGoals(ctx)
	}
}
