package service

import (
	"context"

	"Motiv/internal/cache"
	dom "Motiv/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Stake limits in toman used when the backend does not send its own.
const (
	DefaultMinGoalValue = 100_000
	DefaultMaxGoalValue = 10_000_000
)

// CatalogService serves the data every visitor shares: goal rules and the
// charity list.
type CatalogService struct {
	backend Backend
	cache   *cache.GoalCache
	sf      singleflight.Group
	log     *zap.Logger
}

// NewCatalogService creates a CatalogService. If c is nil, caching is disabled.
func NewCatalogService(b Backend, c *cache.GoalCache, log *zap.Logger) *CatalogService {
	return &CatalogService{backend: b, cache: c, log: log}
}

// Rules returns the goal rules. Hour limits are passed through as sent so
// that missing ones fail closed downstream.
func (s *CatalogService) Rules(ctx context.Context) (dom.Rules, error) {
	ctx = context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do("rules", func() (interface{}, error) {
		if s.cache != nil {
			r, ok, err := s.cache.GetRules(ctx)
			if err != nil {
				s.log.Warn("rules cache read failed", zap.Error(err))
			}
			if ok {
				return r, nil
			}
		}
		r, err := s.backend.GetConfig(ctx)
		if err != nil {
			return dom.Rules{}, translate(err)
		}
		r = withAmountDefaults(r)
		if s.cache != nil {
			_ = s.cache.SetRules(ctx, r)
		}
		return r, nil
	})
	if err != nil {
		return dom.Rules{}, err
	}
	return v.(dom.Rules), nil
}

func withAmountDefaults(r dom.Rules) dom.Rules {
	if r.MinGoalValue <= 0 {
		r.MinGoalValue = DefaultMinGoalValue
	}
	if r.MaxGoalValue <= 0 {
		r.MaxGoalValue = DefaultMaxGoalValue
	}
	return r
}

// Charities returns the donation targets.
func (s *CatalogService) Charities(ctx context.Context) ([]dom.Charity, error) {
	ctx = context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do("charities", func() (interface{}, error) {
		if s.cache != nil {
			if list, err := s.cache.GetCharities(ctx); err == nil && list != nil {
				return list, nil
			}
		}
		list, err := s.backend.GetCharities(ctx)
		if err != nil {
			return nil, translate(err)
		}
		if s.cache != nil {
			_ = s.cache.SetCharities(ctx, list)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Charity), nil
}
