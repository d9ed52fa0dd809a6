package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	dom "Motiv/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyRules     = "motiv:rules"
	keyCharities = "motiv:charities"
	keyGoals     = "motiv:goals:"
)

// GoalCache caches backend responses in Redis: goal list pages per user,
// the goal rules and the charity list.
type GoalCache struct {
	rdb      *redis.Client
	ttl      time.Duration
	rulesTTL time.Duration
}

// NewGoalCache returns a new GoalCache. ttl applies to goal lists and
// rulesTTL to rules and charities.
func NewGoalCache(rdb *redis.Client, ttl, rulesTTL time.Duration) *GoalCache {
	return &GoalCache{rdb: rdb, ttl: ttl, rulesTTL: rulesTTL}
}

// ListKey identifies one cached page of a goal list.
func ListKey(userID int64, list string, page int) string {
	return keyGoals + strconv.FormatInt(userID, 10) + ":" + list + ":" + strconv.Itoa(page)
}

func userPattern(userID int64) string {
	return keyGoals + strconv.FormatInt(userID, 10) + ":*"
}

// GetGoals returns a cached page or nil if miss.
func (c *GoalCache) GetGoals(ctx context.Context, userID int64, list string, page int) ([]dom.Goal, error) {
	var goals []dom.Goal
	ok, err := c.get(ctx, ListKey(userID, list, page), &goals)
	if err != nil || !ok {
		return nil, err
	}
	if goals == nil {
		goals = []dom.Goal{}
	}
	return goals, nil
}

// SetGoals stores a page in cache.
func (c *GoalCache) SetGoals(ctx context.Context, userID int64, list string, page int, goals []dom.Goal) error {
	return c.set(ctx, ListKey(userID, list, page), goals, c.ttl)
}

// GetRules returns cached rules. ok is false on miss.
func (c *GoalCache) GetRules(ctx context.Context) (dom.Rules, bool, error) {
	var r dom.Rules
	ok, err := c.get(ctx, keyRules, &r)
	return r, ok, err
}

func (c *GoalCache) SetRules(ctx context.Context, r dom.Rules) error {
	return c.set(ctx, keyRules, r, c.rulesTTL)
}

// GetCharities returns the cached list or nil if miss.
func (c *GoalCache) GetCharities(ctx context.Context) ([]dom.Charity, error) {
	var list []dom.Charity
	ok, err := c.get(ctx, keyCharities, &list)
	if err != nil || !ok {
		return nil, err
	}
	if list == nil {
		list = []dom.Charity{}
	}
	return list, nil
}

func (c *GoalCache) SetCharities(ctx context.Context, list []dom.Charity) error {
	return c.set(ctx, keyCharities, list, c.rulesTTL)
}

// InvalidateUser removes every cached page of one user.
func (c *GoalCache) InvalidateUser(ctx context.Context, userID int64) error {
	return c.deleteMatching(ctx, userPattern(userID))
}

// InvalidateGoals removes every cached goal page. A supervision decision
// changes lists of both the supervisor and the owner.
func (c *GoalCache) InvalidateGoals(ctx context.Context) error {
	return c.deleteMatching(ctx, keyGoals+"*")
}

func (c *GoalCache) deleteMatching(ctx context.Context, pattern string) error {
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *GoalCache) get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *GoalCache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}
