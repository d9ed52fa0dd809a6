package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dom "Motiv/internal/domain"

	nanoid "github.com/jaevor/go-nanoid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
	sessionIDLength  = 32
)

// ErrNoSession is returned when the session does not exist or has expired.
var ErrNoSession = errors.New("session not found")

// Sessions is what request handling needs from a session store.
type Sessions interface {
	Create(ctx context.Context, s dom.Session) (dom.Session, error)
	Get(ctx context.Context, id string) (dom.Session, error)
	Delete(ctx context.Context, id string) error
}

// Store keeps sessions in Redis. It is the single owner of backend tokens:
// they are written on sign-in and removed on sign-out or expiry.
type Store struct {
	rdb   *redis.Client
	ttl   time.Duration
	newID func() string
	now   func() time.Time
}

// NewStore returns a new session store. ttl caps the lifetime of every
// session.
func NewStore(rdb *redis.Client, ttl time.Duration) (*Store, error) {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	gen, err := nanoid.Standard(sessionIDLength)
	if err != nil {
		return nil, fmt.Errorf("session id generator: %w", err)
	}
	return &Store{rdb: rdb, ttl: ttl, newID: gen, now: time.Now}, nil
}

// Create stores s under a fresh ID and returns it with ID and CreatedAt set.
func (s *Store) Create(ctx context.Context, sess dom.Session) (dom.Session, error) {
	now := s.now()
	sess.ID = s.newID()
	sess.CreatedAt = now

	ttl := lifetime(s.ttl, sess.ExpiresAt, now)
	if ttl <= 0 {
		return dom.Session{}, fmt.Errorf("session: token already expired")
	}
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = now.Add(ttl)
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return dom.Session{}, err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+sess.ID, b, ttl).Err(); err != nil {
		return dom.Session{}, err
	}
	return sess, nil
}

// Get returns the session by ID.
func (s *Store) Get(ctx context.Context, id string) (dom.Session, error) {
	b, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return dom.Session{}, ErrNoSession
	}
	if err != nil {
		return dom.Session{}, err
	}
	var sess dom.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return dom.Session{}, err
	}
	return sess, nil
}

// Delete removes a session by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// lifetime is the Redis TTL for a session: the store cap, shortened to the
// token expiry when that comes first.
func lifetime(limit time.Duration, expiresAt, now time.Time) time.Duration {
	if expiresAt.IsZero() {
		return limit
	}
	return min(limit, expiresAt.Sub(now))
}
