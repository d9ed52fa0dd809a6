// Package backend is a typed client for the remote goals API. Every endpoint
// is a JSON POST answered with an {ok, data, error} envelope.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	dom "Motiv/internal/domain"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://imotiv.ir/api"

var (
	// ErrUnauthorized means the backend rejected the access token.
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrUnavailable means the backend could not be reached or answered
	// with something that is not an envelope.
	ErrUnavailable = errors.New("backend: unavailable")
)

// Error is a failure reported by the backend inside the envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: status %d", e.Status)
	}
	return "backend: " + e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	now     func() time.Time
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
		now:     time.Now,
	}
}

func call[T any](ctx context.Context, c *Client, token, endpoint string, in any) (T, error) {
	var zero T

	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return zero, fmt.Errorf("encode %s: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, body)
	if err != nil {
		return zero, fmt.Errorf("build %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend call failed", zap.String("endpoint", endpoint), zap.Error(err))
		return zero, fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()
	c.log.Debug("backend call",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return zero, ErrUnauthorized
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return zero, fmt.Errorf("%w: %s: status %d", ErrUnavailable, endpoint, resp.StatusCode)
		}
		return zero, fmt.Errorf("%w: %s: decode: %v", ErrUnavailable, endpoint, err)
	}
	if !env.OK {
		return zero, &Error{Status: resp.StatusCode, Message: env.Error}
	}
	return env.Data, nil
}

// SendCode asks the backend to text an OTP to phone.
func (c *Client) SendCode(ctx context.Context, phone string) (CodeSent, error) {
	return call[CodeSent](ctx, c, "", "/sendCode", map[string]string{"phone_number": phone})
}

// Auth exchanges an OTP code or password for an access token.
func (c *Client) Auth(ctx context.Context, in AuthRequest) (AuthResult, error) {
	out, err := call[authJSON](ctx, c, "", "/auth", in)
	if err != nil {
		return AuthResult{}, err
	}
	if out.AccessToken == "" {
		return AuthResult{}, &Error{Status: http.StatusOK, Message: "empty access token"}
	}
	now := c.now()
	return AuthResult{
		AccessToken: out.AccessToken,
		ExpiresAt:   instant(out.AccessExpire, now),
		RefreshAt:   instant(out.RefreshAfter, now),
		IsNewUser:   out.IsNewUser,
	}, nil
}

// instant reads v as a Unix timestamp, or as seconds from now when it is too
// small to be one. Zero stays zero.
func instant(v int64, now time.Time) time.Time {
	switch {
	case v <= 0:
		return time.Time{}
	case v < 1_000_000_000:
		return now.Add(time.Duration(v) * time.Second)
	}
	return time.Unix(v, 0).UTC()
}

func (c *Client) GetMe(ctx context.Context, token string) (dom.User, error) {
	out, err := call[userJSON](ctx, c, token, "/getMe", nil)
	if err != nil {
		return dom.User{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) EditUser(ctx context.Context, token string, in ProfileUpdate) (dom.User, error) {
	out, err := call[userJSON](ctx, c, token, "/editUser", in)
	if err != nil {
		return dom.User{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) EditPassword(ctx context.Context, token, password, confirmation string) error {
	_, err := call[json.RawMessage](ctx, c, token, "/editPassword", map[string]string{
		"password":     password,
		"confirmation": confirmation,
	})
	return err
}

// SetGoal registers a goal and returns the URL of its stake payment.
func (c *Client) SetGoal(ctx context.Context, token string, in NewGoal) (string, error) {
	out, err := call[struct {
		PaymentURL string `json:"payment_url"`
	}](ctx, c, token, "/setGoal", in)
	if err != nil {
		return "", err
	}
	return out.PaymentURL, nil
}

// GetGoals returns one page of the caller's own goals.
func (c *Client) GetGoals(ctx context.Context, token string, page int) ([]dom.Goal, error) {
	return c.goalsPage(ctx, token, "/getGoals", page)
}

// GetSupervisions returns one page of goals the caller supervises.
func (c *Client) GetSupervisions(ctx context.Context, token string, page int) ([]dom.Goal, error) {
	return c.goalsPage(ctx, token, "/getSupervisions", page)
}

func (c *Client) goalsPage(ctx context.Context, token, endpoint string, page int) ([]dom.Goal, error) {
	out, err := call[goalsPage](ctx, c, token, endpoint, map[string]int{"page": page})
	if err != nil {
		return nil, err
	}
	goals := make([]dom.Goal, 0, len(out.Goals))
	for _, g := range out.Goals {
		goals = append(goals, g.toDomain())
	}
	return goals, nil
}

func (c *Client) ViewGoal(ctx context.Context, token string, id int64) (dom.Goal, error) {
	out, err := call[goalJSON](ctx, c, token, "/viewGoal", map[string]int64{"goal_id": id})
	if err != nil {
		return dom.Goal{}, err
	}
	return out.toDomain(), nil
}

// SuperviseGoal records the supervisor's decision on goal id.
func (c *Client) SuperviseGoal(ctx context.Context, token string, id int64, done bool, note string) (dom.Goal, error) {
	in := struct {
		GoalID      int64  `json:"goal_id"`
		Done        bool   `json:"done"`
		Description string `json:"description,omitempty"`
	}{id, done, note}
	out, err := call[goalJSON](ctx, c, token, "/superviseGoal", in)
	if err != nil {
		return dom.Goal{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) GetPayment(ctx context.Context, token string, id int64) (dom.Payment, error) {
	out, err := call[paymentJSON](ctx, c, token, "/getPayment", map[string]int64{"payment_id": id})
	if err != nil {
		return dom.Payment{}, err
	}
	return dom.Payment{
		GoalID:      out.GoalID,
		AmountMinor: out.Amount,
		Gateway:     out.PGPName,
		TracingCode: out.TracingCode,
	}, nil
}

// GetConfig returns the goal rules. It needs no token.
func (c *Client) GetConfig(ctx context.Context) (dom.Rules, error) {
	out, err := call[configJSON](ctx, c, "", "/getConfig", nil)
	if err != nil {
		return dom.Rules{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) GetCharities(ctx context.Context) ([]dom.Charity, error) {
	out, err := call[[]charityJSON](ctx, c, "", "/getCharities", nil)
	if err != nil {
		return nil, err
	}
	list := make([]dom.Charity, 0, len(out))
	for _, ch := range out {
		list = append(list, dom.Charity{
			ID:          ch.ID,
			Name:        ch.Name,
			Description: ch.Description,
			LogoURL:     ch.Image,
			Website:     ch.Website,
		})
	}
	return list, nil
}
