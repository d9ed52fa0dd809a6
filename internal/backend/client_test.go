package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	path   string
	auth   string
	method string
	body   map[string]any
}

func newServer(t *testing.T, status int, reply string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.method = r.Method
		_ = json.NewDecoder(r.Body).Decode(&rec.body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", time.Second, nil), rec
}

func TestGetGoals_MapsRecords(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"ok":true,"data":{"page":1,"goals":[
		{"goal_id":7,"goal":"Run","value":1000000,"deadline":1760000000,"done":true,
		 "supervised_at":1759990000,"supervisor_description":"well done",
		 "creator_first_name":"Ali","creator_last_name":"Mohammadi","phone_number":"09120000000"},
		{"goal_id":8,"goal":"Read","value":2000000,"done":false}
	]}}`)

	goals, err := c.GetGoals(context.Background(), "tok", 1)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	assert.Equal(t, "/api/getGoals", rec.path)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "Bearer tok", rec.auth)
	assert.Equal(t, float64(1), rec.body["page"])

	g := goals[0]
	assert.Equal(t, int64(7), g.ID)
	assert.Equal(t, int64(1000000), g.StakeMinor)
	require.NotNil(t, g.Deadline)
	assert.Equal(t, int64(1760000000), g.Deadline.Unix())
	require.NotNil(t, g.SupervisedAt)
	assert.True(t, g.Done)
	assert.Equal(t, "well done", g.SupervisorNote)
	assert.Equal(t, "Ali Mohammadi", g.CreatorName)

	assert.Nil(t, goals[1].Deadline, "missing deadline stays absent")
	assert.Nil(t, goals[1].SupervisedAt)
}

func TestEnvelopeError(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"ok":false,"error":"goal not found"}`)
	_, err := c.ViewGoal(context.Background(), "tok", 1)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "goal not found", be.Message)
}

func TestUnauthorized(t *testing.T) {
	c, _ := newServer(t, http.StatusUnauthorized, `{"ok":false,"error":"token expired"}`)
	_, err := c.GetMe(context.Background(), "old")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUnavailable(t *testing.T) {
	c, _ := newServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)
	_, err := c.GetConfig(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	down := New("http://127.0.0.1:1", 200*time.Millisecond, nil)
	_, err = down.GetConfig(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAuth(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"ok":true,"data":{"access_token":"abc","access_expire":3600,"refresh_after":1800,"is_new_user":true}}`)
	fixed := time.Date(2025, time.October, 16, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	res, err := c.Auth(context.Background(), AuthRequest{PhoneNumber: "09121234567", Code: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "abc", res.AccessToken)
	assert.True(t, res.IsNewUser)
	assert.Equal(t, fixed.Add(time.Hour), res.ExpiresAt)
	assert.Equal(t, fixed.Add(30*time.Minute), res.RefreshAt)

	assert.Equal(t, "/api/auth", rec.path)
	assert.Empty(t, rec.auth)
	assert.Equal(t, "1234", rec.body["code"])
	_, hasPassword := rec.body["password"]
	assert.False(t, hasPassword)
}

func TestAuth_EmptyToken(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"ok":true,"data":{}}`)
	_, err := c.Auth(context.Background(), AuthRequest{PhoneNumber: "09121234567", Password: "x"})
	var be *Error
	assert.True(t, errors.As(err, &be))
}

func TestInstant(t *testing.T) {
	now := time.Unix(1_760_000_000, 0).UTC()
	assert.True(t, instant(0, now).IsZero())
	assert.Equal(t, now.Add(time.Minute), instant(60, now))
	assert.Equal(t, time.Unix(1_770_000_000, 0).UTC(), instant(1_770_000_000, now))
}

func TestSetGoal(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"ok":true,"data":{"payment_url":"https://pay.example/1"}}`)
	url, err := c.SetGoal(context.Background(), "tok", NewGoal{
		Goal: "Run", Value: 1_000_000, Deadline: 1_760_000_000, SupervisorPhoneNumber: "09127654321",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/1", url)
	assert.Equal(t, "/api/setGoal", rec.path)
	assert.Equal(t, float64(1_000_000), rec.body["value"])
	_, hasDesc := rec.body["description"]
	assert.False(t, hasDesc)
}

func TestSuperviseGoal(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"ok":true,"data":{"goal_id":3,"done":false,"supervised_at":1760000000,"supervisor_description":"nope"}}`)
	g, err := c.SuperviseGoal(context.Background(), "tok", 3, false, "nope")
	require.NoError(t, err)
	assert.True(t, g.Supervised())
	assert.Equal(t, "/api/superviseGoal", rec.path)
	assert.Equal(t, false, rec.body["done"])
	assert.Equal(t, float64(3), rec.body["goal_id"])
}

func TestGetConfigAndPayment(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"ok":true,"data":{"min_goal_hours":72,"max_goal_hours":1440,"supervision_timeout_hours":24,"min_goal_value":100000,"max_goal_value":10000000}}`)
	rules, err := c.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(72), rules.MinGoalHours)
	assert.Equal(t, int64(24), rules.SupervisionTimeoutHours)
	assert.Equal(t, int64(10_000_000), rules.MaxGoalValue)

	c, rec := newServer(t, http.StatusOK, `{"ok":true,"data":{"goal_id":3,"amount":1000000,"pgp_name":"zarinpal","tracing_code":"T-1"}}`)
	p, err := c.GetPayment(context.Background(), "tok", 11)
	require.NoError(t, err)
	assert.Equal(t, "zarinpal", p.Gateway)
	assert.Equal(t, float64(11), rec.body["payment_id"])
}
