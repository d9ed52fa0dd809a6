package goalsort

import (
	"testing"
	"time"

	dom "Motiv/internal/domain"
	"Motiv/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.October, 16, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func ids(goals []dom.Goal) []int64 {
	out := make([]int64, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}

func conv(t *testing.T) money.Converter {
	c, err := money.NewConverter(10)
	require.NoError(t, err)
	return c
}

func TestSort_Title(t *testing.T) {
	goals := []dom.Goal{{ID: 1, Title: "banana"}, {ID: 2, Title: "Apple"}, {ID: 3, Title: "cherry"}}
	got := Sort(goals, Config{KeyTitle, Asc}, conv(t), now)
	assert.Equal(t, []int64{2, 1, 3}, ids(got))

	got = Sort(goals, Config{KeyTitle, Desc}, conv(t), now)
	assert.Equal(t, []int64{3, 1, 2}, ids(got))
	assert.Equal(t, []int64{1, 2, 3}, ids(goals), "input must not be reordered")
}

func TestSort_AmountInMajorUnits(t *testing.T) {
	// 1005 and 1009 rial are both 100 toman and keep input order.
	goals := []dom.Goal{{ID: 1, StakeMinor: 1009}, {ID: 2, StakeMinor: 500}, {ID: 3, StakeMinor: 1005}}
	got := Sort(goals, Config{KeyAmount, Asc}, conv(t), now)
	assert.Equal(t, []int64{2, 1, 3}, ids(got))
}

func TestSort_DeadlineMissingIsZero(t *testing.T) {
	goals := []dom.Goal{{ID: 1, Deadline: at(time.Hour)}, {ID: 2}, {ID: 3, Deadline: at(-time.Hour)}}
	got := Sort(goals, Default(), conv(t), now)
	assert.Equal(t, []int64{1, 3, 2}, ids(got))
}

func TestSort_Status(t *testing.T) {
	goals := []dom.Goal{
		{ID: 1, Deadline: at(-time.Hour), SupervisedAt: at(-2 * time.Hour), Done: true},
		{ID: 2, Deadline: at(-time.Hour)},
		{ID: 3, Deadline: at(time.Hour)},
	}
	got := Sort(goals, Config{KeyStatus, Asc}, conv(t), now)
	assert.Equal(t, []int64{3, 2, 1}, ids(got))
}

func TestSort_Stable(t *testing.T) {
	deadline := at(48 * time.Hour)
	a := dom.Goal{ID: 1, Title: "same", Deadline: deadline, StakeMinor: 10}
	b := dom.Goal{ID: 2, Title: "SAME", Deadline: deadline, StakeMinor: 10}

	for _, key := range []Key{KeyTitle, KeyAmount, KeyDeadline, KeyStatus} {
		for _, dir := range []Direction{Asc, Desc} {
			c := Config{key, dir}
			assert.Equal(t, []int64{1, 2}, ids(Sort([]dom.Goal{a, b}, c, conv(t), now)), "%v", c)
			assert.Equal(t, []int64{2, 1}, ids(Sort([]dom.Goal{b, a}, c, conv(t), now)), "%v", c)
		}
	}
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	goals := []dom.Goal{{ID: 2}, {ID: 1}}
	assert.Equal(t, []int64{2, 1}, ids(Sort(goals, Config{Key: "nope", Direction: Asc}, conv(t), now)))
}

func TestToggleDirection(t *testing.T) {
	assert.Equal(t, Desc, ToggleDirection(KeyTitle, Asc, KeyTitle))
	assert.Equal(t, Asc, ToggleDirection(KeyTitle, Desc, KeyTitle))
	assert.Equal(t, Asc, ToggleDirection(KeyTitle, Asc, KeyAmount))
	assert.Equal(t, Asc, ToggleDirection(KeyTitle, Desc, KeyAmount))
}

func TestConfigToggle(t *testing.T) {
	c := Default()
	c = c.Toggle(KeyDeadline)
	assert.Equal(t, Config{KeyDeadline, Asc}, c)
	c = c.Toggle(KeyDeadline)
	assert.Equal(t, Config{KeyDeadline, Desc}, c)
	c = c.Toggle(KeyStatus)
	assert.Equal(t, Config{KeyStatus, Asc}, c)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, Config{KeyDeadline, Desc}, DefaultFor(ListGoals))
	assert.Equal(t, Config{KeyDeadline, Desc}, DefaultFor(ListSupervisions))
	assert.Equal(t, Default(), DefaultFor("other"))
}

func TestParse(t *testing.T) {
	k, err := ParseKey(" Amount ")
	require.NoError(t, err)
	assert.Equal(t, KeyAmount, k)
	_, err = ParseKey("created_at")
	assert.ErrorIs(t, err, ErrUnknownKey)

	d, err := ParseDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, Desc, d)
	_, err = ParseDirection("up")
	assert.ErrorIs(t, err, ErrUnknownDirection)

	l, err := ParseList("supervisions")
	require.NoError(t, err)
	assert.Equal(t, ListSupervisions, l)
	_, err = ParseList("archive")
	assert.ErrorIs(t, err, ErrUnknownList)
}
