// Package goalsort orders goal tables by a column and tracks per-list sort
// state.
package goalsort

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"

	dom "Motiv/internal/domain"
	"Motiv/internal/money"
	"Motiv/internal/status"
)

type Key string

const (
	KeyTitle    Key = "title"
	KeyAmount   Key = "amount"
	KeyDeadline Key = "deadline"
	KeyStatus   Key = "status"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// List names an independently sorted table.
type List string

const (
	ListGoals        List = "goals"
	ListSupervisions List = "supervisions"
)

var (
	ErrUnknownKey       = errors.New("unknown sort key")
	ErrUnknownDirection = errors.New("unknown sort direction")
	ErrUnknownList      = errors.New("unknown list")
)

// Config is the sort state of one table.
type Config struct {
	Key       Key
	Direction Direction
}

// Default sorts by deadline, latest first.
func Default() Config {
	return Config{Key: KeyDeadline, Direction: Desc}
}

// Defaults holds the initial state of each list.
var Defaults = map[List]Config{
	ListGoals:        Default(),
	ListSupervisions: Default(),
}

// DefaultFor returns the initial state of list.
func DefaultFor(list List) Config {
	if c, ok := Defaults[list]; ok {
		return c
	}
	return Default()
}

func ParseKey(s string) (Key, error) {
	switch k := Key(strings.ToLower(strings.TrimSpace(s))); k {
	case KeyTitle, KeyAmount, KeyDeadline, KeyStatus:
		return k, nil
	}
	return "", ErrUnknownKey
}

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Asc, Desc:
		return d, nil
	}
	return "", ErrUnknownDirection
}

func ParseList(s string) (List, error) {
	switch l := List(s); l {
	case ListGoals, ListSupervisions:
		return l, nil
	}
	return "", ErrUnknownList
}

// ToggleDirection returns the direction after the user picks requested:
// the active column flips, any other column starts ascending.
func ToggleDirection(currentKey Key, currentDir Direction, requested Key) Direction {
	if currentKey == requested && currentDir == Asc {
		return Desc
	}
	return Asc
}

// Toggle applies a column pick to c.
func (c Config) Toggle(requested Key) Config {
	return Config{Key: requested, Direction: ToggleDirection(c.Key, c.Direction, requested)}
}

// Sort returns a copy of goals ordered by c. Equal keys keep their input
// order. Amounts compare in major units and status by derived priority at now.
func Sort(goals []dom.Goal, c Config, conv money.Converter, now time.Time) []dom.Goal {
	out := slices.Clone(goals)
	compare := comparator(c.Key, conv, now)
	if compare == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b dom.Goal) int {
		if c.Direction == Desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

func comparator(k Key, conv money.Converter, now time.Time) func(a, b dom.Goal) int {
	switch k {
	case KeyTitle:
		return func(a, b dom.Goal) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case KeyAmount:
		return func(a, b dom.Goal) int {
			return cmp.Compare(conv.ToMajor(a.StakeMinor), conv.ToMajor(b.StakeMinor))
		}
	case KeyDeadline:
		return func(a, b dom.Goal) int {
			return cmp.Compare(unixOrZero(a.Deadline), unixOrZero(b.Deadline))
		}
	case KeyStatus:
		return func(a, b dom.Goal) int {
			return cmp.Compare(status.Priority(a, now), status.Priority(b, now))
		}
	}
	return nil
}

func unixOrZero(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.Unix()
}
