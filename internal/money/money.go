// Package money converts stake amounts between the backend's minor unit
// (rial) and the displayed major unit (toman).
package money

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultRatio is the number of rials in a toman.
const DefaultRatio = 10

var ErrInvalidRatio = errors.New("amount ratio must be positive")

// Converter converts with a fixed integer ratio.
type Converter struct {
	ratio int64
}

func NewConverter(ratio int64) (Converter, error) {
	if ratio <= 0 {
		return Converter{}, ErrInvalidRatio
	}
	return Converter{ratio: ratio}, nil
}

// Ratio returns the minor units per major unit.
func (c Converter) Ratio() int64 {
	if c.ratio <= 0 {
		return DefaultRatio
	}
	return c.ratio
}

// ToMajor truncates toward zero; amounts from the backend are multiples of
// the ratio.
func (c Converter) ToMajor(minor int64) int64 {
	return minor / c.Ratio()
}

func (c Converter) ToMinor(major int64) int64 {
	return major * c.Ratio()
}

// Format renders n with locale digit grouping, e.g. "۱۰۰٬۰۰۰" for fa.
func Format(n int64, tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}
