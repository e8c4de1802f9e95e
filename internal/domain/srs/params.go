// Package srs implements the quality-graded spaced-repetition interval
// engine. It is a pure function of (previous schedule state, graded quality,
// review timestamp): it performs no I/O, retains no state, and is safe to
// call concurrently with distinct inputs.
package srs

import "math"

// Built-in limits. MinIntervalHours requests below DefaultMinIntervalHours
// are clamped up; a caller cannot schedule reviews closer together than the
// engine's own floor.
const (
	// DefaultMinIntervalHours is the shortest allowed review interval.
	DefaultMinIntervalHours = 24.0

	// DefaultMinEaseFactor is the floor below which the ease factor never drops.
	DefaultMinEaseFactor = 1.3

	// DefaultEaseFactor is the starting ease factor for an item's first review.
	DefaultEaseFactor = 2.5

	// DefaultGraduationFactor multiplies the minimum interval on the second
	// consecutive success, a fixed graduation step independent of ease.
	DefaultGraduationFactor = 6.0

	// easeDecimals is the number of decimal places the stored ease factor is
	// rounded to, keeping persisted values stable across platforms.
	easeDecimals = 4
)

// Params defines the configurable parameters of the interval engine.
type Params struct {
	// MinIntervalHours is the requested minimum interval between reviews.
	// Values below DefaultMinIntervalHours are clamped up to it.
	MinIntervalHours float64

	// MinEaseFactor is the floor for the ease factor.
	MinEaseFactor float64

	// InitialEaseFactor is the ease factor assumed when an item has no
	// previous schedule state.
	InitialEaseFactor float64

	// GraduationFactor multiplies the minimum interval on the second
	// consecutive success.
	GraduationFactor float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinIntervalHours:  DefaultMinIntervalHours,
		MinEaseFactor:     DefaultMinEaseFactor,
		InitialEaseFactor: DefaultEaseFactor,
		GraduationFactor:  DefaultGraduationFactor,
	}
}

// normalized returns a copy of the params with zero values filled in from
// the defaults and the minimum interval clamped to the built-in floor.
func (p *Params) normalized() Params {
	n := Params{}
	if p != nil {
		n = *p
	}

	if n.MinIntervalHours < DefaultMinIntervalHours {
		n.MinIntervalHours = DefaultMinIntervalHours
	}
	if n.MinEaseFactor <= 0 {
		n.MinEaseFactor = DefaultMinEaseFactor
	}
	if n.InitialEaseFactor <= 0 {
		n.InitialEaseFactor = DefaultEaseFactor
	}
	if n.GraduationFactor <= 0 {
		n.GraduationFactor = DefaultGraduationFactor
	}

	return n
}

// roundEase rounds an ease factor to the engine's fixed precision.
func roundEase(ease float64) float64 {
	shift := math.Pow(10, easeDecimals)
	return math.Round(ease*shift) / shift
}
