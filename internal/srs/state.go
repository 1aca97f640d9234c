package srs

import (
	"math"
	"time"
)

// Tunable constants for the SM-2 style scheduler.
const (
	// InitialEase is the ease factor assigned to brand-new items.
	InitialEase = 2.5

	// MinEase is the floor below which ease never drops.
	MinEase = 1.3

	// MaxEase is the cap above which ease never grows.
	MaxEase = 3.0

	// MinIntervalDays is the shortest scheduling interval.
	MinIntervalDays = 1

	// HardMultiplier scales the previous interval on a hard rating.
	HardMultiplier = 0.8

	// EasyBonus scales the ease-grown interval on an easy rating.
	EasyBonus = 1.3

	// AgainEasePenalty is subtracted from ease on a lapse.
	AgainEasePenalty = 0.2

	// HardEasePenalty is subtracted from ease on a hard rating.
	HardEasePenalty = 0.05

	// EasyEaseBonus is added to ease on an easy rating.
	EasyEaseBonus = 0.05
)

// State is the scheduling state of a single review item.
type State struct {
	Due          time.Time `json:"due"`
	IntervalDays int       `json:"interval_days"`
	Ease         float64   `json:"ease"`
	Reps         int       `json:"reps"`
	Lapses       int       `json:"lapses"`
}

// NewState returns the state for a brand-new item due immediately.
func NewState(now time.Time) State {
	return State{
		Due:  now,
		Ease: InitialEase,
	}
}

// Schedule computes the next scheduling state from the current state and a
// rating. It is a pure function: same (state, rating, now) always yields the
// same result, and the input state is not modified.
func Schedule(state State, rating Rating, now time.Time) State {
	next := state

	switch rating {
	case RatingAgain:
		next.Reps = 0
		next.Lapses = state.Lapses + 1
		next.IntervalDays = MinIntervalDays
		next.Ease = clampEase(state.Ease - AgainEasePenalty)

	case RatingHard:
		next.Reps = state.Reps + 1
		next.IntervalDays = growInterval(state.IntervalDays, HardMultiplier)
		next.Ease = clampEase(state.Ease - HardEasePenalty)

	case RatingGood:
		next.Reps = state.Reps + 1
		next.IntervalDays = growInterval(state.IntervalDays, state.Ease)

	case RatingEasy:
		next.Reps = state.Reps + 1
		next.IntervalDays = growInterval(state.IntervalDays, state.Ease*EasyBonus)
		next.Ease = clampEase(state.Ease + EasyEaseBonus)

	default:
		// Unknown rating: leave the schedule untouched except the due date,
		// so a bad caller never corrupts interval arithmetic.
		return state
	}

	next.Due = now.AddDate(0, 0, next.IntervalDays)
	return next
}

// growInterval scales an interval by factor, flooring at MinIntervalDays.
// An interval of 0 (brand-new item) produces the minimum first interval.
func growInterval(days int, factor float64) int {
	if days <= 0 {
		return MinIntervalDays
	}
	grown := int(math.Round(float64(days) * factor))
	if grown < MinIntervalDays {
		return MinIntervalDays
	}
	return grown
}

func clampEase(e float64) float64 {
	if e < MinEase {
		return MinEase
	}
	if e > MaxEase {
		return MaxEase
	}
	return e
}
