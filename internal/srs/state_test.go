package srs

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func easeEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewState(t *testing.T) {
	s := NewState(testNow)
	if !s.Due.Equal(testNow) {
		t.Errorf("Due = %v, want %v", s.Due, testNow)
	}
	if s.Ease != InitialEase {
		t.Errorf("Ease = %v, want %v", s.Ease, InitialEase)
	}
	if s.IntervalDays != 0 || s.Reps != 0 || s.Lapses != 0 {
		t.Errorf("new state should have zero interval, reps and lapses, got %+v", s)
	}
}

func TestSchedule_NewItemFirstRating(t *testing.T) {
	for _, rating := range AllRatings() {
		next := Schedule(NewState(testNow), rating, testNow)
		if next.IntervalDays != 1 {
			t.Errorf("%s: IntervalDays = %d, want 1", rating, next.IntervalDays)
		}
		want := testNow.AddDate(0, 0, 1)
		if !next.Due.Equal(want) {
			t.Errorf("%s: Due = %v, want %v", rating, next.Due, want)
		}
	}
}

func TestSchedule_Good(t *testing.T) {
	s := State{IntervalDays: 4, Ease: 2.5, Reps: 2}
	next := Schedule(s, RatingGood, testNow)

	if next.IntervalDays != 10 {
		t.Errorf("IntervalDays = %d, want 10", next.IntervalDays)
	}
	if next.Ease != 2.5 {
		t.Errorf("Ease = %v, want unchanged 2.5", next.Ease)
	}
	if next.Reps != 3 {
		t.Errorf("Reps = %d, want 3", next.Reps)
	}
	if next.Lapses != 0 {
		t.Errorf("Lapses = %d, want 0", next.Lapses)
	}
}

func TestSchedule_Hard(t *testing.T) {
	s := State{IntervalDays: 10, Ease: 2.5, Reps: 3}
	next := Schedule(s, RatingHard, testNow)

	if next.IntervalDays != 8 {
		t.Errorf("IntervalDays = %d, want 8", next.IntervalDays)
	}
	if !easeEq(next.Ease, 2.45) {
		t.Errorf("Ease = %v, want 2.45", next.Ease)
	}
	if next.Reps != 4 {
		t.Errorf("Reps = %d, want 4", next.Reps)
	}
}

func TestSchedule_Easy(t *testing.T) {
	s := State{IntervalDays: 10, Ease: 2.5, Reps: 3}
	next := Schedule(s, RatingEasy, testNow)

	// 10 * 2.5 * 1.3 = 32.5, rounds to 33.
	if next.IntervalDays != 33 {
		t.Errorf("IntervalDays = %d, want 33", next.IntervalDays)
	}
	if !easeEq(next.Ease, 2.55) {
		t.Errorf("Ease = %v, want 2.55", next.Ease)
	}
}

func TestSchedule_Again(t *testing.T) {
	s := State{IntervalDays: 20, Ease: 2.5, Reps: 5, Lapses: 1}
	next := Schedule(s, RatingAgain, testNow)

	if next.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", next.IntervalDays)
	}
	if next.Reps != 0 {
		t.Errorf("Reps = %d, want 0", next.Reps)
	}
	if next.Lapses != 2 {
		t.Errorf("Lapses = %d, want 2", next.Lapses)
	}
	if !easeEq(next.Ease, 2.3) {
		t.Errorf("Ease = %v, want 2.3", next.Ease)
	}
}

func TestSchedule_EaseFloor(t *testing.T) {
	s := State{IntervalDays: 5, Ease: MinEase}
	next := Schedule(s, RatingAgain, testNow)
	if next.Ease != MinEase {
		t.Errorf("Ease = %v, want floor %v", next.Ease, MinEase)
	}
}

func TestSchedule_EaseCap(t *testing.T) {
	s := State{IntervalDays: 5, Ease: MaxEase}
	next := Schedule(s, RatingEasy, testNow)
	if next.Ease != MaxEase {
		t.Errorf("Ease = %v, want cap %v", next.Ease, MaxEase)
	}
}

func TestSchedule_PureAndDeterministic(t *testing.T) {
	s := State{IntervalDays: 6, Ease: 2.2, Reps: 2, Lapses: 1}
	before := s

	a := Schedule(s, RatingGood, testNow)
	b := Schedule(s, RatingGood, testNow)

	if s != before {
		t.Errorf("input state mutated: %+v", s)
	}
	if a != b {
		t.Errorf("not deterministic: %+v vs %+v", a, b)
	}
}

func TestSchedule_IntervalMonotonicAcrossRatings(t *testing.T) {
	s := State{IntervalDays: 10, Ease: 2.5, Reps: 3}

	again := Schedule(s, RatingAgain, testNow).IntervalDays
	hard := Schedule(s, RatingHard, testNow).IntervalDays
	good := Schedule(s, RatingGood, testNow).IntervalDays
	easy := Schedule(s, RatingEasy, testNow).IntervalDays

	if !(again <= hard && hard <= good && good <= easy) {
		t.Errorf("intervals not ordered: again=%d hard=%d good=%d easy=%d",
			again, hard, good, easy)
	}
}

func TestSchedule_UnknownRating(t *testing.T) {
	s := State{IntervalDays: 7, Ease: 2.1, Reps: 4}
	next := Schedule(s, Rating("bogus"), testNow)
	if next != s {
		t.Errorf("unknown rating changed state: %+v", next)
	}
}

func TestParseRating(t *testing.T) {
	for _, r := range AllRatings() {
		got, err := ParseRating(string(r))
		if err != nil || got != r {
			t.Errorf("ParseRating(%q) = %v, %v", r, got, err)
		}
	}
	if _, err := ParseRating("meh"); err == nil {
		t.Error("expected error for unknown rating")
	}
}
