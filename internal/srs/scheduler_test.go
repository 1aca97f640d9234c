package srs

import (
	"context"
	"errors"
	"testing"
)

// memStore records saves and can be told to fail.
type memStore struct {
	saved  []string
	failed bool
}

func (m *memStore) Save(_ context.Context, item *ReviewItem) error {
	if m.failed {
		return errors.New("disk on fire")
	}
	m.saved = append(m.saved, item.ID)
	return nil
}

func TestScheduler_InitIsIdempotent(t *testing.T) {
	sched := NewScheduler(nil, nil)

	first := sched.Init("q1", "linear chaining", testNow)
	first.TotalReviews = 3
	second := sched.Init("q1", "linear chaining", testNow)

	if first != second {
		t.Error("Init replaced an existing item")
	}
	if sched.Len() != 1 {
		t.Errorf("Len = %d, want 1", sched.Len())
	}
}

func TestScheduler_RateNewItemGood(t *testing.T) {
	store := &memStore{}
	sched := NewScheduler(nil, store)
	sched.Init("q1", "sensor basics", testNow)

	item, err := sched.Rate(context.Background(), "q1", RatingGood, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.State.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", item.State.IntervalDays)
	}
	if item.State.Reps != 1 {
		t.Errorf("Reps = %d, want 1", item.State.Reps)
	}
	if item.State.Ease != InitialEase {
		t.Errorf("Ease = %v, want %v", item.State.Ease, InitialEase)
	}
	if item.TotalReviews != 1 || item.CorrectReviews != 1 {
		t.Errorf("counters = %d/%d, want 1/1", item.CorrectReviews, item.TotalReviews)
	}
	if len(store.saved) != 1 || store.saved[0] != "q1" {
		t.Errorf("saved = %v, want [q1]", store.saved)
	}
}

func TestScheduler_RateAgainSkipsCorrectCounter(t *testing.T) {
	sched := NewScheduler(nil, nil)
	sched.Init("q1", "", testNow)

	item, err := sched.Rate(context.Background(), "q1", RatingAgain, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.TotalReviews != 1 || item.CorrectReviews != 0 {
		t.Errorf("counters = %d/%d, want 0/1", item.CorrectReviews, item.TotalReviews)
	}
}

func TestScheduler_RateSurvivesSaveFailure(t *testing.T) {
	store := &memStore{failed: true}
	sched := NewScheduler(nil, store)
	sched.Init("q1", "", testNow)

	item, err := sched.Rate(context.Background(), "q1", RatingGood, testNow)
	if err == nil {
		t.Fatal("expected save error")
	}
	if item == nil {
		t.Fatal("expected updated item despite save failure")
	}
	if item.State.Reps != 1 {
		t.Errorf("Reps = %d, want 1 (transition must stand)", item.State.Reps)
	}
}

func TestScheduler_RateUnknownItem(t *testing.T) {
	sched := NewScheduler(nil, nil)
	if _, err := sched.Rate(context.Background(), "missing", RatingGood, testNow); err == nil {
		t.Error("expected error for unknown item")
	}
}

func TestScheduler_DueItemsOrder(t *testing.T) {
	mk := func(id string, dueDaysAgo int) *ReviewItem {
		return &ReviewItem{
			ID:    id,
			State: State{Due: testNow.AddDate(0, 0, -dueDaysAgo), Ease: InitialEase},
		}
	}
	sched := NewScheduler([]*ReviewItem{
		mk("b", 1),
		mk("a", 1),
		mk("c", 5),
		mk("future", -3),
	}, nil)

	due := sched.DueItems(testNow)
	if len(due) != 3 {
		t.Fatalf("len(due) = %d, want 3", len(due))
	}
	want := []string{"c", "a", "b"}
	for i, w := range want {
		if due[i].ID != w {
			t.Errorf("due[%d] = %s, want %s", i, due[i].ID, w)
		}
	}
}

func TestScheduler_SeededFromStoredItems(t *testing.T) {
	items := []*ReviewItem{
		{ID: "q1", State: State{Due: testNow, IntervalDays: 6, Ease: 2.3, Reps: 2}},
		{ID: "q2", State: State{Due: testNow.AddDate(0, 0, 4), Ease: InitialEase}},
	}
	sched := NewScheduler(items, nil)

	if sched.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sched.Len())
	}
	got := sched.Item("q1")
	if got == nil || got.State.IntervalDays != 6 {
		t.Errorf("stored state not preserved: %+v", got)
	}
}

func TestReviewItem_Retention(t *testing.T) {
	item := &ReviewItem{TotalReviews: 4, CorrectReviews: 3}
	if r := item.Retention(); r != 0.75 {
		t.Errorf("Retention = %v, want 0.75", r)
	}
	empty := &ReviewItem{}
	if r := empty.Retention(); r != 0 {
		t.Errorf("Retention of unreviewed item = %v, want 0", r)
	}
}

func TestReviewItem_DueWindow(t *testing.T) {
	item := NewReviewItem("q1", "", testNow)
	if !item.IsDue(testNow) {
		t.Error("new item should be due immediately")
	}

	later := Schedule(item.State, RatingGood, testNow)
	item.State = later
	if item.IsDue(testNow) {
		t.Error("rescheduled item should not be due yet")
	}
	if d := item.DaysUntilDue(testNow); d != 1 {
		t.Errorf("DaysUntilDue = %d, want 1", d)
	}
	if !item.IsDue(testNow.AddDate(0, 0, 1)) {
		t.Error("item should be due at its due date")
	}
}
