package srs

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// ItemStore persists review items. The scheduler treats persistence as
// best-effort: a failed save is reported but never rolls back the computed
// schedule.
type ItemStore interface {
	Save(ctx context.Context, item *ReviewItem) error
}

// Scheduler manages the review schedule for one user's items.
type Scheduler struct {
	items map[string]*ReviewItem
	store ItemStore
}

// NewScheduler creates a scheduler seeded with previously persisted items.
// store may be nil, in which case scheduling is purely in-memory.
func NewScheduler(items []*ReviewItem, store ItemStore) *Scheduler {
	s := &Scheduler{
		items: make(map[string]*ReviewItem, len(items)),
		store: store,
	}
	for _, it := range items {
		if it != nil && it.ID != "" {
			s.items[it.ID] = it
		}
	}
	return s
}

// Init registers a new item due immediately. Existing items are untouched.
func (s *Scheduler) Init(id, concept string, now time.Time) *ReviewItem {
	if it, ok := s.items[id]; ok {
		return it
	}
	it := NewReviewItem(id, concept, now)
	s.items[id] = it
	return it
}

// Item returns the tracked item, or nil if unknown.
func (s *Scheduler) Item(id string) *ReviewItem {
	return s.items[id]
}

// Len returns the number of tracked items.
func (s *Scheduler) Len() int {
	return len(s.items)
}

// Rate applies a rating to an item: the schedule transition always succeeds
// in memory, then the new state is saved best-effort. The returned error is
// the save failure, if any; the item is updated either way.
func (s *Scheduler) Rate(ctx context.Context, id string, rating Rating, now time.Time) (*ReviewItem, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("unknown review item %q", id)
	}

	it.State = Schedule(it.State, rating, now)
	it.TotalReviews++
	if rating != RatingAgain {
		it.CorrectReviews++
	}

	if s.store != nil {
		if err := s.store.Save(ctx, it); err != nil {
			return it, fmt.Errorf("save review item %q: %w", id, err)
		}
	}
	return it, nil
}

// DueItems returns items due at now, most overdue first with ID tiebreak.
func (s *Scheduler) DueItems(now time.Time) []*ReviewItem {
	var due []*ReviewItem
	for _, it := range s.items {
		if it.IsDue(now) {
			due = append(due, it)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(now), due[j].OverdueDays(now)
		if oi != oj {
			return oi > oj
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// AllItems returns every tracked item in ID order.
func (s *Scheduler) AllItems() []*ReviewItem {
	all := make([]*ReviewItem, 0, len(s.items))
	for _, it := range s.items {
		all = append(all, it)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
