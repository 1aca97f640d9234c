package srs

import "time"

// ReviewItem is one schedulable unit: a question (or concept card) with its
// scheduling state and lifetime counters. The scheduler computes the next
// state; storage belongs to the caller.
type ReviewItem struct {
	ID             string `json:"id"`
	Concept        string `json:"concept"`
	State          State  `json:"state"`
	TotalReviews   int    `json:"total_reviews"`
	CorrectReviews int    `json:"correct_reviews"`
}

// NewReviewItem creates an item due immediately with default ease.
func NewReviewItem(id, concept string, now time.Time) *ReviewItem {
	return &ReviewItem{
		ID:      id,
		Concept: concept,
		State:   NewState(now),
	}
}

// Retention returns the lifetime correct-review ratio, 0 when unreviewed.
func (ri *ReviewItem) Retention() float64 {
	if ri.TotalReviews == 0 {
		return 0
	}
	return float64(ri.CorrectReviews) / float64(ri.TotalReviews)
}

// IsDue returns true if the item is at or past its due date.
func (ri *ReviewItem) IsDue(now time.Time) bool {
	return !now.Before(ri.State.Due)
}

// OverdueDays returns how many days past due the item is. Returns 0 if not
// yet due.
func (ri *ReviewItem) OverdueDays(now time.Time) float64 {
	if now.Before(ri.State.Due) {
		return 0
	}
	return now.Sub(ri.State.Due).Hours() / 24.0
}

// DaysUntilDue returns the number of days until the item comes due.
// Returns 0 if already due.
func (ri *ReviewItem) DaysUntilDue(now time.Time) int {
	if ri.IsDue(now) {
		return 0
	}
	return int(ri.State.Due.Sub(now).Hours()/24.0) + 1
}
