package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetItemID(data.ItemID).
		SetRating(string(data.Rating)).
		SetIntervalDays(data.IntervalDays).
		SetEase(data.Ease).
		SetReps(data.Reps).
		SetLapses(data.Lapses).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}
