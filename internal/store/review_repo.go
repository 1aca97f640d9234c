package store

import (
	"context"
	"fmt"

	"github.com/opsprep/tcoprep/ent"
	"github.com/opsprep/tcoprep/ent/reviewitem"
	"github.com/opsprep/tcoprep/internal/srs"
)

// reviewRepo implements ReviewRepo with one upsert row per
// (user, question) pair.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Load(ctx context.Context, userID, questionID string) (*srs.ReviewItem, bool, error) {
	row, err := r.client.ReviewItem.Query().
		Where(
			reviewitem.UserID(userID),
			reviewitem.QuestionID(questionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load review item: %w", err)
	}
	return rowToItem(row), true, nil
}

func (r *reviewRepo) LoadAll(ctx context.Context, userID string) ([]*srs.ReviewItem, error) {
	rows, err := r.client.ReviewItem.Query().
		Where(reviewitem.UserID(userID)).
		Order(ent.Asc(reviewitem.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load review items: %w", err)
	}

	items := make([]*srs.ReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToItem(row))
	}
	return items, nil
}

func (r *reviewRepo) Save(ctx context.Context, userID string, item *srs.ReviewItem) error {
	existing, err := r.client.ReviewItem.Query().
		Where(
			reviewitem.UserID(userID),
			reviewitem.QuestionID(item.ID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query review item: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetConcept(item.Concept).
			SetDue(item.State.Due).
			SetIntervalDays(item.State.IntervalDays).
			SetEase(item.State.Ease).
			SetReps(item.State.Reps).
			SetLapses(item.State.Lapses).
			SetTotalReviews(item.TotalReviews).
			SetCorrectReviews(item.CorrectReviews).
			Save(ctx)
	} else {
		_, err = r.client.ReviewItem.Create().
			SetUserID(userID).
			SetQuestionID(item.ID).
			SetConcept(item.Concept).
			SetDue(item.State.Due).
			SetIntervalDays(item.State.IntervalDays).
			SetEase(item.State.Ease).
			SetReps(item.State.Reps).
			SetLapses(item.State.Lapses).
			SetTotalReviews(item.TotalReviews).
			SetCorrectReviews(item.CorrectReviews).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save review item: %w", err)
	}
	return nil
}

func rowToItem(row *ent.ReviewItem) *srs.ReviewItem {
	return &srs.ReviewItem{
		ID:      row.QuestionID,
		Concept: row.Concept,
		State: srs.State{
			Due:          row.Due,
			IntervalDays: row.IntervalDays,
			Ease:         row.Ease,
			Reps:         row.Reps,
			Lapses:       row.Lapses,
		},
		TotalReviews:   row.TotalReviews,
		CorrectReviews: row.CorrectReviews,
	}
}

// UserItemStore adapts a ReviewRepo to the scheduler's ItemStore for a
// fixed user.
type UserItemStore struct {
	Repo   ReviewRepo
	UserID string
}

// Save implements srs.ItemStore.
func (u *UserItemStore) Save(ctx context.Context, item *srs.ReviewItem) error {
	return u.Repo.Save(ctx, u.UserID, item)
}
