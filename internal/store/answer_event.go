package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/opsprep/tcoprep/ent/answerevent"
	"github.com/opsprep/tcoprep/internal/tco"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetDomain(string(data.Domain)).
		SetDifficulty(string(data.Difficulty)).
		SetChoiceID(data.ChoiceID).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) NeedsReviewCounts(ctx context.Context, userID string) (map[tco.Domain]int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.Correct(false),
			answerevent.Reviewed(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query needs-review counts: %w", err)
	}

	counts := make(map[tco.Domain]int)
	for _, e := range events {
		counts[tco.Domain(e.Domain)]++
	}
	return counts, nil
}

func (r *eventRepo) NeedsReviewQuestionIDs(ctx context.Context, userID string) ([]string, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.Correct(false),
			answerevent.Reviewed(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query needs-review questions: %w", err)
	}

	seen := make(map[string]bool, len(events))
	var ids []string
	for _, e := range events {
		if !seen[e.QuestionID] {
			seen[e.QuestionID] = true
			ids = append(ids, e.QuestionID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *eventRepo) MarkReviewed(ctx context.Context, userID string, questionIDs []string) error {
	if len(questionIDs) == 0 {
		return nil
	}
	_, err := r.client.AnswerEvent.Update().
		Where(
			answerevent.UserID(userID),
			answerevent.QuestionIDIn(questionIDs...),
			answerevent.Correct(false),
			answerevent.Reviewed(false),
		).
		SetReviewed(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark reviewed: %w", err)
	}
	return nil
}

func (r *eventRepo) DomainAccuracy(ctx context.Context, userID string, domain tco.Domain) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.Domain(string(domain)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query domain accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
