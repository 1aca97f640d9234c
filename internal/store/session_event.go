package store

import (
	"context"
	"fmt"

	"github.com/opsprep/tcoprep/ent"
	"github.com/opsprep/tcoprep/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetKind(data.Kind).
		SetAction(data.Action).
		SetModuleID(data.ModuleID).
		SetQuestions(data.Questions).
		SetCorrect(data.Correct).
		SetScorePercent(data.ScorePercent).
		SetPassed(data.Passed).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context, userID string, limit int) ([]SessionSummaryRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(
			sessionevent.UserID(userID),
			sessionevent.Action("completed"),
		).
		Order(ent.Desc(sessionevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionSummaryRecord{
			SessionID:    e.SessionID,
			Kind:         e.Kind,
			ModuleID:     e.ModuleID,
			Questions:    e.Questions,
			Correct:      e.Correct,
			ScorePercent: e.ScorePercent,
			Passed:       e.Passed,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		})
	}
	return records, nil
}
