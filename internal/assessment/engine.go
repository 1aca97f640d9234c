package assessment

import "time"

// Result is the complete outcome of an assessment: never mutated after
// creation; persistence belongs to the caller.
type Result struct {
	SessionID string  `json:"sessionId"`
	UserID    string  `json:"userId"`
	Score     Score   `json:"score"`
	Metrics   Metrics `json:"metrics"`
	Plan      Plan    `json:"plan"`
}

// Complete finalizes a session at the given time and computes its result.
// The session's CompletedAt and Status are stamped exactly once; calling
// Complete on an already-completed session recomputes from the original
// timestamps, so results stay identical.
func Complete(s *Session, now time.Time) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if s.CompletedAt == nil {
		t := now
		s.CompletedAt = &t
		s.Status = StatusCompleted
	}

	score := CalculateScore(s)
	metrics := CalculateMetrics(s)
	plan := GeneratePlan(s, score, metrics)

	return &Result{
		SessionID: s.ID,
		UserID:    s.UserID,
		Score:     score,
		Metrics:   metrics,
		Plan:      plan,
	}, nil
}
