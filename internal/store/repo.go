package store

import (
	"context"
	"time"

	"github.com/opsprep/tcoprep/internal/srs"
	"github.com/opsprep/tcoprep/internal/tco"
)

// SessionEventData captures a session lifecycle event for persistence.
type SessionEventData struct {
	SessionID    string
	UserID       string
	Kind         string // practice, assessment, or review
	Action       string // started, completed, or abandoned
	ModuleID     string
	Questions    int
	Correct      int
	ScorePercent float64
	Passed       bool
	DurationSecs int
}

// AnswerEventData captures a single answered question for persistence.
type AnswerEventData struct {
	SessionID  string
	UserID     string
	QuestionID string
	Domain     tco.Domain
	Difficulty tco.Difficulty
	ChoiceID   string
	Correct    bool
	TimeMs     int
}

// ReviewEventData captures one spaced-repetition rating submission.
type ReviewEventData struct {
	UserID       string
	ItemID       string
	Rating       srs.Rating
	IntervalDays int
	Ease         float64
	Reps         int
	Lapses       int
}

// SessionSummaryRecord is a completed session row for stats display.
type SessionSummaryRecord struct {
	SessionID    string
	Kind         string
	ModuleID     string
	Questions    int
	Correct      int
	ScorePercent float64
	Passed       bool
	DurationSecs int
	Timestamp    time.Time
}

// EventRepo provides append and query access to the attempt history.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendReviewEvent records a rating submission.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// NeedsReviewCounts returns, per domain, the number of incorrect and
	// not-yet-reviewed answers for a user.
	NeedsReviewCounts(ctx context.Context, userID string) (map[tco.Domain]int, error)

	// NeedsReviewQuestionIDs returns the distinct question IDs a user has
	// answered incorrectly and not yet reviewed, in sorted order.
	NeedsReviewQuestionIDs(ctx context.Context, userID string) ([]string, error)

	// MarkReviewed flips the reviewed flag on a user's incorrect answers
	// for the given questions.
	MarkReviewed(ctx context.Context, userID string, questionIDs []string) error

	// DomainAccuracy returns a user's lifetime accuracy in a domain,
	// 0 when the domain has no recorded answers.
	DomainAccuracy(ctx context.Context, userID string, domain tco.Domain) (float64, error)

	// SessionSummaries returns a user's completed sessions, newest first.
	SessionSummaries(ctx context.Context, userID string, limit int) ([]SessionSummaryRecord, error)
}

// ReviewRepo persists spaced-repetition state, one row per
// (user, question) pair.
type ReviewRepo interface {
	// Load returns the stored item, with ok=false when none exists.
	Load(ctx context.Context, userID, questionID string) (*srs.ReviewItem, bool, error)

	// LoadAll returns every stored item for a user.
	LoadAll(ctx context.Context, userID string) ([]*srs.ReviewItem, error)

	// Save upserts an item's current state.
	Save(ctx context.Context, userID string, item *srs.ReviewItem) error
}

// ModuleProgressData is one study-progress upsert.
type ModuleProgressData struct {
	UserID           string
	ModuleID         string
	SectionID        string
	Status           string
	TimeSpentMinutes int
}

// ProgressRepo persists module/section study progress. Callers treat
// Upsert as fire-and-forget: failures are logged, never fatal.
type ProgressRepo interface {
	Upsert(ctx context.Context, data ModuleProgressData) error
}
