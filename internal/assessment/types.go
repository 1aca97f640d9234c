// Package assessment implements scored evaluation of completed question
// sessions: weighted scoring, domain and objective breakdowns, performance
// metrics, and remediation planning. Every function here is a pure
// computation over session data; identical input yields identical output.
package assessment

import (
	"fmt"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

// Type is the kind of assessment being run.
type Type string

const (
	TypePractice    Type = "practice"
	TypeMockExam    Type = "mock_exam"
	TypeDomainDrill Type = "domain_drill"
)

// Status is the assessment session lifecycle state.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// DefaultPassThreshold is the pass threshold used when the config leaves it
// unset, expressed as a fraction.
const DefaultPassThreshold = 0.70

// Config is the typed assessment configuration.
type Config struct {
	Type          Type    `json:"type"`
	PassThreshold float64 `json:"passThreshold"`
}

// ResolvePassThreshold returns the configured pass threshold as a fraction,
// falling back to DefaultPassThreshold when unset.
func ResolvePassThreshold(cfg Config) float64 {
	if cfg.PassThreshold > 0 {
		return cfg.PassThreshold
	}
	return DefaultPassThreshold
}

// Response records one answered question within an assessment.
// Confidence is the learner's 1-5 self-rating, 0 when not captured.
type Response struct {
	QuestionID  string `json:"questionId"`
	ChoiceID    string `json:"choiceId"`
	Correct     bool   `json:"correct"`
	TimeSeconds int    `json:"timeSeconds"`
	Confidence  int    `json:"confidence,omitempty"`
}

// Session is a scored assessment run: the question snapshot plus the
// ordered responses collected so far.
type Session struct {
	ID          string
	UserID      string
	Domain      tco.Domain
	Questions   []tco.Question
	Responses   []Response
	Config      Config
	StartedAt   time.Time
	CompletedAt *time.Time
	Status      Status
}

// NewSession validates and constructs an assessment session. Invariants:
// at most one response per question, and every response must reference a
// question in the session's question list.
func NewSession(id, userID string, domain tco.Domain, questions []tco.Question, cfg Config, startedAt time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("assessment session needs at least one question")
	}
	qs := make([]tco.Question, len(questions))
	copy(qs, questions)

	return &Session{
		ID:        id,
		UserID:    userID,
		Domain:    domain,
		Questions: qs,
		Config:    cfg,
		StartedAt: startedAt,
		Status:    StatusInProgress,
	}, nil
}

// Record appends a response. It fails if the session already holds a
// response for every question or the question is not part of the session.
func (s *Session) Record(r Response) error {
	if len(s.Responses) >= len(s.Questions) {
		return fmt.Errorf("session already has %d responses for %d questions",
			len(s.Responses), len(s.Questions))
	}
	if s.questionByID(r.QuestionID) == nil {
		return fmt.Errorf("response references unknown question %q", r.QuestionID)
	}
	s.Responses = append(s.Responses, r)
	return nil
}

// Validate re-checks the session invariants, for sessions built directly
// rather than through NewSession/Record.
func (s *Session) Validate() error {
	if len(s.Responses) > len(s.Questions) {
		return fmt.Errorf("%d responses exceed %d questions",
			len(s.Responses), len(s.Questions))
	}
	for i := range s.Responses {
		if s.questionByID(s.Responses[i].QuestionID) == nil {
			return fmt.Errorf("response %d references unknown question %q",
				i, s.Responses[i].QuestionID)
		}
	}
	return nil
}

func (s *Session) questionByID(id string) *tco.Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// ResolveDomain returns the session's domain with the legacy precedence:
// the explicit domain field, then the first question's domain, then the
// first blueprint domain as a last resort.
func ResolveDomain(s *Session) tco.Domain {
	if s.Domain != "" {
		return s.Domain
	}
	if len(s.Questions) > 0 {
		return s.Questions[0].Domain
	}
	return tco.AllDomains()[0]
}
