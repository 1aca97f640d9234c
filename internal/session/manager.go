// Package session implements the in-memory practice session state machine:
// NOT_STARTED -> IN_PROGRESS -> COMPLETED, with ABANDONED reachable from
// IN_PROGRESS. One Manager per active session, owned by the caller; it is
// not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opsprep/tcoprep/internal/tco"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
	StatusAbandoned
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusAbandoned:
		return "abandoned"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ErrInsufficientQuestions is returned by Start when the supplied pool is
// smaller than MinSessionQuestions.
var ErrInsufficientQuestions = errors.New("insufficient questions to start session")

// Manager orchestrates one practice session. All precondition violations
// after a successful Start are local, non-fatal signals (nil/false returns);
// the manager never panics for expected misuse.
type Manager struct {
	id          string
	userID      string
	config      Config
	questions   []tco.Question
	index       int
	answers     map[string]string
	correctness map[string]bool
	status      Status
	startedAt   time.Time
	completedAt time.Time
	now         func() time.Time
}

// NewManager creates a manager in the NOT_STARTED state. nowFn may be nil,
// in which case time.Now is used.
func NewManager(nowFn func() time.Time) *Manager {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Manager{
		answers:     make(map[string]string),
		correctness: make(map[string]bool),
		status:      StatusNotStarted,
		now:         nowFn,
	}
}

// Start begins the session with a snapshot of the supplied questions.
// The source pool is never mutated. Fails with ErrInsufficientQuestions
// when the pool is below the minimum, and for invalid configs.
func (m *Manager) Start(cfg Config, userID string, questions []tco.Question) error {
	if m.status != StatusNotStarted {
		return fmt.Errorf("session already %s", m.status)
	}
	if err := validateSessionConfig(cfg); err != nil {
		return err
	}
	if len(questions) < MinSessionQuestions {
		return fmt.Errorf("%w: got %d, need at least %d",
			ErrInsufficientQuestions, len(questions), MinSessionQuestions)
	}

	snapshot := make([]tco.Question, len(questions))
	copy(snapshot, questions)

	m.id = uuid.NewString()
	m.userID = userID
	m.config = cfg
	m.questions = snapshot
	m.index = 0
	m.status = StatusInProgress
	m.startedAt = m.now()
	return nil
}

// ID returns the session ID, empty before Start.
func (m *Manager) ID() string { return m.id }

// Status returns the current lifecycle state.
func (m *Manager) Status() Status { return m.status }

// Config returns the session config.
func (m *Manager) Config() Config { return m.config }

// Len returns the number of questions in the session snapshot.
func (m *Manager) Len() int { return len(m.questions) }

// Index returns the current question index.
func (m *Manager) Index() int { return m.index }

// CurrentQuestion returns the question at the current index, or nil if the
// session is not in progress or the index is out of range.
func (m *Manager) CurrentQuestion() *tco.Question {
	if m.status != StatusInProgress {
		return nil
	}
	if m.index < 0 || m.index >= len(m.questions) {
		return nil
	}
	return &m.questions[m.index]
}

// Answer records the answer for the current question and returns whether it
// was correct. ok is false when the session is not in progress or questionID
// does not match the current question. Re-answering overwrites the prior
// answer; the last answer wins.
func (m *Manager) Answer(questionID, choiceID string) (correct, ok bool) {
	q := m.CurrentQuestion()
	if q == nil || q.ID != questionID {
		return false, false
	}
	correct = q.Correct(choiceID)
	m.answers[questionID] = choiceID
	m.correctness[questionID] = correct
	return correct, true
}

// Next advances to the next question and returns it. At the last index the
// session transitions to COMPLETED and nil is returned, exactly once.
func (m *Manager) Next() *tco.Question {
	if m.status != StatusInProgress {
		return nil
	}
	if m.index >= len(m.questions)-1 {
		m.status = StatusCompleted
		m.completedAt = m.now()
		return nil
	}
	m.index++
	return &m.questions[m.index]
}

// Previous moves back one question, clamped at the first. It never
// completes the session.
func (m *Manager) Previous() *tco.Question {
	if m.status != StatusInProgress {
		return nil
	}
	if m.index > 0 {
		m.index--
	}
	return &m.questions[m.index]
}

// Jump moves to the given index. Out-of-range indexes are a no-op
// returning nil.
func (m *Manager) Jump(index int) *tco.Question {
	if m.status != StatusInProgress {
		return nil
	}
	if index < 0 || index >= len(m.questions) {
		return nil
	}
	m.index = index
	return &m.questions[m.index]
}

// CanGoNext reports whether a further question exists.
func (m *Manager) CanGoNext() bool {
	return m.status == StatusInProgress && m.index < len(m.questions)-1
}

// CanGoPrevious reports whether an earlier question exists.
func (m *Manager) CanGoPrevious() bool {
	return m.status == StatusInProgress && m.index > 0
}

// Abandon discards an in-progress session. No summary is produced and the
// manager should not be reused afterward.
func (m *Manager) Abandon() bool {
	if m.status != StatusInProgress {
		return false
	}
	m.status = StatusAbandoned
	m.completedAt = m.now()
	return true
}

// AnsweredCount returns how many questions have recorded answers.
func (m *Manager) AnsweredCount() int {
	return len(m.answers)
}

// AnswerFor returns the recorded choice for a question, if any.
func (m *Manager) AnswerFor(questionID string) (string, bool) {
	c, ok := m.answers[questionID]
	return c, ok
}

// Elapsed returns the session duration so far, or the final duration once
// the session has ended.
func (m *Manager) Elapsed() time.Duration {
	if m.startedAt.IsZero() {
		return 0
	}
	if !m.completedAt.IsZero() {
		return m.completedAt.Sub(m.startedAt)
	}
	return m.now().Sub(m.startedAt)
}
