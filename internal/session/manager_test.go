package session

import (
	"errors"
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

var sessionStart = time.Date(2025, 4, 10, 14, 0, 0, 0, time.UTC)

func fixedClock(at *time.Time) func() time.Time {
	return func() time.Time { return *at }
}

func testQuestions(n int) []tco.Question {
	domains := tco.AllDomains()
	qs := make([]tco.Question, n)
	for i := range qs {
		qs[i] = tco.Question{
			ID:              string(rune('a' + i)),
			Text:            "which answer is right?",
			Domain:          domains[i%len(domains)],
			Difficulty:      tco.Beginner,
			ObjectiveIDs:    []string{"obj-1"},
			Choices:         []tco.Choice{{ID: "c1", Text: "yes"}, {ID: "c2", Text: "no"}},
			CorrectChoiceID: "c1",
		}
	}
	return qs
}

func startedManager(t *testing.T, n int, at *time.Time) *Manager {
	t.Helper()
	m := NewManager(fixedClock(at))
	if err := m.Start(Config{QuestionCount: n}, "u1", testQuestions(n)); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return m
}

func TestManager_Lifecycle(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 3, &now)

	if m.Status() != StatusInProgress {
		t.Fatalf("Status = %v, want in_progress", m.Status())
	}
	if m.ID() == "" {
		t.Error("expected non-empty session ID")
	}

	for i := 0; i < 3; i++ {
		q := m.CurrentQuestion()
		if q == nil {
			t.Fatalf("question %d: CurrentQuestion returned nil", i)
		}
		if _, ok := m.Answer(q.ID, "c1"); !ok {
			t.Fatalf("question %d: Answer rejected", i)
		}
		m.Next()
	}

	if m.Status() != StatusCompleted {
		t.Errorf("Status = %v, want completed", m.Status())
	}
	if m.AnsweredCount() != 3 {
		t.Errorf("AnsweredCount = %d, want 3", m.AnsweredCount())
	}
}

func TestManager_StartRejectsEmptyPool(t *testing.T) {
	m := NewManager(nil)
	err := m.Start(Config{}, "u1", nil)
	if !errors.Is(err, ErrInsufficientQuestions) {
		t.Errorf("err = %v, want ErrInsufficientQuestions", err)
	}
	if m.Status() != StatusNotStarted {
		t.Errorf("Status = %v, want not_started", m.Status())
	}
}

func TestManager_StartTwice(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 2, &now)
	if err := m.Start(Config{}, "u1", testQuestions(2)); err == nil {
		t.Error("expected error starting an in-progress session")
	}
}

func TestManager_SnapshotIsolation(t *testing.T) {
	now := sessionStart
	pool := testQuestions(2)
	m := NewManager(fixedClock(&now))
	if err := m.Start(Config{}, "u1", pool); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	pool[0].CorrectChoiceID = "c2"
	if correct, _ := m.Answer(m.CurrentQuestion().ID, "c1"); !correct {
		t.Error("mutating the source pool leaked into the session snapshot")
	}
}

func TestManager_AnswerLastWins(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 1, &now)
	q := m.CurrentQuestion()

	if correct, _ := m.Answer(q.ID, "c2"); correct {
		t.Error("wrong choice scored correct")
	}
	if correct, _ := m.Answer(q.ID, "c1"); !correct {
		t.Error("re-answer with right choice scored incorrect")
	}
	m.Next()

	sum := m.Summarize()
	if sum.Correct != 1 {
		t.Errorf("Correct = %d, want 1 (last answer wins)", sum.Correct)
	}
}

func TestManager_AnswerWrongQuestionID(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 2, &now)
	if _, ok := m.Answer("not-current", "c1"); ok {
		t.Error("Answer accepted a non-current question ID")
	}
}

func TestManager_NextCompletesExactlyOnce(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 1, &now)

	if q := m.Next(); q != nil {
		t.Errorf("Next at last index = %v, want nil", q)
	}
	if m.Status() != StatusCompleted {
		t.Fatalf("Status = %v, want completed", m.Status())
	}

	completedAt := now
	now = now.Add(time.Hour)
	if q := m.Next(); q != nil {
		t.Error("Next after completion should be a nil no-op")
	}
	if got := m.Elapsed(); got != completedAt.Sub(sessionStart) {
		t.Errorf("Elapsed moved after completion: %v", got)
	}
}

func TestManager_PreviousClampsAtFirst(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 3, &now)

	if q := m.Previous(); q == nil || m.Index() != 0 {
		t.Errorf("Previous at first index: q=%v index=%d, want clamp at 0", q, m.Index())
	}

	m.Next()
	m.Previous()
	if m.Index() != 0 {
		t.Errorf("Index = %d, want 0", m.Index())
	}
}

func TestManager_Jump(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 3, &now)

	if q := m.Jump(2); q == nil || m.Index() != 2 {
		t.Errorf("Jump(2): q=%v index=%d", q, m.Index())
	}
	if q := m.Jump(7); q != nil {
		t.Error("out-of-range Jump should return nil")
	}
	if m.Index() != 2 {
		t.Errorf("out-of-range Jump moved index to %d", m.Index())
	}
}

func TestManager_Navigation(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 2, &now)

	if m.CanGoPrevious() {
		t.Error("CanGoPrevious at index 0")
	}
	if !m.CanGoNext() {
		t.Error("CanGoNext should be true at index 0 of 2")
	}
	m.Next()
	if m.CanGoNext() {
		t.Error("CanGoNext at last index")
	}
	if !m.CanGoPrevious() {
		t.Error("CanGoPrevious should be true at last index")
	}
}

func TestManager_Abandon(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 2, &now)

	if !m.Abandon() {
		t.Fatal("Abandon on in-progress session returned false")
	}
	if m.Status() != StatusAbandoned {
		t.Errorf("Status = %v, want abandoned", m.Status())
	}
	if m.Abandon() {
		t.Error("second Abandon should be false")
	}
	if m.Summarize() != nil {
		t.Error("abandoned session produced a summary")
	}
	if m.CurrentQuestion() != nil {
		t.Error("CurrentQuestion after abandon should be nil")
	}
}

func TestManager_MisuseBeforeStart(t *testing.T) {
	m := NewManager(nil)
	if m.CurrentQuestion() != nil {
		t.Error("CurrentQuestion before start should be nil")
	}
	if q := m.Next(); q != nil {
		t.Error("Next before start should be nil")
	}
	if m.Status() != StatusNotStarted {
		t.Errorf("Next before start changed status to %v", m.Status())
	}
	if _, ok := m.Answer("a", "c1"); ok {
		t.Error("Answer before start should be rejected")
	}
	if m.Abandon() {
		t.Error("Abandon before start should be false")
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusNotStarted: "not_started",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
		StatusAbandoned:  "abandoned",
	}
	for st, want := range cases {
		if got := st.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(st), got, want)
		}
	}
}
