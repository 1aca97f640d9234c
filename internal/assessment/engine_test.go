package assessment

import (
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

func TestNewSession_RequiresQuestions(t *testing.T) {
	if _, err := NewSession("s1", "u1", "", nil, Config{}, examStart); err == nil {
		t.Error("expected error for empty question list")
	}
}

func TestNewSession_SnapshotsQuestions(t *testing.T) {
	pool := []tco.Question{q("q1", tco.DomainAskingQuestions, tco.Beginner)}
	s, err := NewSession("s1", "u1", "", pool, Config{}, examStart)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	pool[0].CorrectChoiceID = "c2"
	if s.Questions[0].CorrectChoiceID != "c1" {
		t.Error("mutating the source pool leaked into the session")
	}
}

func TestRecord_CapsAtQuestionCount(t *testing.T) {
	qs := []tco.Question{q("q1", tco.DomainAskingQuestions, tco.Beginner)}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)

	if err := s.Record(Response{QuestionID: "q1", ChoiceID: "c1", Correct: true}); err != nil {
		t.Fatalf("first Record: %v", err)
	}
	if err := s.Record(Response{QuestionID: "q1", ChoiceID: "c2"}); err == nil {
		t.Error("expected error recording beyond the question count")
	}
}

func TestRecord_RejectsUnknownQuestion(t *testing.T) {
	qs := []tco.Question{q("q1", tco.DomainAskingQuestions, tco.Beginner)}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)

	if err := s.Record(Response{QuestionID: "ghost", ChoiceID: "c1"}); err == nil {
		t.Error("expected error for unknown question")
	}
}

func TestComplete_StampsOnce(t *testing.T) {
	qs := []tco.Question{q("q1", tco.DomainAskingQuestions, tco.Beginner)}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	answered(s, t, "q1", true)

	first := examStart.Add(10 * time.Minute)
	r1, err := Complete(s, first)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", s.Status)
	}
	if s.CompletedAt == nil || !s.CompletedAt.Equal(first) {
		t.Fatalf("CompletedAt = %v, want %v", s.CompletedAt, first)
	}

	// A second Complete at a later time must not move the timestamp.
	r2, err := Complete(s, first.Add(time.Hour))
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if !s.CompletedAt.Equal(first) {
		t.Errorf("CompletedAt moved to %v", s.CompletedAt)
	}
	if r1.Score.Percentage != r2.Score.Percentage ||
		r1.Metrics.TotalSeconds != r2.Metrics.TotalSeconds {
		t.Error("repeat Complete produced a different result")
	}
}

func TestComplete_FullResult(t *testing.T) {
	qs := make([]tco.Question, 10)
	for i := range qs {
		qs[i] = q(string(rune('a'+i)), tco.DomainAskingQuestions, tco.Beginner)
	}
	s, _ := NewSession("s1", "u1", "", qs, Config{Type: TypeMockExam}, examStart)
	for i, question := range qs {
		answered(s, t, question.ID, i < 3)
	}

	res, err := Complete(s, examStart.Add(15*time.Minute))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.SessionID != "s1" || res.UserID != "u1" {
		t.Errorf("identity = %s/%s, want s1/u1", res.SessionID, res.UserID)
	}
	if res.Score.Percentage != 30 {
		t.Errorf("Percentage = %v, want 30", res.Score.Percentage)
	}
	if res.Plan.Recommendation != RecommendSeekHelp {
		t.Errorf("Recommendation = %s, want seek_help", res.Plan.Recommendation)
	}
	if !res.Plan.Retake.Eligible {
		t.Error("failed assessment should be retake-eligible")
	}
	if res.Metrics.TotalSeconds != 900 {
		t.Errorf("TotalSeconds = %d, want 900", res.Metrics.TotalSeconds)
	}
}

func TestResolveDomain(t *testing.T) {
	qs := []tco.Question{q("q1", tco.DomainTakingAction, tco.Beginner)}

	explicit, _ := NewSession("s1", "u1", tco.DomainReportingExport, qs, Config{}, examStart)
	if d := ResolveDomain(explicit); d != tco.DomainReportingExport {
		t.Errorf("explicit domain = %s, want reporting-data-export", d)
	}

	inferred, _ := NewSession("s2", "u1", "", qs, Config{}, examStart)
	if d := ResolveDomain(inferred); d != tco.DomainTakingAction {
		t.Errorf("inferred domain = %s, want taking-action", d)
	}

	empty := &Session{}
	if d := ResolveDomain(empty); d != tco.AllDomains()[0] {
		t.Errorf("fallback domain = %s, want %s", d, tco.AllDomains()[0])
	}
}

func TestResolvePassThreshold(t *testing.T) {
	if got := ResolvePassThreshold(Config{}); got != DefaultPassThreshold {
		t.Errorf("unset threshold = %v, want default %v", got, DefaultPassThreshold)
	}
	if got := ResolvePassThreshold(Config{PassThreshold: 0.85}); got != 0.85 {
		t.Errorf("threshold = %v, want 0.85", got)
	}
}
