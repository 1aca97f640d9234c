package assessment

import (
	"math"
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

var examStart = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func q(id string, domain tco.Domain, diff tco.Difficulty, objectives ...string) tco.Question {
	if len(objectives) == 0 {
		objectives = []string{"obj-default"}
	}
	return tco.Question{
		ID:              id,
		Text:            "stem",
		Domain:          domain,
		Difficulty:      diff,
		ObjectiveIDs:    objectives,
		Choices:         []tco.Choice{{ID: "c1", Text: "right"}, {ID: "c2", Text: "wrong"}},
		CorrectChoiceID: "c1",
	}
}

func answered(s *Session, t *testing.T, questionID string, correct bool) {
	t.Helper()
	choice := "c1"
	if !correct {
		choice = "c2"
	}
	if err := s.Record(Response{QuestionID: questionID, ChoiceID: choice, Correct: correct}); err != nil {
		t.Fatalf("Record(%s): %v", questionID, err)
	}
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateScore_Perfect(t *testing.T) {
	qs := []tco.Question{
		q("q1", tco.DomainAskingQuestions, tco.Beginner),
		q("q2", tco.DomainTakingAction, tco.Expert),
		q("q3", tco.DomainReportingExport, tco.Advanced),
	}
	s, err := NewSession("s1", "u1", "", qs, Config{Type: TypeMockExam}, examStart)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for _, question := range qs {
		answered(s, t, question.ID, true)
	}

	score := CalculateScore(s)
	if score.Percentage != 100 {
		t.Errorf("Percentage = %v, want 100", score.Percentage)
	}
	if score.Weighted != 100 {
		t.Errorf("Weighted = %v, want 100", score.Weighted)
	}
	if !score.Passed {
		t.Error("perfect score should pass")
	}
	if score.Correct != 3 || score.Incorrect != 0 || score.Total != 3 {
		t.Errorf("tallies = %d/%d/%d, want 3/0/3", score.Correct, score.Incorrect, score.Total)
	}
}

func TestCalculateScore_AllDomainsAlwaysPresent(t *testing.T) {
	qs := []tco.Question{q("q1", tco.DomainAskingQuestions, tco.Beginner)}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	answered(s, t, "q1", true)

	score := CalculateScore(s)
	if len(score.ByDomain) != len(tco.AllDomains()) {
		t.Fatalf("len(ByDomain) = %d, want %d", len(score.ByDomain), len(tco.AllDomains()))
	}
	for _, d := range tco.AllDomains() {
		ds, ok := score.ByDomain[d]
		if !ok {
			t.Errorf("domain %s missing from breakdown", d)
			continue
		}
		if d != tco.DomainAskingQuestions && ds.Total != 0 {
			t.Errorf("unattempted domain %s has Total = %d", d, ds.Total)
		}
	}
	if ds := score.ByDomain[tco.DomainAskingQuestions]; ds.Correct != 1 || ds.Percentage != 100 {
		t.Errorf("attempted domain = %+v, want 1 correct at 100%%", ds)
	}
}

func TestCalculateScore_WeightedDivergesFromRaw(t *testing.T) {
	// A missed expert question in a heavier domain drags the weighted
	// score below the raw percentage.
	qs := []tco.Question{
		q("easy", tco.DomainTakingAction, tco.Beginner),
		q("hard", tco.DomainRefiningTargeting, tco.Expert),
	}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	answered(s, t, "easy", true)
	answered(s, t, "hard", false)

	score := CalculateScore(s)
	if score.Percentage != 50 {
		t.Fatalf("Percentage = %v, want 50", score.Percentage)
	}
	// earned = 1.0*15, total = 1.0*15 + 2.0*23 = 61.
	want := 15.0 / 61.0 * 100
	if !floatEq(score.Weighted, want) {
		t.Errorf("Weighted = %v, want %v", score.Weighted, want)
	}
}

func TestCalculateScore_EmptySession(t *testing.T) {
	qs := []tco.Question{q("q1", tco.DomainAskingQuestions, tco.Beginner)}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)

	score := CalculateScore(s)
	if score.Percentage != 0 || score.Weighted != 0 {
		t.Errorf("empty session scored %v/%v, want 0/0", score.Percentage, score.Weighted)
	}
	if math.IsNaN(score.Percentage) || math.IsNaN(score.Weighted) {
		t.Error("empty session produced NaN")
	}
	if score.Passed {
		t.Error("empty session should not pass")
	}
}

func TestCalculateScore_MultiObjectiveContribution(t *testing.T) {
	qs := []tco.Question{
		q("q1", tco.DomainAskingQuestions, tco.Beginner, "obj-a", "obj-b"),
		q("q2", tco.DomainAskingQuestions, tco.Beginner, "obj-b"),
	}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	answered(s, t, "q1", true)
	answered(s, t, "q2", false)

	score := CalculateScore(s)
	a := score.ByObjective["obj-a"]
	if a.Total != 1 || a.Correct != 1 {
		t.Errorf("obj-a = %+v, want 1/1", a)
	}
	b := score.ByObjective["obj-b"]
	if b.Total != 2 || b.Correct != 1 {
		t.Errorf("obj-b = %+v, want 1/2", b)
	}
	if a.Mastery != tco.TierMastery {
		t.Errorf("obj-a mastery = %s, want mastery", a.Mastery)
	}
	if b.Mastery != tco.TierPoor {
		t.Errorf("obj-b mastery = %s, want poor", b.Mastery)
	}
}

func TestCalculateScore_PassThreshold(t *testing.T) {
	qs := make([]tco.Question, 10)
	for i := range qs {
		qs[i] = q(string(rune('a'+i)), tco.DomainAskingQuestions, tco.Beginner)
	}

	cases := []struct {
		name      string
		correct   int
		threshold float64
		passed    bool
	}{
		{"at default threshold", 7, 0, true},
		{"below default threshold", 6, 0, false},
		{"custom threshold met", 9, 0.9, true},
		{"custom threshold missed", 8, 0.9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := NewSession("s1", "u1", "", qs, Config{PassThreshold: tc.threshold}, examStart)
			for i, question := range qs {
				answered(s, t, question.ID, i < tc.correct)
			}
			score := CalculateScore(s)
			if score.Passed != tc.passed {
				t.Errorf("Passed = %v, want %v (%d/10)", score.Passed, tc.passed, tc.correct)
			}
		})
	}
}
