package session

import (
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

func TestSummarize_RequiresCompletion(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 2, &now)
	if m.Summarize() != nil {
		t.Error("in-progress session produced a summary")
	}
}

func TestSummarize_ScoreAndPass(t *testing.T) {
	now := sessionStart
	m := NewManager(fixedClock(&now))
	qs := testQuestions(4)
	if err := m.Start(Config{PassingScore: 0.75}, "u1", qs); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Three right, one wrong: exactly at the 75% threshold.
	answers := []string{"c1", "c1", "c1", "c2"}
	for _, choice := range answers {
		m.Answer(m.CurrentQuestion().ID, choice)
		now = now.Add(30 * time.Second)
		m.Next()
	}

	sum := m.Summarize()
	if sum == nil {
		t.Fatal("expected a summary")
	}
	if sum.ScorePercent != 75 {
		t.Errorf("ScorePercent = %v, want 75", sum.ScorePercent)
	}
	if !sum.Passed {
		t.Error("score at threshold should pass")
	}
	if sum.TotalQuestions != 4 || sum.Answered != 4 || sum.Correct != 3 {
		t.Errorf("totals = %d/%d/%d, want 4/4/3",
			sum.TotalQuestions, sum.Answered, sum.Correct)
	}
	if sum.Elapsed != 2*time.Minute {
		t.Errorf("Elapsed = %v, want 2m", sum.Elapsed)
	}
}

func TestSummarize_DefaultPassingScore(t *testing.T) {
	now := sessionStart
	m := NewManager(fixedClock(&now))
	if err := m.Start(Config{}, "u1", testQuestions(10)); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		choice := "c1"
		if i >= 7 {
			choice = "c2"
		}
		m.Answer(m.CurrentQuestion().ID, choice)
		m.Next()
	}

	sum := m.Summarize()
	if sum.ScorePercent != 70 {
		t.Fatalf("ScorePercent = %v, want 70", sum.ScorePercent)
	}
	if !sum.Passed {
		t.Error("70%% should pass the default 0.70 threshold")
	}
}

func TestSummarize_UnansweredCountAgainstScore(t *testing.T) {
	now := sessionStart
	m := startedManager(t, 4, &now)

	// Answer only the first question, skip through the rest.
	m.Answer(m.CurrentQuestion().ID, "c1")
	for m.Status() == StatusInProgress {
		m.Next()
	}

	sum := m.Summarize()
	if sum.Answered != 1 {
		t.Errorf("Answered = %d, want 1", sum.Answered)
	}
	if sum.ScorePercent != 25 {
		t.Errorf("ScorePercent = %v, want 25 (unanswered count as wrong)", sum.ScorePercent)
	}
}

func TestSummarize_DomainBreakdown(t *testing.T) {
	now := sessionStart
	m := NewManager(fixedClock(&now))
	qs := []tco.Question{
		{ID: "q1", Text: "t", Domain: tco.DomainAskingQuestions, Difficulty: tco.Beginner,
			ObjectiveIDs: []string{"o1"}, Choices: []tco.Choice{{ID: "c1", Text: "y"}, {ID: "c2", Text: "n"}}, CorrectChoiceID: "c1"},
		{ID: "q2", Text: "t", Domain: tco.DomainTakingAction, Difficulty: tco.Beginner,
			ObjectiveIDs: []string{"o1"}, Choices: []tco.Choice{{ID: "c1", Text: "y"}, {ID: "c2", Text: "n"}}, CorrectChoiceID: "c1"},
		{ID: "q3", Text: "t", Domain: tco.DomainAskingQuestions, Difficulty: tco.Beginner,
			ObjectiveIDs: []string{"o1"}, Choices: []tco.Choice{{ID: "c1", Text: "y"}, {ID: "c2", Text: "n"}}, CorrectChoiceID: "c1"},
	}
	if err := m.Start(Config{}, "u1", qs); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	m.Answer("q1", "c1")
	m.Next()
	m.Answer("q2", "c2")
	m.Next()
	// q3 left unanswered.
	m.Next()

	sum := m.Summarize()
	if len(sum.ByDomain) != 2 {
		t.Fatalf("len(ByDomain) = %d, want 2 (only answered domains)", len(sum.ByDomain))
	}

	first := sum.ByDomain[0]
	if first.Domain != tco.DomainAskingQuestions || first.Correct != 1 || first.Total != 1 {
		t.Errorf("first domain = %+v, want asking-questions 1/1", first)
	}
	second := sum.ByDomain[1]
	if second.Domain != tco.DomainTakingAction || second.Correct != 0 || second.Total != 1 {
		t.Errorf("second domain = %+v, want taking-action 0/1", second)
	}
	if first.Percentage != 100 || second.Percentage != 0 {
		t.Errorf("percentages = %v/%v, want 100/0", first.Percentage, second.Percentage)
	}
}
