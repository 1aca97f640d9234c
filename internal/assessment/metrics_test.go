package assessment

import (
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

func TestCalculateMetrics_Timing(t *testing.T) {
	qs := []tco.Question{
		q("q1", tco.DomainAskingQuestions, tco.Beginner),
		q("q2", tco.DomainAskingQuestions, tco.Beginner),
		q("q3", tco.DomainAskingQuestions, tco.Beginner),
	}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	s.Record(Response{QuestionID: "q1", ChoiceID: "c1", Correct: true, TimeSeconds: 30})
	s.Record(Response{QuestionID: "q2", ChoiceID: "c1", Correct: true, TimeSeconds: 90})
	s.Record(Response{QuestionID: "q3", ChoiceID: "c1", Correct: true}) // untimed
	completed := examStart.Add(5 * time.Minute)
	s.CompletedAt = &completed

	m := CalculateMetrics(s)
	if m.TotalSeconds != 300 {
		t.Errorf("TotalSeconds = %d, want 300", m.TotalSeconds)
	}
	if m.AverageSeconds != 60 {
		t.Errorf("AverageSeconds = %v, want 60 (untimed responses excluded)", m.AverageSeconds)
	}
	if m.FastestSeconds != 30 || m.SlowestSeconds != 90 {
		t.Errorf("fastest/slowest = %d/%d, want 30/90", m.FastestSeconds, m.SlowestSeconds)
	}
}

func TestCalculateMetrics_ConfidenceAlignment(t *testing.T) {
	qs := []tco.Question{
		q("q1", tco.DomainAskingQuestions, tco.Beginner),
		q("q2", tco.DomainAskingQuestions, tco.Beginner),
		q("q3", tco.DomainAskingQuestions, tco.Beginner),
	}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	// Confident and right: perfect alignment.
	s.Record(Response{QuestionID: "q1", ChoiceID: "c1", Correct: true, Confidence: 5})
	// Confident and wrong: zero alignment.
	s.Record(Response{QuestionID: "q2", ChoiceID: "c2", Correct: false, Confidence: 5})
	// No confidence captured: excluded from the average.
	s.Record(Response{QuestionID: "q3", ChoiceID: "c1", Correct: true})

	m := CalculateMetrics(s)
	if !floatEq(m.ConfidenceAlignment, 0.5) {
		t.Errorf("ConfidenceAlignment = %v, want 0.5", m.ConfidenceAlignment)
	}
}

func TestCalculateMetrics_NoConfidenceData(t *testing.T) {
	qs := []tco.Question{q("q1", tco.DomainAskingQuestions, tco.Beginner)}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	s.Record(Response{QuestionID: "q1", ChoiceID: "c1", Correct: true})

	m := CalculateMetrics(s)
	if m.ConfidenceAlignment != 0 {
		t.Errorf("ConfidenceAlignment = %v, want 0 with no ratings", m.ConfidenceAlignment)
	}
}

func TestCalculateMetrics_DifficultyBreakdown(t *testing.T) {
	qs := []tco.Question{
		q("q1", tco.DomainAskingQuestions, tco.Beginner),
		q("q2", tco.DomainAskingQuestions, tco.Advanced),
	}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	s.Record(Response{QuestionID: "q1", ChoiceID: "c1", Correct: true})
	s.Record(Response{QuestionID: "q2", ChoiceID: "c2", Correct: false})

	m := CalculateMetrics(s)
	if len(m.ByDifficulty) != len(tco.AllDifficulties()) {
		t.Fatalf("len(ByDifficulty) = %d, want %d", len(m.ByDifficulty), len(tco.AllDifficulties()))
	}
	if ds := m.ByDifficulty[tco.Beginner]; ds.Attempted != 1 || ds.Percentage != 100 {
		t.Errorf("beginner = %+v, want 1 attempted at 100%%", ds)
	}
	if ds := m.ByDifficulty[tco.Advanced]; ds.Attempted != 1 || ds.Percentage != 0 {
		t.Errorf("advanced = %+v, want 1 attempted at 0%%", ds)
	}
	if ds := m.ByDifficulty[tco.Expert]; ds.Attempted != 0 {
		t.Errorf("expert = %+v, want untouched", ds)
	}
}

func TestSuggestNextDifficulty(t *testing.T) {
	stat := func(attempted, correct int) DifficultyStats {
		ds := DifficultyStats{Attempted: attempted, Correct: correct}
		if attempted > 0 {
			ds.Percentage = float64(correct) / float64(attempted) * 100
		}
		return ds
	}

	cases := []struct {
		name  string
		stats map[tco.Difficulty]DifficultyStats
		want  tco.Difficulty
	}{
		{
			"advance on mastery",
			map[tco.Difficulty]DifficultyStats{tco.Beginner: stat(5, 5)},
			tco.Intermediate,
		},
		{
			"drop on struggle",
			map[tco.Difficulty]DifficultyStats{tco.Intermediate: stat(5, 2)},
			tco.Beginner,
		},
		{
			"stay in between",
			map[tco.Difficulty]DifficultyStats{tco.Intermediate: stat(5, 3)},
			tco.Intermediate,
		},
		{
			"expert mastery stays expert",
			map[tco.Difficulty]DifficultyStats{tco.Expert: stat(4, 4)},
			tco.Expert,
		},
		{
			"too little signal falls back to attempted tier",
			map[tco.Difficulty]DifficultyStats{tco.Advanced: stat(2, 2)},
			tco.Advanced,
		},
		{
			"no answers at all",
			map[tco.Difficulty]DifficultyStats{},
			tco.Beginner,
		},
		{
			"highest qualified tier wins",
			map[tco.Difficulty]DifficultyStats{
				tco.Beginner:     stat(5, 5),
				tco.Intermediate: stat(5, 1),
			},
			tco.Beginner,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := suggestNextDifficulty(tc.stats); got != tc.want {
				t.Errorf("suggestNextDifficulty = %s, want %s", got, tc.want)
			}
		})
	}
}
