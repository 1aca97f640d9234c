package assessment

import (
	"math"

	"github.com/opsprep/tcoprep/internal/tco"
)

// DifficultyStats is per-difficulty-tier accuracy within a session.
type DifficultyStats struct {
	Attempted  int     `json:"attempted"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

// Metrics holds the performance measurements of an assessment session.
type Metrics struct {
	TotalSeconds        int                                `json:"totalSeconds"`
	AverageSeconds      float64                            `json:"averageSeconds"`
	FastestSeconds      int                                `json:"fastestSeconds"`
	SlowestSeconds      int                                `json:"slowestSeconds"`
	ConfidenceAlignment float64                            `json:"confidenceAlignment"`
	ByDifficulty        map[tco.Difficulty]DifficultyStats `json:"byDifficulty"`
	NextDifficulty      tco.Difficulty                     `json:"nextDifficulty"`
}

// Accuracy thresholds for the next-difficulty suggestion.
const (
	advanceAccuracy  = 80.0
	struggleAccuracy = 60.0

	// minTierAttempts is how many answers a tier needs before its accuracy
	// drives the suggestion.
	minTierAttempts = 3
)

// CalculateMetrics computes timing, confidence alignment and difficulty
// progression for a session. All divisions degrade to 0 on empty input.
func CalculateMetrics(s *Session) Metrics {
	m := Metrics{
		ByDifficulty:   make(map[tco.Difficulty]DifficultyStats, len(tco.AllDifficulties())),
		NextDifficulty: tco.Beginner,
	}
	for _, d := range tco.AllDifficulties() {
		m.ByDifficulty[d] = DifficultyStats{}
	}

	if s.CompletedAt != nil && !s.StartedAt.IsZero() {
		total := int(s.CompletedAt.Sub(s.StartedAt).Seconds())
		if total > 0 {
			m.TotalSeconds = total
		}
	}

	timed := 0
	timedSum := 0
	var alignSum float64
	rated := 0

	for i := range s.Responses {
		r := &s.Responses[i]

		if r.TimeSeconds > 0 {
			timed++
			timedSum += r.TimeSeconds
			if m.FastestSeconds == 0 || r.TimeSeconds < m.FastestSeconds {
				m.FastestSeconds = r.TimeSeconds
			}
			if r.TimeSeconds > m.SlowestSeconds {
				m.SlowestSeconds = r.TimeSeconds
			}
		}

		if r.Confidence >= 1 && r.Confidence <= 5 {
			rated++
			correctness := 1.0
			if r.Correct {
				correctness = 5.0
			}
			alignSum += 1.0 - math.Abs(float64(r.Confidence)-correctness)/4.0
		}

		q := s.questionByID(r.QuestionID)
		if q == nil {
			continue
		}
		ds := m.ByDifficulty[q.Difficulty]
		ds.Attempted++
		if r.Correct {
			ds.Correct++
		}
		m.ByDifficulty[q.Difficulty] = ds
	}

	if timed > 0 {
		m.AverageSeconds = float64(timedSum) / float64(timed)
	}
	if rated > 0 {
		m.ConfidenceAlignment = alignSum / float64(rated)
	}

	for d, ds := range m.ByDifficulty {
		if ds.Attempted > 0 {
			ds.Percentage = float64(ds.Correct) / float64(ds.Attempted) * 100
			m.ByDifficulty[d] = ds
		}
	}

	m.NextDifficulty = suggestNextDifficulty(m.ByDifficulty)
	return m
}

// suggestNextDifficulty picks the tier the learner should practice next:
// mastering the highest attempted tier advances one step, struggling at it
// drops one step, anything in between stays put.
func suggestNextDifficulty(stats map[tco.Difficulty]DifficultyStats) tco.Difficulty {
	var highest tco.Difficulty
	found := false
	for _, d := range tco.AllDifficulties() {
		if stats[d].Attempted >= minTierAttempts {
			highest = d
			found = true
		}
	}
	if !found {
		// Too little signal at any tier; fall back to the easiest tier
		// that saw at least one answer.
		for _, d := range tco.AllDifficulties() {
			if stats[d].Attempted > 0 {
				return d
			}
		}
		return tco.Beginner
	}

	switch pct := stats[highest].Percentage; {
	case pct >= advanceAccuracy:
		return highest.NextHarder()
	case pct < struggleAccuracy:
		return highest.NextEasier()
	default:
		return highest
	}
}
