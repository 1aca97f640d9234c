package session

import (
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

// DomainResult is the per-domain answer tally within a session.
type DomainResult struct {
	Domain     tco.Domain
	Correct    int
	Total      int
	Percentage float64
}

// Summary is the derived result of a completed session. Only the summary
// outlives the manager; the session itself is discarded.
type Summary struct {
	SessionID      string
	UserID         string
	ModuleID       string
	TotalQuestions int
	Answered       int
	Correct        int
	ScorePercent   float64
	Passed         bool
	ByDomain       []DomainResult
	Elapsed        time.Duration
}

// Summarize builds the session summary. Returns nil unless the session has
// completed: abandoned and in-progress sessions produce no summary.
func (m *Manager) Summarize() *Summary {
	if m.status != StatusCompleted {
		return nil
	}

	correct := 0
	for _, ok := range m.correctness {
		if ok {
			correct++
		}
	}

	total := len(m.questions)
	var pct float64
	if total > 0 {
		pct = float64(correct) / float64(total) * 100
	}

	return &Summary{
		SessionID:      m.id,
		UserID:         m.userID,
		ModuleID:       m.config.ModuleID,
		TotalQuestions: total,
		Answered:       len(m.answers),
		Correct:        correct,
		ScorePercent:   pct,
		Passed:         pct >= ResolvePassingScore(m.config)*100,
		ByDomain:       m.domainResults(),
		Elapsed:        m.Elapsed(),
	}
}

// domainResults groups answered questions by domain, in first-seen order.
// Only domains present in the session snapshot appear; the assessment
// engine is what reports the full blueprint enumeration.
func (m *Manager) domainResults() []DomainResult {
	totals := make(map[tco.Domain]*DomainResult)
	var order []tco.Domain

	for i := range m.questions {
		q := &m.questions[i]
		if _, answered := m.answers[q.ID]; !answered {
			continue
		}
		dr := totals[q.Domain]
		if dr == nil {
			dr = &DomainResult{Domain: q.Domain}
			totals[q.Domain] = dr
			order = append(order, q.Domain)
		}
		dr.Total++
		if m.correctness[q.ID] {
			dr.Correct++
		}
	}

	results := make([]DomainResult, 0, len(order))
	for _, d := range order {
		dr := totals[d]
		if dr.Total > 0 {
			dr.Percentage = float64(dr.Correct) / float64(dr.Total) * 100
		}
		results = append(results, *dr)
	}
	return results
}
