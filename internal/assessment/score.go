package assessment

import (
	"sort"

	"github.com/opsprep/tcoprep/internal/tco"
)

// DomainScore is the answer tally for one blueprint domain.
type DomainScore struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ObjectiveScore is the answer tally for one learning objective. A question
// mapped to multiple objectives contributes to each of them.
type ObjectiveScore struct {
	ObjectiveID string          `json:"objectiveId"`
	Correct     int             `json:"correct"`
	Total       int             `json:"total"`
	Percentage  float64         `json:"percentage"`
	Mastery     tco.MasteryTier `json:"mastery"`
}

// Score is the computed result of an assessment session.
type Score struct {
	Percentage  float64                    `json:"percentage"`
	Weighted    float64                    `json:"weighted"`
	Correct     int                        `json:"correct"`
	Incorrect   int                        `json:"incorrect"`
	Total       int                        `json:"total"`
	Passed      bool                       `json:"passed"`
	ByDomain    map[tco.Domain]DomainScore `json:"byDomain"`
	ByObjective map[string]ObjectiveScore  `json:"byObjective"`
}

// CalculateScore computes raw and weighted scores with per-domain and
// per-objective breakdowns. An empty response list scores 0, never NaN.
// The domain breakdown always contains every blueprint domain.
func CalculateScore(s *Session) Score {
	score := Score{
		ByDomain:    make(map[tco.Domain]DomainScore, len(tco.AllDomains())),
		ByObjective: make(map[string]ObjectiveScore),
	}
	for _, d := range tco.AllDomains() {
		score.ByDomain[d] = DomainScore{}
	}

	var earnedWeight, totalWeight float64
	objectives := make(map[string]*ObjectiveScore)

	for i := range s.Responses {
		r := &s.Responses[i]
		q := s.questionByID(r.QuestionID)
		if q == nil {
			continue
		}

		score.Total++
		if r.Correct {
			score.Correct++
		} else {
			score.Incorrect++
		}

		w := q.Difficulty.Weight() * float64(tco.ExamWeight(q.Domain))
		totalWeight += w
		if r.Correct {
			earnedWeight += w
		}

		ds := score.ByDomain[q.Domain]
		ds.Total++
		if r.Correct {
			ds.Correct++
		}
		score.ByDomain[q.Domain] = ds

		for _, objID := range q.ObjectiveIDs {
			obj := objectives[objID]
			if obj == nil {
				obj = &ObjectiveScore{ObjectiveID: objID}
				objectives[objID] = obj
			}
			obj.Total++
			if r.Correct {
				obj.Correct++
			}
		}
	}

	if score.Total > 0 {
		score.Percentage = float64(score.Correct) / float64(score.Total) * 100
	}
	if totalWeight > 0 {
		score.Weighted = earnedWeight / totalWeight * 100
	}
	score.Passed = score.Percentage >= ResolvePassThreshold(s.Config)*100

	for d, ds := range score.ByDomain {
		if ds.Total > 0 {
			ds.Percentage = float64(ds.Correct) / float64(ds.Total) * 100
			score.ByDomain[d] = ds
		}
	}

	for id, obj := range objectives {
		if obj.Total > 0 {
			obj.Percentage = float64(obj.Correct) / float64(obj.Total) * 100
		}
		obj.Mastery = tco.TierForPercentage(obj.Percentage)
		score.ByObjective[id] = *obj
	}

	return score
}

// sortedObjectiveIDs returns the objective IDs of a score in stable order.
func sortedObjectiveIDs(byObjective map[string]ObjectiveScore) []string {
	ids := make([]string, 0, len(byObjective))
	for id := range byObjective {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
