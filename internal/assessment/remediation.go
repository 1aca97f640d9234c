package assessment

import (
	"fmt"
	"math"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

// Recommendation is the overall post-assessment recommendation tier.
type Recommendation string

const (
	RecommendContinue      Recommendation = "continue"
	RecommendPracticeMore  Recommendation = "practice_more"
	RecommendReviewContent Recommendation = "review_content"
	RecommendSeekHelp      Recommendation = "seek_help"
)

// ObjectiveStatus classifies an objective's remediation need.
type ObjectiveStatus string

const (
	ObjectiveMastered      ObjectiveStatus = "mastered"
	ObjectiveNeedsPractice ObjectiveStatus = "needs_practice"
	ObjectiveNeedsReview   ObjectiveStatus = "needs_review"
	ObjectiveCriticalGap   ObjectiveStatus = "critical_gap"
)

// Retake policy constants.
const (
	RetakeWaitHours   = 24
	RetakeMaxAttempts = 3
)

// Estimated remediation minutes per recommendation tier.
var remediationMinutes = map[Recommendation]int{
	RecommendContinue:      0,
	RecommendPracticeMore:  30,
	RecommendReviewContent: 60,
	RecommendSeekHelp:      120,
}

// practiceCountMultiplier maps an objective status to its suggested
// practice-question multiplier.
var practiceCountMultiplier = map[ObjectiveStatus]float64{
	ObjectiveMastered:      0.3,
	ObjectiveNeedsPractice: 0.8,
	ObjectiveNeedsReview:   1.2,
	ObjectiveCriticalGap:   1.5,
}

// ObjectiveRemediation is the remediation prescription for one objective.
type ObjectiveRemediation struct {
	ObjectiveID        string          `json:"objectiveId"`
	Status             ObjectiveStatus `json:"status"`
	Percentage         float64         `json:"percentage"`
	Actions            []string        `json:"actions"`
	SuggestedQuestions int             `json:"suggestedQuestions"`
}

// StudyPlanItem is one ordered step in the generated study plan.
type StudyPlanItem struct {
	Order         int           `json:"order"`
	Title         string        `json:"title"`
	Type          string        `json:"type"` // "review" or "practice"
	EstimatedTime time.Duration `json:"estimatedTime"`
	ObjectiveIDs  []string      `json:"objectiveIds"`
	Completed     bool          `json:"completed"`
}

// Retake describes retake eligibility after a failed assessment.
// Attempt counting itself is external state.
type Retake struct {
	Eligible    bool      `json:"eligible"`
	WaitHours   int       `json:"waitHours"`
	MaxAttempts int       `json:"maxAttempts"`
	NextAt      time.Time `json:"nextAt,omitempty"`
}

// Plan is the remediation plan generated after a scored assessment.
type Plan struct {
	Recommendation   Recommendation         `json:"recommendation"`
	EstimatedMinutes int                    `json:"estimatedMinutes"`
	Objectives       []ObjectiveRemediation `json:"objectives"`
	StudyPlan        []StudyPlanItem        `json:"studyPlan"`
	Retake           Retake                 `json:"retake"`
}

// GeneratePlan derives the remediation plan from a session's score and
// metrics. Deterministic: objectives are processed in sorted ID order.
func GeneratePlan(s *Session, score Score, metrics Metrics) Plan {
	threshold := ResolvePassThreshold(s.Config) * 100

	rec := recommendationFor(score.Percentage, threshold)
	plan := Plan{
		Recommendation:   rec,
		EstimatedMinutes: remediationMinutes[rec],
	}

	for _, objID := range sortedObjectiveIDs(score.ByObjective) {
		obj := score.ByObjective[objID]
		status := objectiveStatus(obj)
		plan.Objectives = append(plan.Objectives, ObjectiveRemediation{
			ObjectiveID:        objID,
			Status:             status,
			Percentage:         obj.Percentage,
			Actions:            actionsFor(status, objID),
			SuggestedQuestions: suggestedQuestions(status, obj.Total),
		})
	}

	plan.StudyPlan = buildStudyPlan(plan.Objectives)

	plan.Retake = Retake{
		Eligible:    !score.Passed,
		WaitHours:   RetakeWaitHours,
		MaxAttempts: RetakeMaxAttempts,
	}
	if !score.Passed && s.CompletedAt != nil {
		plan.Retake.NextAt = s.CompletedAt.Add(RetakeWaitHours * time.Hour)
	}

	return plan
}

// recommendationFor picks the overall tier by comparing the score against
// the pass threshold at fixed bands.
func recommendationFor(pct, threshold float64) Recommendation {
	switch {
	case pct >= threshold:
		return RecommendContinue
	case pct >= threshold*0.8:
		return RecommendPracticeMore
	case pct >= threshold*0.6:
		return RecommendReviewContent
	default:
		return RecommendSeekHelp
	}
}

// objectiveStatus classifies one objective from its mastery tier and raw
// percentage.
func objectiveStatus(obj ObjectiveScore) ObjectiveStatus {
	switch {
	case obj.Mastery == tco.TierMastery:
		return ObjectiveMastered
	case obj.Percentage >= 60:
		return ObjectiveNeedsPractice
	case obj.Percentage >= 40:
		return ObjectiveNeedsReview
	default:
		return ObjectiveCriticalGap
	}
}

// actionsFor returns the fixed action template for a status.
func actionsFor(status ObjectiveStatus, objID string) []string {
	switch status {
	case ObjectiveMastered:
		return []string{
			fmt.Sprintf("Maintain %s with occasional spaced reviews", objID),
		}
	case ObjectiveNeedsPractice:
		return []string{
			fmt.Sprintf("Work additional practice questions for %s", objID),
			"Review explanations for any missed questions",
		}
	case ObjectiveNeedsReview:
		return []string{
			fmt.Sprintf("Re-read the study module covering %s", objID),
			fmt.Sprintf("Work guided practice questions for %s", objID),
		}
	default: // critical gap
		return []string{
			fmt.Sprintf("Restart the study module covering %s from the beginning", objID),
			"Review the console walkthroughs for this area",
			fmt.Sprintf("Work a full practice set for %s before reassessing", objID),
		}
	}
}

// suggestedQuestions scales the practice-question count by the status
// multiplier over max(5, questions seen for the objective).
func suggestedQuestions(status ObjectiveStatus, seen int) int {
	base := seen
	if base < 5 {
		base = 5
	}
	return int(math.Round(practiceCountMultiplier[status] * float64(base)))
}

// statusPriority orders study-plan generation: worst objectives first.
var statusPriority = map[ObjectiveStatus]int{
	ObjectiveCriticalGap:   0,
	ObjectiveNeedsReview:   1,
	ObjectiveNeedsPractice: 2,
}

// buildStudyPlan interleaves a review item then a practice item per
// non-mastered objective, ordered by remediation priority with sequential
// order numbers from 1.
func buildStudyPlan(objectives []ObjectiveRemediation) []StudyPlanItem {
	byPriority := make([]ObjectiveRemediation, 0, len(objectives))
	for _, o := range objectives {
		if o.Status == ObjectiveMastered {
			continue
		}
		byPriority = append(byPriority, o)
	}
	// Stable: the input is already in sorted objective-ID order.
	for i := 1; i < len(byPriority); i++ {
		for j := i; j > 0 && statusPriority[byPriority[j].Status] < statusPriority[byPriority[j-1].Status]; j-- {
			byPriority[j], byPriority[j-1] = byPriority[j-1], byPriority[j]
		}
	}

	var items []StudyPlanItem
	order := 1
	for _, o := range byPriority {
		items = append(items, StudyPlanItem{
			Order:         order,
			Title:         fmt.Sprintf("Review %s", o.ObjectiveID),
			Type:          "review",
			EstimatedTime: 15 * time.Minute,
			ObjectiveIDs:  []string{o.ObjectiveID},
		})
		order++
		items = append(items, StudyPlanItem{
			Order:         order,
			Title:         fmt.Sprintf("Practice %s (%d questions)", o.ObjectiveID, o.SuggestedQuestions),
			Type:          "practice",
			EstimatedTime: time.Duration(o.SuggestedQuestions) * 90 * time.Second,
			ObjectiveIDs:  []string{o.ObjectiveID},
		})
		order++
	}
	return items
}
