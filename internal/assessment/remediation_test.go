package assessment

import (
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/tco"
)

// planFor scores a session with the given correct count out of total
// beginner questions and generates its plan.
func planFor(t *testing.T, correct, total int, threshold float64) (Plan, Score) {
	t.Helper()
	qs := make([]tco.Question, total)
	for i := range qs {
		qs[i] = q(string(rune('a'+i)), tco.DomainAskingQuestions, tco.Beginner)
	}
	s, err := NewSession("s1", "u1", "", qs, Config{PassThreshold: threshold}, examStart)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for i, question := range qs {
		answered(s, t, question.ID, i < correct)
	}
	completed := examStart.Add(20 * time.Minute)
	s.CompletedAt = &completed

	score := CalculateScore(s)
	return GeneratePlan(s, score, CalculateMetrics(s)), score
}

func TestGeneratePlan_RecommendationBands(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		want    Recommendation
		minutes int
	}{
		{"at threshold", 7, RecommendContinue, 0},
		{"within practice band", 6, RecommendPracticeMore, 30},
		{"within review band", 5, RecommendReviewContent, 60},
		{"well below threshold", 3, RecommendSeekHelp, 120},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, _ := planFor(t, tc.correct, 10, 0.70)
			if plan.Recommendation != tc.want {
				t.Errorf("Recommendation = %s, want %s", plan.Recommendation, tc.want)
			}
			if plan.EstimatedMinutes != tc.minutes {
				t.Errorf("EstimatedMinutes = %d, want %d", plan.EstimatedMinutes, tc.minutes)
			}
		})
	}
}

func TestGeneratePlan_PassingSkipsRetake(t *testing.T) {
	plan, score := planFor(t, 10, 10, 0.70)
	if !score.Passed {
		t.Fatal("10/10 should pass")
	}
	if plan.Retake.Eligible {
		t.Error("passing assessment should not be retake-eligible")
	}
	if plan.Recommendation != RecommendContinue {
		t.Errorf("Recommendation = %s, want continue", plan.Recommendation)
	}
}

func TestGeneratePlan_FailingRetakePolicy(t *testing.T) {
	plan, score := planFor(t, 3, 10, 0.70)
	if score.Passed {
		t.Fatal("3/10 should fail")
	}
	if !plan.Retake.Eligible {
		t.Error("failed assessment should be retake-eligible")
	}
	if plan.Retake.WaitHours != 24 || plan.Retake.MaxAttempts != 3 {
		t.Errorf("retake policy = %d h / %d attempts, want 24/3",
			plan.Retake.WaitHours, plan.Retake.MaxAttempts)
	}
	wantNext := examStart.Add(20 * time.Minute).Add(24 * time.Hour)
	if !plan.Retake.NextAt.Equal(wantNext) {
		t.Errorf("NextAt = %v, want %v", plan.Retake.NextAt, wantNext)
	}
}

func TestGeneratePlan_ObjectiveStatuses(t *testing.T) {
	cases := []struct {
		pct  float64
		want ObjectiveStatus
	}{
		{100, ObjectiveMastered},
		{90, ObjectiveMastered},
		{89, ObjectiveNeedsPractice},
		{60, ObjectiveNeedsPractice},
		{59, ObjectiveNeedsReview},
		{40, ObjectiveNeedsReview},
		{39, ObjectiveCriticalGap},
		{0, ObjectiveCriticalGap},
	}
	for _, tc := range cases {
		os := ObjectiveScore{Percentage: tc.pct, Mastery: tco.TierForPercentage(tc.pct)}
		if got := objectiveStatus(os); got != tc.want {
			t.Errorf("objectiveStatus(%v%%) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestGeneratePlan_StudyPlanOrdering(t *testing.T) {
	// One objective per status tier, across several questions each.
	qs := []tco.Question{
		q("q1", tco.DomainAskingQuestions, tco.Beginner, "obj-good"),
		q("q2", tco.DomainAskingQuestions, tco.Beginner, "obj-good"),
		q("q3", tco.DomainAskingQuestions, tco.Beginner, "obj-mid"),
		q("q4", tco.DomainAskingQuestions, tco.Beginner, "obj-mid"),
		q("q5", tco.DomainAskingQuestions, tco.Beginner, "obj-bad"),
		q("q6", tco.DomainAskingQuestions, tco.Beginner, "obj-aced"),
	}
	s, _ := NewSession("s1", "u1", "", qs, Config{}, examStart)
	answered(s, t, "q1", true)
	answered(s, t, "q2", false) // obj-good 1/2 -> needs_review
	answered(s, t, "q3", true)
	answered(s, t, "q4", true) // obj-mid 2/2 -> mastered
	answered(s, t, "q5", false) // obj-bad 0/1 -> critical_gap
	answered(s, t, "q6", true) // obj-aced 1/1 -> mastered

	score := CalculateScore(s)
	plan := GeneratePlan(s, score, CalculateMetrics(s))

	// Mastered objectives are excluded; remaining are ordered worst-first.
	var firstObjectives []string
	for _, item := range plan.StudyPlan {
		firstObjectives = append(firstObjectives, item.ObjectiveIDs[0])
	}
	want := []string{"obj-bad", "obj-bad", "obj-good", "obj-good"}
	if len(firstObjectives) != len(want) {
		t.Fatalf("study plan objectives = %v, want %v", firstObjectives, want)
	}
	for i := range want {
		if firstObjectives[i] != want[i] {
			t.Errorf("studyPlan[%d] objective = %s, want %s", i, firstObjectives[i], want[i])
		}
	}

	for i, item := range plan.StudyPlan {
		if item.Order != i+1 {
			t.Errorf("studyPlan[%d].Order = %d, want %d", i, item.Order, i+1)
		}
	}
	if plan.StudyPlan[0].Type != "review" || plan.StudyPlan[1].Type != "practice" {
		t.Errorf("study plan types = %s/%s, want review/practice",
			plan.StudyPlan[0].Type, plan.StudyPlan[1].Type)
	}
}

func TestSuggestedQuestions(t *testing.T) {
	cases := []struct {
		status ObjectiveStatus
		seen   int
		want   int
	}{
		{ObjectiveCriticalGap, 2, 8},    // max(5,2)=5 * 1.5 = 7.5 -> 8
		{ObjectiveCriticalGap, 10, 15},  // 10 * 1.5
		{ObjectiveNeedsReview, 10, 12},  // 10 * 1.2
		{ObjectiveNeedsPractice, 10, 8}, // 10 * 0.8
		{ObjectiveMastered, 10, 3},      // 10 * 0.3
		{ObjectiveMastered, 1, 2},       // max(5,1)=5 * 0.3 = 1.5 -> 2
	}
	for _, tc := range cases {
		if got := suggestedQuestions(tc.status, tc.seen); got != tc.want {
			t.Errorf("suggestedQuestions(%s, %d) = %d, want %d", tc.status, tc.seen, got, tc.want)
		}
	}
}

func TestGeneratePlan_ActionsMatchStatus(t *testing.T) {
	plan, _ := planFor(t, 0, 5, 0.70)
	if len(plan.Objectives) != 1 {
		t.Fatalf("len(Objectives) = %d, want 1", len(plan.Objectives))
	}
	obj := plan.Objectives[0]
	if obj.Status != ObjectiveCriticalGap {
		t.Fatalf("Status = %s, want critical_gap", obj.Status)
	}
	if len(obj.Actions) != 3 {
		t.Errorf("critical gap actions = %d, want 3", len(obj.Actions))
	}
}
