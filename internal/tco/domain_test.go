package tco

import "testing"

func TestExamWeightsSumTo100(t *testing.T) {
	total := 0
	for _, d := range AllDomains() {
		total += ExamWeight(d)
	}
	if total != 100 {
		t.Errorf("exam weights sum to %d, want 100", total)
	}
}

func TestExamWeights(t *testing.T) {
	cases := map[Domain]int{
		DomainAskingQuestions:   22,
		DomainRefiningTargeting: 23,
		DomainTakingAction:      15,
		DomainNavigationModules: 23,
		DomainReportingExport:   17,
	}
	for d, want := range cases {
		if got := ExamWeight(d); got != want {
			t.Errorf("ExamWeight(%s) = %d, want %d", d, got, want)
		}
	}
	if got := ExamWeight("interacting"); got != 0 {
		t.Errorf("ExamWeight(unknown) = %d, want 0", got)
	}
}

func TestIsValidDomain(t *testing.T) {
	for _, d := range AllDomains() {
		if !IsValidDomain(d) {
			t.Errorf("IsValidDomain(%s) = false", d)
		}
	}
	if IsValidDomain("asking_questions") {
		t.Error("underscore variant should not validate")
	}
	if IsValidDomain("") {
		t.Error("empty domain should not validate")
	}
}

func TestDomainDisplayName(t *testing.T) {
	if got := DomainDisplayName(DomainRefiningTargeting); got != "Refining Questions & Targeting" {
		t.Errorf("DomainDisplayName = %q", got)
	}
	if got := DomainDisplayName("custom-domain"); got != "custom-domain" {
		t.Errorf("unknown domain display = %q, want passthrough", got)
	}
}

func TestDifficultyWeights(t *testing.T) {
	cases := map[Difficulty]float64{
		Beginner:     1.0,
		Intermediate: 1.2,
		Advanced:     1.5,
		Expert:       2.0,
	}
	for d, want := range cases {
		if got := d.Weight(); got != want {
			t.Errorf("%s.Weight() = %v, want %v", d, got, want)
		}
	}
	if got := Difficulty("legendary").Weight(); got != 1.0 {
		t.Errorf("unknown difficulty weight = %v, want 1.0", got)
	}
}

func TestDifficultyLadder(t *testing.T) {
	if got := Beginner.NextHarder(); got != Intermediate {
		t.Errorf("Beginner.NextHarder() = %s", got)
	}
	if got := Expert.NextHarder(); got != Expert {
		t.Errorf("Expert.NextHarder() = %s, want clamp at Expert", got)
	}
	if got := Expert.NextEasier(); got != Advanced {
		t.Errorf("Expert.NextEasier() = %s", got)
	}
	if got := Beginner.NextEasier(); got != Beginner {
		t.Errorf("Beginner.NextEasier() = %s, want clamp at Beginner", got)
	}
}

func TestTierForPercentage(t *testing.T) {
	cases := []struct {
		pct  float64
		want MasteryTier
	}{
		{100, TierMastery},
		{90, TierMastery},
		{89.9, TierProficient},
		{80, TierProficient},
		{79.9, TierDeveloping},
		{60, TierDeveloping},
		{59.9, TierPoor},
		{0, TierPoor},
	}
	for _, tc := range cases {
		if got := TierForPercentage(tc.pct); got != tc.want {
			t.Errorf("TierForPercentage(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestQuestionCorrect(t *testing.T) {
	q := Question{CorrectChoiceID: "c1"}
	if !q.Correct("c1") {
		t.Error("correct choice rejected")
	}
	if q.Correct("c2") {
		t.Error("wrong choice accepted")
	}
	if q.Correct("") {
		t.Error("empty choice accepted")
	}
}

func TestQuestionTags(t *testing.T) {
	q := Question{Tags: []string{"sensors", "basics"}}
	if !q.HasTag("sensors") || q.HasTag("deploy") {
		t.Error("HasTag mismatch")
	}
	if !q.HasAnyTag([]string{"deploy", "basics"}) {
		t.Error("HasAnyTag missed an overlapping tag")
	}
	if q.HasAnyTag([]string{"deploy"}) {
		t.Error("HasAnyTag matched a disjoint set")
	}
	if q.HasAnyTag(nil) {
		t.Error("HasAnyTag(nil) should be false")
	}
}
