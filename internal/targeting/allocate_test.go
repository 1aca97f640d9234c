package targeting

import (
	"testing"

	"github.com/opsprep/tcoprep/internal/tco"
)

func sumCounts(m map[tco.Domain]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

func TestAllocateByExamWeight_FullBlueprint(t *testing.T) {
	counts := AllocateByExamWeight(tco.AllDomains(), 100)

	want := map[tco.Domain]int{
		tco.DomainAskingQuestions:   22,
		tco.DomainRefiningTargeting: 23,
		tco.DomainTakingAction:      15,
		tco.DomainNavigationModules: 23,
		tco.DomainReportingExport:   17,
	}
	for d, n := range want {
		if counts[d] != n {
			t.Errorf("%s = %d, want %d", d, counts[d], n)
		}
	}
}

func TestAllocateByExamWeight_SumsAndFloors(t *testing.T) {
	for _, total := range []int{5, 10, 20, 37, 75} {
		counts := AllocateByExamWeight(tco.AllDomains(), total)
		if got := sumCounts(counts); got != total {
			t.Errorf("total %d: counts sum to %d", total, got)
		}
		for d, n := range counts {
			if n < 1 {
				t.Errorf("total %d: domain %s got %d, want at least 1", total, d, n)
			}
		}
	}
}

func TestAllocateByExamWeight_Deterministic(t *testing.T) {
	a := AllocateByExamWeight(tco.AllDomains(), 37)
	b := AllocateByExamWeight(tco.AllDomains(), 37)
	for d := range a {
		if a[d] != b[d] {
			t.Errorf("allocation not deterministic for %s: %d vs %d", d, a[d], b[d])
		}
	}
}

func TestAllocateByNeedsReview_Proportional(t *testing.T) {
	domains := []tco.Domain{tco.DomainAskingQuestions, tco.DomainTakingAction}
	counts := AllocateByNeedsReview(map[tco.Domain]int{
		tco.DomainAskingQuestions: 6,
		tco.DomainTakingAction:    2,
	}, domains, 8)

	if counts[tco.DomainAskingQuestions] != 6 {
		t.Errorf("asking-questions = %d, want 6", counts[tco.DomainAskingQuestions])
	}
	if counts[tco.DomainTakingAction] != 2 {
		t.Errorf("taking-action = %d, want 2", counts[tco.DomainTakingAction])
	}
}

func TestAllocateByNeedsReview_EmptyBacklogFallsBack(t *testing.T) {
	counts := AllocateByNeedsReview(map[tco.Domain]int{}, tco.AllDomains(), 100)
	fromWeights := AllocateByExamWeight(tco.AllDomains(), 100)
	for _, d := range tco.AllDomains() {
		if counts[d] != fromWeights[d] {
			t.Errorf("%s = %d, want exam-weight %d", d, counts[d], fromWeights[d])
		}
	}
}

func TestAllocateByNeedsReview_ZeroCountDomainStillFloored(t *testing.T) {
	counts := AllocateByNeedsReview(map[tco.Domain]int{
		tco.DomainAskingQuestions: 5,
	}, tco.AllDomains(), 20)

	if got := sumCounts(counts); got != 20 {
		t.Errorf("counts sum to %d, want 20", got)
	}
	for _, d := range tco.AllDomains() {
		if counts[d] < 1 {
			t.Errorf("%s = %d, want at least 1", d, counts[d])
		}
	}
}

func TestAllocate_Degenerate(t *testing.T) {
	if got := AllocateByExamWeight(nil, 10); len(got) != 0 {
		t.Errorf("nil domains allocated %v", got)
	}
	if got := AllocateByExamWeight(tco.AllDomains(), 0); len(got) != 0 {
		t.Errorf("zero total allocated %v", got)
	}
}
