package targeting

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/opsprep/tcoprep/internal/question"
	"github.com/opsprep/tcoprep/internal/tco"
)

func bankOf(perDomain int) *question.StaticRepo {
	var qs []tco.Question
	for _, d := range tco.AllDomains() {
		for i := 0; i < perDomain; i++ {
			qs = append(qs, tq(string(d)+"-"+string(rune('a'+i)), d))
		}
	}
	return question.NewStaticRepo(qs)
}

func TestBuildWeightedSet_ExactTotal(t *testing.T) {
	repo := bankOf(10)
	rng := rand.New(rand.NewSource(1))

	set, err := BuildWeightedSet(context.Background(), repo, tco.AllDomains(), 20, nil, rng)
	if err != nil {
		t.Fatalf("BuildWeightedSet: %v", err)
	}
	if len(set) != 20 {
		t.Fatalf("len(set) = %d, want 20", len(set))
	}

	seen := make(map[string]bool)
	for _, q := range set {
		if seen[q.ID] {
			t.Errorf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestBuildWeightedSet_EveryDomainRepresented(t *testing.T) {
	repo := bankOf(10)
	rng := rand.New(rand.NewSource(7))

	set, err := BuildWeightedSet(context.Background(), repo, tco.AllDomains(), 20, nil, rng)
	if err != nil {
		t.Fatalf("BuildWeightedSet: %v", err)
	}

	byDomain := make(map[tco.Domain]int)
	for _, q := range set {
		byDomain[q.Domain]++
	}
	for _, d := range tco.AllDomains() {
		if byDomain[d] == 0 {
			t.Errorf("domain %s has no questions in the set", d)
		}
	}
}

func TestBuildWeightedSet_Reproducible(t *testing.T) {
	repo := bankOf(10)

	a, err := BuildWeightedSet(context.Background(), repo, tco.AllDomains(), 10, nil, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("BuildWeightedSet: %v", err)
	}
	b, err := BuildWeightedSet(context.Background(), repo, tco.AllDomains(), 10, nil, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("BuildWeightedSet: %v", err)
	}

	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different sets at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestBuildWeightedSet_TooFewQuestions(t *testing.T) {
	repo := question.NewStaticRepo([]tco.Question{
		tq("q1", tco.DomainAskingQuestions),
		tq("q2", tco.DomainTakingAction),
	})
	rng := rand.New(rand.NewSource(1))

	_, err := BuildWeightedSet(context.Background(), repo, tco.AllDomains(), 10, nil, rng)
	if !errors.Is(err, ErrTooFewQuestions) {
		t.Errorf("err = %v, want ErrTooFewQuestions", err)
	}
}

func TestBuildWeightedSet_ShortDomainDegradesGracefully(t *testing.T) {
	// One domain has fewer questions than its allocation; the set is
	// smaller but the build still succeeds.
	var qs []tco.Question
	for _, d := range tco.AllDomains() {
		n := 10
		if d == tco.DomainRefiningTargeting {
			n = 1
		}
		for i := 0; i < n; i++ {
			qs = append(qs, tq(string(d)+"-"+string(rune('a'+i)), d))
		}
	}
	repo := question.NewStaticRepo(qs)
	rng := rand.New(rand.NewSource(3))

	set, err := BuildWeightedSet(context.Background(), repo, tco.AllDomains(), 50, nil, rng)
	if err != nil {
		t.Fatalf("BuildWeightedSet: %v", err)
	}
	if len(set) == 0 || len(set) > 50 {
		t.Fatalf("len(set) = %d, want between 1 and 50", len(set))
	}

	refining := 0
	for _, q := range set {
		if q.Domain == tco.DomainRefiningTargeting {
			refining++
		}
	}
	if refining > 1 {
		t.Errorf("refining-questions-targeting contributed %d, only 1 exists", refining)
	}
}

func TestBuildWeightedSet_NeedsReviewWeighting(t *testing.T) {
	repo := bankOf(20)
	rng := rand.New(rand.NewSource(5))

	needs := map[tco.Domain]int{tco.DomainTakingAction: 9, tco.DomainAskingQuestions: 1}
	set, err := BuildWeightedSet(context.Background(), repo, tco.AllDomains(), 20, needs, rng)
	if err != nil {
		t.Fatalf("BuildWeightedSet: %v", err)
	}

	byDomain := make(map[tco.Domain]int)
	for _, q := range set {
		byDomain[q.Domain]++
	}
	if byDomain[tco.DomainTakingAction] <= byDomain[tco.DomainReportingExport] {
		t.Errorf("taking-action (%d) should outweigh a zero-backlog domain (%d)",
			byDomain[tco.DomainTakingAction], byDomain[tco.DomainReportingExport])
	}
}

func TestBuildWeightedSet_NoDomains(t *testing.T) {
	repo := bankOf(5)
	if _, err := BuildWeightedSet(context.Background(), repo, nil, 10, nil, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for empty domain list")
	}
}
