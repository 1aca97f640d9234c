package targeting

import (
	"testing"

	"github.com/opsprep/tcoprep/internal/tco"
)

func tq(id string, domain tco.Domain, tags ...string) tco.Question {
	return tco.Question{
		ID:              id,
		Text:            "stem",
		Domain:          domain,
		Difficulty:      tco.Beginner,
		ObjectiveIDs:    []string{"obj-1"},
		Tags:            tags,
		Choices:         []tco.Choice{{ID: "c1", Text: "a"}, {ID: "c2", Text: "b"}},
		CorrectChoiceID: "c1",
	}
}

func poolIDs(p Pool) map[string]bool {
	ids := make(map[string]bool, len(p.Questions))
	for _, q := range p.Questions {
		ids[q.ID] = true
	}
	return ids
}

func TestBuildPool_StrictMatch(t *testing.T) {
	questions := []tco.Question{
		tq("q1", tco.DomainAskingQuestions, "sensors"),
		tq("q2", tco.DomainAskingQuestions, "sensors"),
		tq("q3", tco.DomainAskingQuestions),
		tq("q4", tco.DomainTakingAction, "sensors"),
	}

	pool := BuildPool(questions, Spec{
		Domain:       tco.DomainAskingQuestions,
		RequiredTags: []string{"sensors"},
		MinQuestions: 2,
	})

	if pool.RecommendedFallback != FallbackNone {
		t.Errorf("Fallback = %q, want none", pool.RecommendedFallback)
	}
	if pool.Total != 2 {
		t.Errorf("Total = %d, want 2", pool.Total)
	}
	if !pool.HasMinimumQuestions || pool.IsEmpty {
		t.Errorf("flags = min:%v empty:%v, want true/false",
			pool.HasMinimumQuestions, pool.IsEmpty)
	}
}

func TestBuildPool_DomainOnlyFallback(t *testing.T) {
	questions := []tco.Question{
		tq("q1", tco.DomainAskingQuestions, "sensors"),
		tq("q2", tco.DomainAskingQuestions),
		tq("q3", tco.DomainAskingQuestions),
	}

	pool := BuildPool(questions, Spec{
		Domain:       tco.DomainAskingQuestions,
		RequiredTags: []string{"sensors"},
		MinQuestions: 3,
	})

	if pool.RecommendedFallback != FallbackDomainOnly {
		t.Errorf("Fallback = %q, want domain_only", pool.RecommendedFallback)
	}
	if pool.Total != 3 {
		t.Errorf("Total = %d, want 3", pool.Total)
	}
}

func TestBuildPool_AnyTagFallback(t *testing.T) {
	questions := []tco.Question{
		tq("q1", tco.DomainAskingQuestions),
		tq("q2", tco.DomainTakingAction, "sensors"),
		tq("q3", tco.DomainReportingExport, "exports"),
		tq("q4", tco.DomainReportingExport),
	}

	pool := BuildPool(questions, Spec{
		Domain:       tco.DomainAskingQuestions,
		RequiredTags: []string{"sensors"},
		OptionalTags: []string{"exports"},
		MinQuestions: 3,
	})

	if pool.RecommendedFallback != FallbackAnyTag {
		t.Fatalf("Fallback = %q, want any_tag", pool.RecommendedFallback)
	}
	ids := poolIDs(pool)
	for _, want := range []string{"q1", "q2", "q3"} {
		if !ids[want] {
			t.Errorf("pool missing %s", want)
		}
	}
	if ids["q4"] {
		t.Error("pool contains q4, which matches neither domain nor tags")
	}
}

func TestBuildPool_Insufficient(t *testing.T) {
	questions := []tco.Question{
		tq("q1", tco.DomainAskingQuestions),
	}

	pool := BuildPool(questions, Spec{
		Domain:       tco.DomainAskingQuestions,
		MinQuestions: 5,
	})

	if pool.RecommendedFallback != FallbackInsufficient {
		t.Errorf("Fallback = %q, want insufficient", pool.RecommendedFallback)
	}
	if pool.HasMinimumQuestions {
		t.Error("HasMinimumQuestions should be false")
	}
	if pool.Total != 1 {
		t.Errorf("Total = %d, want the widest pool found", pool.Total)
	}
}

func TestBuildPool_EachStepIsSuperset(t *testing.T) {
	questions := []tco.Question{
		tq("q1", tco.DomainAskingQuestions, "sensors"),
		tq("q2", tco.DomainAskingQuestions),
		tq("q3", tco.DomainTakingAction, "sensors"),
	}
	spec := Spec{Domain: tco.DomainAskingQuestions, RequiredTags: []string{"sensors"}}

	strict := poolIDs(BuildPool(questions, Spec{Domain: spec.Domain, RequiredTags: spec.RequiredTags, MinQuestions: 1}))
	domainOnly := poolIDs(BuildPool(questions, Spec{Domain: spec.Domain, RequiredTags: spec.RequiredTags, MinQuestions: 2}))
	anyTag := poolIDs(BuildPool(questions, Spec{Domain: spec.Domain, RequiredTags: spec.RequiredTags, MinQuestions: 3}))

	for id := range strict {
		if !domainOnly[id] {
			t.Errorf("domain_only pool missing strict question %s", id)
		}
	}
	for id := range domainOnly {
		if !anyTag[id] {
			t.Errorf("any_tag pool missing domain_only question %s", id)
		}
	}
}

func TestBuildPool_EmptyDomainMatchesAll(t *testing.T) {
	questions := []tco.Question{
		tq("q1", tco.DomainAskingQuestions),
		tq("q2", tco.DomainTakingAction),
	}
	pool := BuildPool(questions, Spec{MinQuestions: 2})
	if pool.Total != 2 || pool.RecommendedFallback != FallbackNone {
		t.Errorf("pool = %d questions, fallback %q; want 2, none",
			pool.Total, pool.RecommendedFallback)
	}
}
