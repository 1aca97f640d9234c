// Package targeting selects question pools for practice sessions: strict
// tag/domain matching with a fallback ladder when too few questions match,
// and weighted multi-domain allocation for mock exams.
package targeting

import (
	"github.com/opsprep/tcoprep/internal/tco"
)

// Fallback names the widening step a pool build had to take.
type Fallback string

const (
	// FallbackNone means the strict criteria produced enough questions.
	FallbackNone Fallback = ""

	// FallbackDomainOnly widens to every question in the domain.
	FallbackDomainOnly Fallback = "domain_only"

	// FallbackAnyTag widens to any overlap with required or optional tags.
	FallbackAnyTag Fallback = "any_tag"

	// FallbackInsufficient means even the widest criteria fell short.
	FallbackInsufficient Fallback = "insufficient"
)

// Spec describes the questions wanted for a module or section.
type Spec struct {
	ModuleID       string
	Domain         tco.Domain
	ObjectiveIDs   []string
	RequiredTags   []string
	OptionalTags   []string
	MinQuestions   int
	IdealQuestions int
}

// Pool is the result of a targeting pass.
type Pool struct {
	Questions           []tco.Question
	Total               int
	HasMinimumQuestions bool
	IsEmpty             bool
	RecommendedFallback Fallback
}

// BuildPool filters questions against spec, widening through the fallback
// ladder when the strict match is below MinQuestions. Each widening step
// returns a superset of the stricter one, and the pool reports which step
// was used so the caller can warn the user.
func BuildPool(questions []tco.Question, spec Spec) Pool {
	strict := filter(questions, func(q *tco.Question) bool {
		return matchesDomain(q, spec.Domain) && hasAllTags(q, spec.RequiredTags)
	})
	if len(strict) >= spec.MinQuestions {
		return newPool(strict, spec, FallbackNone)
	}

	domainOnly := filter(questions, func(q *tco.Question) bool {
		return matchesDomain(q, spec.Domain)
	})
	if len(domainOnly) >= spec.MinQuestions {
		return newPool(domainOnly, spec, FallbackDomainOnly)
	}

	anyTags := append(append([]string{}, spec.RequiredTags...), spec.OptionalTags...)
	anyTag := filter(questions, func(q *tco.Question) bool {
		return matchesDomain(q, spec.Domain) || q.HasAnyTag(anyTags)
	})
	if len(anyTag) >= spec.MinQuestions {
		return newPool(anyTag, spec, FallbackAnyTag)
	}

	// Report the widest pool we found; it is still below the minimum.
	widest := anyTag
	if len(domainOnly) > len(widest) {
		widest = domainOnly
	}
	return newPool(widest, spec, FallbackInsufficient)
}

func newPool(qs []tco.Question, spec Spec, fb Fallback) Pool {
	return Pool{
		Questions:           qs,
		Total:               len(qs),
		HasMinimumQuestions: len(qs) >= spec.MinQuestions,
		IsEmpty:             len(qs) == 0,
		RecommendedFallback: fb,
	}
}

func filter(qs []tco.Question, keep func(*tco.Question) bool) []tco.Question {
	out := []tco.Question{}
	for i := range qs {
		if keep(&qs[i]) {
			out = append(out, qs[i])
		}
	}
	return out
}

func matchesDomain(q *tco.Question, d tco.Domain) bool {
	return d == "" || q.Domain == d
}

func hasAllTags(q *tco.Question, tags []string) bool {
	for _, t := range tags {
		if !q.HasTag(t) {
			return false
		}
	}
	return true
}
