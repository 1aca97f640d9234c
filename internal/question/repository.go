// Package question provides access to the exam question bank.
//
// The Repository interface is the seam between the practice core and
// whatever actually stores questions. "No results" is an empty slice,
// never an error; errors are reserved for transport faults.
package question

import (
	"context"

	"github.com/opsprep/tcoprep/internal/tco"
)

// Filters narrows a question query. Zero-value fields are ignored.
type Filters struct {
	Domains      []tco.Domain
	Difficulties []tco.Difficulty
	Tags         []string
	Categories   []string
	Limit        int
}

// Repository supplies question records. Implementations may return fewer
// questions than requested.
type Repository interface {
	// ByDomain returns all questions in a domain.
	ByDomain(ctx context.Context, domain tco.Domain) ([]tco.Question, error)

	// WithFilters returns questions matching every non-empty filter field.
	WithFilters(ctx context.Context, f Filters) ([]tco.Question, error)
}

// matches reports whether q satisfies every non-empty filter field.
func matches(q *tco.Question, f Filters) bool {
	if len(f.Domains) > 0 && !containsDomain(f.Domains, q.Domain) {
		return false
	}
	if len(f.Difficulties) > 0 && !containsDifficulty(f.Difficulties, q.Difficulty) {
		return false
	}
	if len(f.Tags) > 0 && !q.HasAnyTag(f.Tags) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, q.Category) {
		return false
	}
	return true
}

func containsDomain(ds []tco.Domain, d tco.Domain) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

func containsDifficulty(ds []tco.Difficulty, d tco.Difficulty) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

func containsString(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
