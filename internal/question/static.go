package question

import (
	"context"

	"github.com/opsprep/tcoprep/internal/tco"
)

// StaticRepo is an in-memory Repository over a loaded question bank.
type StaticRepo struct {
	questions []tco.Question
}

// NewStaticRepo creates a repository over the given questions. The slice is
// copied; callers keep ownership of theirs.
func NewStaticRepo(questions []tco.Question) *StaticRepo {
	qs := make([]tco.Question, len(questions))
	copy(qs, questions)
	return &StaticRepo{questions: qs}
}

// Len returns the number of questions in the bank.
func (r *StaticRepo) Len() int {
	return len(r.questions)
}

// All returns a copy of every question in the bank.
func (r *StaticRepo) All() []tco.Question {
	qs := make([]tco.Question, len(r.questions))
	copy(qs, r.questions)
	return qs
}

// ByDomain implements Repository.
func (r *StaticRepo) ByDomain(_ context.Context, domain tco.Domain) ([]tco.Question, error) {
	result := []tco.Question{}
	for _, q := range r.questions {
		if q.Domain == domain {
			result = append(result, q)
		}
	}
	return result, nil
}

// WithFilters implements Repository.
func (r *StaticRepo) WithFilters(_ context.Context, f Filters) ([]tco.Question, error) {
	result := []tco.Question{}
	for _, q := range r.questions {
		if matches(&q, f) {
			result = append(result, q)
			if f.Limit > 0 && len(result) >= f.Limit {
				break
			}
		}
	}
	return result, nil
}
