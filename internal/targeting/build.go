package targeting

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/opsprep/tcoprep/internal/question"
	"github.com/opsprep/tcoprep/internal/tco"
)

// AbsoluteMinQuestions is the floor below which a weighted multi-domain
// build refuses to start a session.
const AbsoluteMinQuestions = 5

// ErrTooFewQuestions is returned when the combined pool across all selected
// domains is below AbsoluteMinQuestions.
var ErrTooFewQuestions = errors.New("too few questions across selected domains")

// BuildWeightedSet assembles a mixed-domain question set of size total.
// Counts per domain come from needsReview when it has outstanding entries,
// otherwise from the blueprint exam weights. The combined set is shuffled
// with rng and truncated to total. rng must not be nil; the caller owns the
// seed, which keeps selection reproducible in tests.
func BuildWeightedSet(ctx context.Context, repo question.Repository, domains []tco.Domain, total int, needsReview map[tco.Domain]int, rng *rand.Rand) ([]tco.Question, error) {
	if len(domains) == 0 {
		return nil, fmt.Errorf("no domains selected")
	}

	var counts map[tco.Domain]int
	if needsReview != nil {
		counts = AllocateByNeedsReview(needsReview, domains, total)
	} else {
		counts = AllocateByExamWeight(domains, total)
	}

	var combined []tco.Question
	available := 0
	for _, d := range domains {
		qs, err := repo.ByDomain(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("fetch questions for %s: %w", d, err)
		}
		available += len(qs)

		want := counts[d]
		if want > len(qs) {
			want = len(qs)
		}
		// Sample without replacement within the domain.
		rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
		combined = append(combined, qs[:want]...)
	}

	if available < AbsoluteMinQuestions {
		return nil, fmt.Errorf("%w: %d available, need %d",
			ErrTooFewQuestions, available, AbsoluteMinQuestions)
	}

	rng.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})
	if len(combined) > total {
		combined = combined[:total]
	}
	return combined, nil
}
