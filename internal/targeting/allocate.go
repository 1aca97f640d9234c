package targeting

import (
	"math"
	"sort"

	"github.com/opsprep/tcoprep/internal/tco"
)

// AllocateByExamWeight splits total questions across domains proportionally
// to the blueprint exam weights, with a floor of 1 per domain. Rounding
// drift is settled by largest-remainder so the counts sum to total exactly
// (when total >= len(domains)).
func AllocateByExamWeight(domains []tco.Domain, total int) map[tco.Domain]int {
	weights := make(map[tco.Domain]float64, len(domains))
	var sum float64
	for _, d := range domains {
		w := float64(tco.ExamWeight(d))
		weights[d] = w
		sum += w
	}
	return allocate(domains, weights, sum, total)
}

// AllocateByNeedsReview splits total questions proportionally to each
// domain's outstanding needs-review count. When no domain has outstanding
// reviews it silently falls back to exam-weight allocation.
func AllocateByNeedsReview(counts map[tco.Domain]int, domains []tco.Domain, total int) map[tco.Domain]int {
	weights := make(map[tco.Domain]float64, len(domains))
	var sum float64
	for _, d := range domains {
		w := float64(counts[d])
		weights[d] = w
		sum += w
	}
	if sum == 0 {
		return AllocateByExamWeight(domains, total)
	}
	return allocate(domains, weights, sum, total)
}

// allocate distributes total across domains proportional to weights with a
// floor of 1 each, then trims or tops up by largest remainder.
func allocate(domains []tco.Domain, weights map[tco.Domain]float64, sum float64, total int) map[tco.Domain]int {
	result := make(map[tco.Domain]int, len(domains))
	if len(domains) == 0 || total <= 0 {
		return result
	}

	type alloc struct {
		domain    tco.Domain
		count     int
		remainder float64
	}
	allocs := make([]alloc, 0, len(domains))
	assigned := 0

	for _, d := range domains {
		share := float64(total) / float64(len(domains))
		if sum > 0 {
			share = float64(total) * weights[d] / sum
		}
		n := int(math.Round(share))
		if n < 1 {
			n = 1
		}
		allocs = append(allocs, alloc{domain: d, count: n, remainder: share - math.Floor(share)})
		assigned += n
	}

	// Settle rounding drift: trim from the smallest remainders, top up the
	// largest, never dropping a domain below 1.
	for assigned != total {
		if assigned > total {
			sort.Slice(allocs, func(i, j int) bool {
				if allocs[i].remainder != allocs[j].remainder {
					return allocs[i].remainder < allocs[j].remainder
				}
				return allocs[i].domain < allocs[j].domain
			})
			trimmed := false
			for i := range allocs {
				if allocs[i].count > 1 {
					allocs[i].count--
					assigned--
					trimmed = true
					break
				}
			}
			if !trimmed {
				break // every domain at the floor; total < len(domains)
			}
		} else {
			sort.Slice(allocs, func(i, j int) bool {
				if allocs[i].remainder != allocs[j].remainder {
					return allocs[i].remainder > allocs[j].remainder
				}
				return allocs[i].domain < allocs[j].domain
			})
			allocs[0].count++
			allocs[0].remainder = 0
			assigned++
		}
	}

	for _, a := range allocs {
		result[a.domain] = a.count
	}
	return result
}
