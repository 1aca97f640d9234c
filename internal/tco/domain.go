package tco

// Domain represents a TCO exam blueprint domain.
type Domain string

const (
	DomainAskingQuestions   Domain = "asking-questions"
	DomainRefiningTargeting Domain = "refining-questions-targeting"
	DomainTakingAction      Domain = "taking-action"
	DomainNavigationModules Domain = "navigation-basic-modules"
	DomainReportingExport   Domain = "reporting-data-export"
)

// examWeights holds the fixed blueprint percentage for each domain.
// The five weights sum to 100.
var examWeights = map[Domain]int{
	DomainAskingQuestions:   22,
	DomainRefiningTargeting: 23,
	DomainTakingAction:      15,
	DomainNavigationModules: 23,
	DomainReportingExport:   17,
}

// AllDomains returns all domains in blueprint order.
func AllDomains() []Domain {
	return []Domain{
		DomainAskingQuestions,
		DomainRefiningTargeting,
		DomainTakingAction,
		DomainNavigationModules,
		DomainReportingExport,
	}
}

// ExamWeight returns the blueprint percentage weight for a domain.
// Returns 0 for an unknown domain.
func ExamWeight(d Domain) int {
	return examWeights[d]
}

// IsValidDomain reports whether d is one of the blueprint domains.
func IsValidDomain(d Domain) bool {
	_, ok := examWeights[d]
	return ok
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainAskingQuestions:
		return "Asking Questions"
	case DomainRefiningTargeting:
		return "Refining Questions & Targeting"
	case DomainTakingAction:
		return "Taking Action"
	case DomainNavigationModules:
		return "Navigation & Basic Module Functions"
	case DomainReportingExport:
		return "Reporting & Data Export"
	default:
		return string(d)
	}
}
