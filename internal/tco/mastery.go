package tco

// MasteryTier is a coarse classification of percentage-correct performance
// for an objective or domain.
type MasteryTier string

const (
	TierPoor       MasteryTier = "poor"
	TierDeveloping MasteryTier = "developing"
	TierProficient MasteryTier = "proficient"
	TierMastery    MasteryTier = "mastery"
)

// TierForPercentage classifies a 0-100 percentage into a mastery tier.
func TierForPercentage(pct float64) MasteryTier {
	switch {
	case pct >= 90:
		return TierMastery
	case pct >= 80:
		return TierProficient
	case pct >= 60:
		return TierDeveloping
	default:
		return TierPoor
	}
}
