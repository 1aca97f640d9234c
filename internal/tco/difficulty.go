package tco

// Difficulty represents a question's difficulty tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Expert       Difficulty = "expert"
)

// difficultyWeights holds the fixed scoring multiplier per tier.
var difficultyWeights = map[Difficulty]float64{
	Beginner:     1.0,
	Intermediate: 1.2,
	Advanced:     1.5,
	Expert:       2.0,
}

// AllDifficulties returns all difficulty tiers from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced, Expert}
}

// Weight returns the scoring multiplier for the difficulty.
// Unknown difficulties weigh the same as Beginner.
func (d Difficulty) Weight() float64 {
	if w, ok := difficultyWeights[d]; ok {
		return w
	}
	return 1.0
}

// IsValidDifficulty reports whether d is a known difficulty tier.
func IsValidDifficulty(d Difficulty) bool {
	_, ok := difficultyWeights[d]
	return ok
}

// NextHarder returns the next difficulty up, or d itself at Expert.
func (d Difficulty) NextHarder() Difficulty {
	switch d {
	case Beginner:
		return Intermediate
	case Intermediate:
		return Advanced
	case Advanced:
		return Expert
	default:
		return d
	}
}

// NextEasier returns the next difficulty down, or d itself at Beginner.
func (d Difficulty) NextEasier() Difficulty {
	switch d {
	case Expert:
		return Advanced
	case Advanced:
		return Intermediate
	case Intermediate:
		return Beginner
	default:
		return d
	}
}
