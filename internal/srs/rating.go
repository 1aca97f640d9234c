package srs

import "fmt"

// Rating is the learner's self-assessment of a review answer.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// AllRatings returns the four ratings from hardest to easiest.
func AllRatings() []Rating {
	return []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}
}

// ParseRating parses a rating string, accepting the canonical names only.
func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return Rating(s), nil
	}
	return "", fmt.Errorf("unknown rating %q", s)
}
