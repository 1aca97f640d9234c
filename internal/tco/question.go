package tco

// Choice is a single answer option on a question.
type Choice struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Question is a single exam item. Questions are immutable once loaded;
// the repository owns them and sessions work on snapshots.
type Question struct {
	ID              string     `json:"id" validate:"required"`
	Text            string     `json:"text" validate:"required"`
	Domain          Domain     `json:"domain" validate:"required"`
	Difficulty      Difficulty `json:"difficulty" validate:"required"`
	ObjectiveIDs    []string   `json:"objectiveIds" validate:"min=1,dive,required"`
	Choices         []Choice   `json:"choices" validate:"min=2,dive"`
	CorrectChoiceID string     `json:"correctChoiceId" validate:"required"`
	Explanation     string     `json:"explanation"`
	Tags            []string   `json:"tags,omitempty"`
	Category        string     `json:"category,omitempty"`
}

// Correct reports whether choiceID is the correct answer.
func (q *Question) Correct(choiceID string) bool {
	return choiceID != "" && choiceID == q.CorrectChoiceID
}

// HasTag reports whether the question carries the given tag.
func (q *Question) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the question carries at least one of tags.
func (q *Question) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if q.HasTag(t) {
			return true
		}
	}
	return false
}
