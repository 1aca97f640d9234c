package question

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/opsprep/tcoprep/internal/tco"
)

// Bank is the on-disk question bank format.
type Bank struct {
	Version   int            `json:"version"`
	Questions []tco.Question `json:"questions" validate:"min=1,dive"`
}

var validate = validator.New()

// LoadBank reads and validates a JSON question bank file. Every question is
// structurally validated; the first invalid question fails the load with an
// error naming it.
func LoadBank(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}

	if err := ValidateBank(&bank); err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return &bank, nil
}

// ValidateBank checks bank structure and per-question referential rules:
// known domain and difficulty, correct choice present in the choice list,
// unique question IDs.
func ValidateBank(bank *Bank) error {
	if err := validate.Struct(bank); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	seen := make(map[string]bool, len(bank.Questions))
	for i := range bank.Questions {
		q := &bank.Questions[i]
		if seen[q.ID] {
			return fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true

		if !tco.IsValidDomain(q.Domain) {
			return fmt.Errorf("question %q: unknown domain %q", q.ID, q.Domain)
		}
		if !tco.IsValidDifficulty(q.Difficulty) {
			return fmt.Errorf("question %q: unknown difficulty %q", q.ID, q.Difficulty)
		}

		found := false
		for _, c := range q.Choices {
			if c.ID == q.CorrectChoiceID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("question %q: correct choice %q not in choice list", q.ID, q.CorrectChoiceID)
		}
	}
	return nil
}
