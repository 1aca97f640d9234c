package question

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsprep/tcoprep/internal/tco"
)

const validBankJSON = `{
  "version": 1,
  "questions": [
    {
      "id": "q1",
      "text": "Which content set holds the default sensors?",
      "domain": "asking-questions",
      "difficulty": "beginner",
      "objectiveIds": ["obj-1"],
      "choices": [
        {"id": "c1", "text": "Initial Content"},
        {"id": "c2", "text": "Base Content"}
      ],
      "correctChoiceId": "c1",
      "explanation": "Initial Content ships with the platform.",
      "tags": ["sensors"]
    }
  ]
}`

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBank(t *testing.T) {
	bank, err := LoadBank(writeBank(t, validBankJSON))
	require.NoError(t, err)

	assert.Equal(t, 1, bank.Version)
	require.Len(t, bank.Questions, 1)

	q := bank.Questions[0]
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, tco.DomainAskingQuestions, q.Domain)
	assert.Equal(t, tco.Beginner, q.Difficulty)
	assert.Equal(t, "c1", q.CorrectChoiceID)
}

func TestLoadBank_MissingFile(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadBank_BadJSON(t *testing.T) {
	_, err := LoadBank(writeBank(t, "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidateBank_Failures(t *testing.T) {
	base := func() *Bank {
		return &Bank{
			Version: 1,
			Questions: []tco.Question{{
				ID:              "q1",
				Text:            "stem",
				Domain:          tco.DomainAskingQuestions,
				Difficulty:      tco.Beginner,
				ObjectiveIDs:    []string{"obj-1"},
				Choices:         []tco.Choice{{ID: "c1", Text: "a"}, {ID: "c2", Text: "b"}},
				CorrectChoiceID: "c1",
			}},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Bank)
		wantErr string
	}{
		{"empty bank", func(b *Bank) { b.Questions = nil }, "validate"},
		{"missing id", func(b *Bank) { b.Questions[0].ID = "" }, "validate"},
		{"missing text", func(b *Bank) { b.Questions[0].Text = "" }, "validate"},
		{"no objectives", func(b *Bank) { b.Questions[0].ObjectiveIDs = nil }, "validate"},
		{"one choice", func(b *Bank) {
			b.Questions[0].Choices = b.Questions[0].Choices[:1]
		}, "validate"},
		{"unknown domain", func(b *Bank) { b.Questions[0].Domain = "interacting" }, "unknown domain"},
		{"unknown difficulty", func(b *Bank) { b.Questions[0].Difficulty = "legendary" }, "unknown difficulty"},
		{"correct choice not listed", func(b *Bank) {
			b.Questions[0].CorrectChoiceID = "c9"
		}, "not in choice list"},
		{"duplicate ids", func(b *Bank) {
			b.Questions = append(b.Questions, b.Questions[0])
		}, "duplicate id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bank := base()
			tc.mutate(bank)
			err := ValidateBank(bank)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateBank_Valid(t *testing.T) {
	bank := &Bank{
		Version: 1,
		Questions: []tco.Question{{
			ID:              "q1",
			Text:            "stem",
			Domain:          tco.DomainTakingAction,
			Difficulty:      tco.Expert,
			ObjectiveIDs:    []string{"obj-1"},
			Choices:         []tco.Choice{{ID: "c1", Text: "a"}, {ID: "c2", Text: "b"}},
			CorrectChoiceID: "c2",
		}},
	}
	assert.NoError(t, ValidateBank(bank))
}
