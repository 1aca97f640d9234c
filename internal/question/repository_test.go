package question

import (
	"context"
	"testing"

	"github.com/opsprep/tcoprep/internal/tco"
)

func sampleQuestions() []tco.Question {
	mk := func(id string, d tco.Domain, diff tco.Difficulty, category string, tags ...string) tco.Question {
		return tco.Question{
			ID:              id,
			Text:            "stem",
			Domain:          d,
			Difficulty:      diff,
			ObjectiveIDs:    []string{"obj-1"},
			Tags:            tags,
			Category:        category,
			Choices:         []tco.Choice{{ID: "c1", Text: "a"}, {ID: "c2", Text: "b"}},
			CorrectChoiceID: "c1",
		}
	}
	return []tco.Question{
		mk("q1", tco.DomainAskingQuestions, tco.Beginner, "sensors", "sensors", "basics"),
		mk("q2", tco.DomainAskingQuestions, tco.Advanced, "sensors", "sensors"),
		mk("q3", tco.DomainTakingAction, tco.Beginner, "packages", "deploy"),
		mk("q4", tco.DomainReportingExport, tco.Intermediate, "reports"),
	}
}

func TestStaticRepo_ByDomain(t *testing.T) {
	repo := NewStaticRepo(sampleQuestions())

	got, err := repo.ByDomain(context.Background(), tco.DomainAskingQuestions)
	if err != nil {
		t.Fatalf("ByDomain: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	none, err := repo.ByDomain(context.Background(), tco.DomainNavigationModules)
	if err != nil {
		t.Fatalf("ByDomain: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("empty domain = %v, want empty non-nil slice", none)
	}
}

func TestStaticRepo_WithFilters(t *testing.T) {
	repo := NewStaticRepo(sampleQuestions())
	ctx := context.Background()

	cases := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{"by domain", Filters{Domains: []tco.Domain{tco.DomainTakingAction}}, []string{"q3"}},
		{"by difficulty", Filters{Difficulties: []tco.Difficulty{tco.Beginner}}, []string{"q1", "q3"}},
		{"by tag", Filters{Tags: []string{"sensors"}}, []string{"q1", "q2"}},
		{"by category", Filters{Categories: []string{"reports"}}, []string{"q4"}},
		{"combined", Filters{
			Domains:      []tco.Domain{tco.DomainAskingQuestions},
			Difficulties: []tco.Difficulty{tco.Advanced},
		}, []string{"q2"}},
		{"no filters returns all", Filters{}, []string{"q1", "q2", "q3", "q4"}},
		{"no match", Filters{Tags: []string{"ghost"}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.WithFilters(ctx, tc.filters)
			if err != nil {
				t.Fatalf("WithFilters: %v", err)
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestStaticRepo_WithFiltersLimit(t *testing.T) {
	repo := NewStaticRepo(sampleQuestions())
	got, err := repo.WithFilters(context.Background(), Filters{Limit: 2})
	if err != nil {
		t.Fatalf("WithFilters: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want limit 2", len(got))
	}
}

func TestStaticRepo_CopiesInput(t *testing.T) {
	src := sampleQuestions()
	repo := NewStaticRepo(src)
	src[0].CorrectChoiceID = "c2"

	all := repo.All()
	if all[0].CorrectChoiceID != "c1" {
		t.Error("mutating the source slice leaked into the repository")
	}

	all[0].CorrectChoiceID = "c2"
	if again := repo.All(); again[0].CorrectChoiceID != "c1" {
		t.Error("mutating a returned slice leaked into the repository")
	}
}
