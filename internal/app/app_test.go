package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/assessment"
	"github.com/opsprep/tcoprep/internal/session"
	"github.com/opsprep/tcoprep/internal/srs"
	"github.com/opsprep/tcoprep/internal/store"
	"github.com/opsprep/tcoprep/internal/tco"
)

// fakeEvents records appended events in memory.
type fakeEvents struct {
	sessions []store.SessionEventData
	answers  []store.AnswerEventData
	reviews  []store.ReviewEventData
	marked   []string
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}
func (f *fakeEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}
func (f *fakeEvents) AppendReviewEvent(_ context.Context, d store.ReviewEventData) error {
	f.reviews = append(f.reviews, d)
	return nil
}
func (f *fakeEvents) NeedsReviewCounts(_ context.Context, _ string) (map[tco.Domain]int, error) {
	counts := make(map[tco.Domain]int)
	for _, a := range f.answers {
		if !a.Correct {
			counts[a.Domain]++
		}
	}
	return counts, nil
}
func (f *fakeEvents) NeedsReviewQuestionIDs(_ context.Context, _ string) ([]string, error) {
	var ids []string
	for _, a := range f.answers {
		if !a.Correct {
			ids = append(ids, a.QuestionID)
		}
	}
	return ids, nil
}
func (f *fakeEvents) MarkReviewed(_ context.Context, _ string, questionIDs []string) error {
	f.marked = append(f.marked, questionIDs...)
	return nil
}
func (f *fakeEvents) DomainAccuracy(_ context.Context, _ string, _ tco.Domain) (float64, error) {
	return 0, nil
}
func (f *fakeEvents) SessionSummaries(_ context.Context, _ string, _ int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

// fakeReviews is an in-memory ReviewRepo.
type fakeReviews struct {
	items map[string]*srs.ReviewItem
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{items: make(map[string]*srs.ReviewItem)}
}

func (f *fakeReviews) Load(_ context.Context, _, questionID string) (*srs.ReviewItem, bool, error) {
	it, ok := f.items[questionID]
	return it, ok, nil
}
func (f *fakeReviews) LoadAll(_ context.Context, _ string) ([]*srs.ReviewItem, error) {
	var all []*srs.ReviewItem
	for _, it := range f.items {
		all = append(all, it)
	}
	return all, nil
}
func (f *fakeReviews) Save(_ context.Context, _ string, item *srs.ReviewItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

type fakeProgress struct {
	upserts []store.ModuleProgressData
}

func (f *fakeProgress) Upsert(_ context.Context, d store.ModuleProgressData) error {
	f.upserts = append(f.upserts, d)
	return nil
}

func appQuestions(n int) []tco.Question {
	domains := tco.AllDomains()
	qs := make([]tco.Question, n)
	for i := range qs {
		qs[i] = tco.Question{
			ID:              "q" + string(rune('1'+i)),
			Text:            "pick the first choice",
			Domain:          domains[i%len(domains)],
			Difficulty:      tco.Beginner,
			ObjectiveIDs:    []string{"obj-1"},
			Choices:         []tco.Choice{{ID: "a", Text: "right"}, {ID: "b", Text: "wrong"}},
			CorrectChoiceID: "a",
		}
	}
	return qs
}

func testOptions(input string, events *fakeEvents, reviews *fakeReviews, progress *fakeProgress) (Options, *bytes.Buffer) {
	out := &bytes.Buffer{}
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	opts := Options{
		UserID: "u1",
		Log:    nil,
		In:     strings.NewReader(input),
		Out:    out,
		Now:    func() time.Time { return now },
	}
	if events != nil {
		opts.Events = events
	}
	if reviews != nil {
		opts.Reviews = reviews
	}
	if progress != nil {
		opts.Progress = progress
	}
	return opts, out
}

func TestRunPractice_CompletedSession(t *testing.T) {
	events := &fakeEvents{}
	progress := &fakeProgress{}
	opts, out := testOptions("a\nb\na\n", events, nil, progress)

	sum, err := RunPractice(context.Background(), opts,
		session.Config{ModuleID: "mod-1"}, appQuestions(3))
	if err != nil {
		t.Fatalf("RunPractice: %v", err)
	}
	if sum == nil {
		t.Fatal("expected a summary")
	}
	if sum.Correct != 2 || sum.TotalQuestions != 3 {
		t.Errorf("summary = %d/%d, want 2/3", sum.Correct, sum.TotalQuestions)
	}

	if len(events.answers) != 3 {
		t.Errorf("answer events = %d, want 3", len(events.answers))
	}
	var actions []string
	for _, e := range events.sessions {
		actions = append(actions, e.Action)
	}
	if len(actions) != 2 || actions[0] != "started" || actions[1] != "completed" {
		t.Errorf("session events = %v, want [started completed]", actions)
	}
	if len(progress.upserts) != 1 || progress.upserts[0].ModuleID != "mod-1" {
		t.Errorf("progress upserts = %+v", progress.upserts)
	}
	if !strings.Contains(out.String(), "Session complete") {
		t.Error("summary not printed")
	}
}

func TestRunPractice_Abandon(t *testing.T) {
	events := &fakeEvents{}
	opts, _ := testOptions("a\nq\n", events, nil, nil)

	sum, err := RunPractice(context.Background(), opts, session.Config{}, appQuestions(3))
	if err != nil {
		t.Fatalf("RunPractice: %v", err)
	}
	if sum != nil {
		t.Error("abandoned session should produce no summary")
	}

	last := events.sessions[len(events.sessions)-1]
	if last.Action != "abandoned" {
		t.Errorf("last session event = %s, want abandoned", last.Action)
	}
}

func TestRunPractice_EOFAbandons(t *testing.T) {
	opts, _ := testOptions("", &fakeEvents{}, nil, nil)
	sum, err := RunPractice(context.Background(), opts, session.Config{}, appQuestions(2))
	if err != nil {
		t.Fatalf("RunPractice: %v", err)
	}
	if sum != nil {
		t.Error("EOF should abandon, not complete")
	}
}

func TestRunPractice_UnrecognizedInputReprompts(t *testing.T) {
	opts, out := testOptions("zzz\na\n", &fakeEvents{}, nil, nil)
	sum, err := RunPractice(context.Background(), opts, session.Config{}, appQuestions(1))
	if err != nil {
		t.Fatalf("RunPractice: %v", err)
	}
	if sum == nil || sum.Correct != 1 {
		t.Fatalf("summary = %+v, want 1 correct", sum)
	}
	if !strings.Contains(out.String(), "Unrecognized choice") {
		t.Error("expected a reprompt message")
	}
}

func TestRunPractice_PersistenceFailureIsNotFatal(t *testing.T) {
	opts, _ := testOptions("a\n", nil, nil, nil) // no repos wired at all
	sum, err := RunPractice(context.Background(), opts, session.Config{}, appQuestions(1))
	if err != nil {
		t.Fatalf("RunPractice without store: %v", err)
	}
	if sum == nil || sum.Correct != 1 {
		t.Errorf("summary = %+v, want 1 correct", sum)
	}
}

func TestRunExam_ScoresAndRecords(t *testing.T) {
	events := &fakeEvents{}
	// Choice then confidence for each of 5 questions: 3 right, 2 wrong.
	input := "a\n5\na\n4\na\n\nb\n2\nb\n1\n"
	opts, out := testOptions(input, events, nil, nil)

	res, err := RunExam(context.Background(), opts,
		assessment.Config{Type: assessment.TypeMockExam}, appQuestions(5))
	if err != nil {
		t.Fatalf("RunExam: %v", err)
	}
	if res.Score.Correct != 3 || res.Score.Total != 5 {
		t.Errorf("score = %d/%d, want 3/5", res.Score.Correct, res.Score.Total)
	}
	if res.Score.Percentage != 60 {
		t.Errorf("Percentage = %v, want 60", res.Score.Percentage)
	}
	if len(events.answers) != 5 {
		t.Errorf("answer events = %d, want 5", len(events.answers))
	}
	if !strings.Contains(out.String(), "Recommendation:") {
		t.Error("plan not printed")
	}

	// All five blueprint domains must appear in the breakdown.
	for _, d := range tco.AllDomains() {
		if !strings.Contains(out.String(), tco.DomainDisplayName(d)) {
			t.Errorf("domain %s missing from printed breakdown", d)
		}
	}
}

func TestRunReview_RatesDueItems(t *testing.T) {
	events := &fakeEvents{}
	reviews := newFakeReviews()

	qs := appQuestions(2)
	lookup := map[string]tco.Question{qs[0].ID: qs[0], qs[1].ID: qs[1]}

	// First item answered right self-rated good; second answered wrong.
	opts, _ := testOptions("a\ngood\nb\n", events, reviews, nil)

	outcome, err := RunReview(context.Background(), opts, lookup, []string{qs[0].ID, qs[1].ID})
	if err != nil {
		t.Fatalf("RunReview: %v", err)
	}
	if outcome.NewlyAdded != 2 {
		t.Errorf("NewlyAdded = %d, want 2", outcome.NewlyAdded)
	}
	if outcome.Reviewed != 2 || outcome.Correct != 1 {
		t.Errorf("outcome = %d reviewed / %d correct, want 2/1", outcome.Reviewed, outcome.Correct)
	}
	if len(events.reviews) != 2 {
		t.Fatalf("review events = %d, want 2", len(events.reviews))
	}
	if len(events.marked) != 2 {
		t.Errorf("marked reviewed = %v, want both question IDs", events.marked)
	}
	if len(reviews.items) != 2 {
		t.Errorf("persisted items = %d, want 2", len(reviews.items))
	}

	for _, ev := range events.reviews {
		if ev.IntervalDays != 1 {
			t.Errorf("item %s IntervalDays = %d, want 1", ev.ItemID, ev.IntervalDays)
		}
	}
}

func TestRunReview_NothingDue(t *testing.T) {
	reviews := newFakeReviews()
	future := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	reviews.items["q1"] = &srs.ReviewItem{
		ID:    "q1",
		State: srs.State{Due: future, IntervalDays: 30, Ease: srs.InitialEase},
	}

	opts, out := testOptions("", &fakeEvents{}, reviews, nil)
	outcome, err := RunReview(context.Background(), opts, map[string]tco.Question{}, nil)
	if err != nil {
		t.Fatalf("RunReview: %v", err)
	}
	if outcome.Due != 0 || outcome.Reviewed != 0 {
		t.Errorf("outcome = %+v, want nothing due", outcome)
	}
	if !strings.Contains(out.String(), "No reviews due") {
		t.Error("expected the no-reviews message")
	}
}
