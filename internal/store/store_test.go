package store

import (
	"context"
	"testing"
	"time"

	"github.com/opsprep/tcoprep/internal/srs"
	"github.com/opsprep/tcoprep/internal/tco"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_events", "answer_events", "review_events", "review_items", "module_progresses"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave event types; the shared counter must keep ordering.
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "seq-user", Kind: "practice", Action: "started",
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", UserID: "seq-user", QuestionID: "q1",
		Domain: tco.DomainAskingQuestions, Difficulty: tco.Beginner,
		ChoiceID: "a", Correct: true,
	}); err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	if err := repo.AppendReviewEvent(ctx, ReviewEventData{
		UserID: "seq-user", ItemID: "q1", Rating: srs.RatingGood,
		IntervalDays: 1, Ease: 2.5, Reps: 1,
	}); err != nil {
		t.Fatalf("append review event: %v", err)
	}

	var sessionSeq, answerSeq, reviewSeq int64
	db := s.DB()
	if err := db.QueryRow("SELECT sequence FROM session_events").Scan(&sessionSeq); err != nil {
		t.Fatalf("query session sequence: %v", err)
	}
	if err := db.QueryRow("SELECT sequence FROM answer_events").Scan(&answerSeq); err != nil {
		t.Fatalf("query answer sequence: %v", err)
	}
	if err := db.QueryRow("SELECT sequence FROM review_events").Scan(&reviewSeq); err != nil {
		t.Fatalf("query review sequence: %v", err)
	}

	if !(sessionSeq < answerSeq && answerSeq < reviewSeq) {
		t.Errorf("sequences not increasing: session=%d answer=%d review=%d",
			sessionSeq, answerSeq, reviewSeq)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Started events must not appear in summaries.
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "alice", Kind: "practice", Action: "started",
	}); err != nil {
		t.Fatalf("append started: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "alice", Kind: "practice", Action: "completed",
		Questions: 10, Correct: 7, ScorePercent: 70, Passed: true, DurationSecs: 300,
	}); err != nil {
		t.Fatalf("append completed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s2", UserID: "alice", Kind: "assessment", Action: "completed",
		Questions: 20, Correct: 11, ScorePercent: 55, Passed: false, DurationSecs: 900,
	}); err != nil {
		t.Fatalf("append completed: %v", err)
	}
	// Other users are excluded.
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s3", UserID: "bob", Kind: "practice", Action: "completed",
		Questions: 5, Correct: 5, ScorePercent: 100, Passed: true,
	}); err != nil {
		t.Fatalf("append completed: %v", err)
	}

	records, err := repo.SessionSummaries(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("session summaries: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	// Newest first.
	if records[0].SessionID != "s2" {
		t.Errorf("records[0].SessionID = %q, want 's2'", records[0].SessionID)
	}
	if records[0].Kind != "assessment" || records[0].Passed {
		t.Errorf("records[0] = %+v, want failed assessment", records[0])
	}
	if records[1].SessionID != "s1" || records[1].Correct != 7 {
		t.Errorf("records[1] = %+v, want s1 with 7 correct", records[1])
	}

	limited, err := repo.SessionSummaries(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("session summaries limited: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("limited = %+v, want only s2", limited)
	}
}

func TestNeedsReviewLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", UserID: "carol", QuestionID: "q1", Domain: tco.DomainAskingQuestions, Difficulty: tco.Beginner, ChoiceID: "a", Correct: false},
		{SessionID: "s1", UserID: "carol", QuestionID: "q2", Domain: tco.DomainAskingQuestions, Difficulty: tco.Beginner, ChoiceID: "b", Correct: true},
		{SessionID: "s1", UserID: "carol", QuestionID: "q3", Domain: tco.DomainTakingAction, Difficulty: tco.Advanced, ChoiceID: "c", Correct: false},
		// Same question missed twice: counted once in IDs, twice in counts.
		{SessionID: "s2", UserID: "carol", QuestionID: "q1", Domain: tco.DomainAskingQuestions, Difficulty: tco.Beginner, ChoiceID: "d", Correct: false},
		// Other user noise.
		{SessionID: "s3", UserID: "dave", QuestionID: "q9", Domain: tco.DomainReportingExport, Difficulty: tco.Expert, ChoiceID: "a", Correct: false},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	counts, err := repo.NeedsReviewCounts(ctx, "carol")
	if err != nil {
		t.Fatalf("needs-review counts: %v", err)
	}
	if counts[tco.DomainAskingQuestions] != 2 {
		t.Errorf("asking-questions backlog = %d, want 2", counts[tco.DomainAskingQuestions])
	}
	if counts[tco.DomainTakingAction] != 1 {
		t.Errorf("taking-action backlog = %d, want 1", counts[tco.DomainTakingAction])
	}
	if len(counts) != 2 {
		t.Errorf("len(counts) = %d, want 2", len(counts))
	}

	ids, err := repo.NeedsReviewQuestionIDs(ctx, "carol")
	if err != nil {
		t.Fatalf("needs-review question ids: %v", err)
	}
	want := []string{"q1", "q3"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}

	if err := repo.MarkReviewed(ctx, "carol", []string{"q1"}); err != nil {
		t.Fatalf("mark reviewed: %v", err)
	}

	counts, err = repo.NeedsReviewCounts(ctx, "carol")
	if err != nil {
		t.Fatalf("needs-review counts after mark: %v", err)
	}
	if counts[tco.DomainAskingQuestions] != 0 {
		t.Errorf("asking-questions backlog after mark = %d, want 0", counts[tco.DomainAskingQuestions])
	}
	if counts[tco.DomainTakingAction] != 1 {
		t.Errorf("taking-action backlog after mark = %d, want 1", counts[tco.DomainTakingAction])
	}

	// Marking nothing is a no-op, not an error.
	if err := repo.MarkReviewed(ctx, "carol", nil); err != nil {
		t.Errorf("mark reviewed with no ids: %v", err)
	}
}

func TestDomainAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []bool{true, true, false, true}
	for i, correct := range results {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:  "s1",
			UserID:     "erin",
			QuestionID: "q" + string(rune('1'+i)),
			Domain:     tco.DomainRefiningTargeting,
			Difficulty: tco.Intermediate,
			ChoiceID:   "a",
			Correct:    correct,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	acc, err := repo.DomainAccuracy(ctx, "erin", tco.DomainRefiningTargeting)
	if err != nil {
		t.Fatalf("domain accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	// No answers in the domain yields 0, not an error.
	acc, err = repo.DomainAccuracy(ctx, "erin", tco.DomainTakingAction)
	if err != nil {
		t.Fatalf("domain accuracy empty: %v", err)
	}
	if acc != 0 {
		t.Errorf("empty-domain accuracy = %v, want 0", acc)
	}
}

func TestReviewRepoUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	_, ok, err := repo.Load(ctx, "frank", "q1")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing item")
	}

	due := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	item := &srs.ReviewItem{
		ID:      "q1",
		Concept: "sensor basics",
		State: srs.State{
			Due:          due,
			IntervalDays: 1,
			Ease:         2.5,
			Reps:         1,
		},
		TotalReviews:   1,
		CorrectReviews: 1,
	}
	if err := repo.Save(ctx, "frank", item); err != nil {
		t.Fatalf("save create: %v", err)
	}

	loaded, ok, err := repo.Load(ctx, "frank", "q1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after save")
	}
	if loaded.State.IntervalDays != 1 || loaded.State.Ease != 2.5 || loaded.Concept != "sensor basics" {
		t.Errorf("loaded = %+v, want saved state back", loaded)
	}
	if !loaded.State.Due.Equal(due) {
		t.Errorf("due = %v, want %v", loaded.State.Due, due)
	}

	// Saving the same item again updates in place.
	item.State.IntervalDays = 3
	item.State.Reps = 2
	item.TotalReviews = 2
	if err := repo.Save(ctx, "frank", item); err != nil {
		t.Fatalf("save update: %v", err)
	}

	count, err := s.Client().ReviewItem.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("review item rows = %d, want 1", count)
	}

	loaded, _, err = repo.Load(ctx, "frank", "q1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.State.IntervalDays != 3 || loaded.State.Reps != 2 || loaded.TotalReviews != 2 {
		t.Errorf("reloaded = %+v, want updated state", loaded)
	}
}

func TestReviewRepoLoadAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	for _, id := range []string{"q3", "q1", "q2"} {
		err := repo.Save(ctx, "grace", &srs.ReviewItem{
			ID:    id,
			State: srs.NewState(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	// Another user's items stay out of the result.
	err := repo.Save(ctx, "heidi", &srs.ReviewItem{
		ID:    "q9",
		State: srs.NewState(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("save other user: %v", err)
	}

	items, err := repo.LoadAll(ctx, "grace")
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, want)
		}
	}
}

func TestProgressUpsertAccumulates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Upsert(ctx, ModuleProgressData{
		UserID:           "ivan",
		ModuleID:         "asking-questions",
		SectionID:        "sensors",
		Status:           "in_progress",
		TimeSpentMinutes: 10,
	})
	if err != nil {
		t.Fatalf("upsert create: %v", err)
	}

	err = repo.Upsert(ctx, ModuleProgressData{
		UserID:           "ivan",
		ModuleID:         "asking-questions",
		SectionID:        "sensors",
		Status:           "completed",
		TimeSpentMinutes: 5,
	})
	if err != nil {
		t.Fatalf("upsert update: %v", err)
	}

	rows, err := s.Client().ModuleProgress.Query().All(ctx)
	if err != nil {
		t.Fatalf("query progress: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("progress rows = %d, want 1", len(rows))
	}
	if rows[0].Status != "completed" {
		t.Errorf("status = %q, want 'completed'", rows[0].Status)
	}
	if rows[0].TimeSpentMinutes != 15 {
		t.Errorf("time spent = %d, want 15", rows[0].TimeSpentMinutes)
	}
}
