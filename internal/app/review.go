package app

import (
	"bufio"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opsprep/tcoprep/internal/srs"
	"github.com/opsprep/tcoprep/internal/store"
	"github.com/opsprep/tcoprep/internal/tco"
)

// ReviewOutcome summarizes a review session.
type ReviewOutcome struct {
	Due        int
	Reviewed   int
	Correct    int
	NewlyAdded int
}

// RunReview drives a spaced-repetition review session. Stored review state
// is loaded, items for the seedIDs questions are created if absent, and
// each due item is asked and rated. A wrong answer rates "again"; a
// correct answer asks hard/good/easy (default good).
func RunReview(ctx context.Context, opts Options, lookup map[string]tco.Question, seedIDs []string) (*ReviewOutcome, error) {
	opts.normalize()

	items, err := opts.Reviews.LoadAll(ctx, opts.UserID)
	if err != nil {
		return nil, fmt.Errorf("load review state: %w", err)
	}
	sched := srs.NewScheduler(items, &store.UserItemStore{Repo: opts.Reviews, UserID: opts.UserID})

	outcome := &ReviewOutcome{}
	now := opts.Now()

	for _, id := range seedIDs {
		q, known := lookup[id]
		if !known || sched.Item(id) != nil {
			continue
		}
		sched.Init(id, q.Text, now)
		outcome.NewlyAdded++
	}

	due := sched.DueItems(now)
	outcome.Due = len(due)
	if len(due) == 0 {
		fmt.Fprintln(opts.Out, "No reviews due.")
		return outcome, nil
	}

	sessionID := uuid.NewString()
	opts.appendSessionEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		UserID:    opts.UserID,
		Kind:      "review",
		Action:    "started",
	})

	scanner := bufio.NewScanner(opts.In)
	var reviewedIDs []string

	for i, item := range due {
		q, ok := lookup[item.ID]
		if !ok {
			continue
		}
		printQuestion(opts.Out, &q, i, len(due))

		choice, scanOK := readLine(scanner)
		if !scanOK || choice == "q" {
			break
		}
		correct := q.Correct(choice)
		printFeedback(opts.Out, &q, correct)

		rating := srs.RatingAgain
		if correct {
			outcome.Correct++
			fmt.Fprint(opts.Out, "rating [hard/good/easy] (default good): ")
			r, _ := readLine(scanner)
			switch r {
			case "hard":
				rating = srs.RatingHard
			case "easy":
				rating = srs.RatingEasy
			default:
				rating = srs.RatingGood
			}
		}

		rated, err := sched.Rate(ctx, item.ID, rating, opts.Now())
		if err != nil {
			// Computed schedule stands; only the save failed.
			opts.Log.Warnw("review state not saved", "item", item.ID, "error", err)
		}
		outcome.Reviewed++
		reviewedIDs = append(reviewedIDs, item.ID)

		if opts.Events != nil {
			if err := opts.Events.AppendReviewEvent(ctx, store.ReviewEventData{
				UserID:       opts.UserID,
				ItemID:       item.ID,
				Rating:       rating,
				IntervalDays: rated.State.IntervalDays,
				Ease:         rated.State.Ease,
				Reps:         rated.State.Reps,
				Lapses:       rated.State.Lapses,
			}); err != nil {
				opts.Log.Warnw("review event not saved", "item", item.ID, "error", err)
			}
		}

		fmt.Fprintf(opts.Out, "Next review in %d day(s).\n", rated.State.IntervalDays)
	}

	if opts.Events != nil && len(reviewedIDs) > 0 {
		if err := opts.Events.MarkReviewed(ctx, opts.UserID, reviewedIDs); err != nil {
			opts.Log.Warnw("needs-review flags not updated", "error", err)
		}
	}

	opts.appendSessionEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		UserID:    opts.UserID,
		Kind:      "review",
		Action:    "completed",
		Questions: outcome.Reviewed,
		Correct:   outcome.Correct,
	})

	fmt.Fprintf(opts.Out, "\nReviewed %d of %d due items, %d correct.\n",
		outcome.Reviewed, outcome.Due, outcome.Correct)
	return outcome, nil
}
