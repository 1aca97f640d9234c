package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/opsprep/tcoprep/internal/session"
	"github.com/opsprep/tcoprep/internal/store"
	"github.com/opsprep/tcoprep/internal/tco"
)

// RunPractice drives one interactive practice session. Navigation:
// a choice id answers the current question, "n"/"p" move, "q" abandons.
// Returns the summary, or nil when the session was abandoned.
func RunPractice(ctx context.Context, opts Options, cfg session.Config, questions []tco.Question) (*session.Summary, error) {
	opts.normalize()

	mgr := session.NewManager(opts.Now)
	if err := mgr.Start(cfg, opts.UserID, questions); err != nil {
		return nil, err
	}

	opts.appendSessionEvent(ctx, store.SessionEventData{
		SessionID: mgr.ID(),
		UserID:    opts.UserID,
		Kind:      "practice",
		Action:    "started",
		ModuleID:  cfg.ModuleID,
	})

	scanner := bufio.NewScanner(opts.In)
	questionShownAt := opts.Now()

	for mgr.Status() == session.StatusInProgress {
		q := mgr.CurrentQuestion()
		if q == nil {
			break
		}
		printQuestion(opts.Out, q, mgr.Index(), mgr.Len())

		input, ok := readLine(scanner)
		if !ok || input == "q" {
			mgr.Abandon()
			break
		}

		switch input {
		case "n":
			if next := mgr.Next(); next == nil && mgr.Status() == session.StatusCompleted {
				break
			}
			questionShownAt = opts.Now()
		case "p":
			mgr.Previous()
			questionShownAt = opts.Now()
		default:
			if !hasChoice(q, input) {
				fmt.Fprintf(opts.Out, "Unrecognized choice %q. Enter a choice id, n, p, or q.\n", input)
				continue
			}
			correct, answered := mgr.Answer(q.ID, input)
			if !answered {
				continue
			}

			elapsed := opts.Now().Sub(questionShownAt)
			opts.appendAnswerEvent(ctx, store.AnswerEventData{
				SessionID:  mgr.ID(),
				UserID:     opts.UserID,
				QuestionID: q.ID,
				Domain:     q.Domain,
				Difficulty: q.Difficulty,
				ChoiceID:   input,
				Correct:    correct,
				TimeMs:     int(elapsed.Milliseconds()),
			})

			printFeedback(opts.Out, q, correct)
			mgr.Next()
			questionShownAt = opts.Now()
		}
	}

	if mgr.Status() == session.StatusAbandoned {
		opts.appendSessionEvent(ctx, store.SessionEventData{
			SessionID: mgr.ID(),
			UserID:    opts.UserID,
			Kind:      "practice",
			Action:    "abandoned",
			ModuleID:  cfg.ModuleID,
		})
		fmt.Fprintln(opts.Out, "Session abandoned. Nothing was scored.")
		return nil, nil
	}

	summary := mgr.Summarize()
	if summary == nil {
		return nil, fmt.Errorf("session ended without a summary")
	}
	printSummary(opts.Out, summary)

	opts.appendSessionEvent(ctx, store.SessionEventData{
		SessionID:    summary.SessionID,
		UserID:       opts.UserID,
		Kind:         "practice",
		Action:       "completed",
		ModuleID:     cfg.ModuleID,
		Questions:    summary.TotalQuestions,
		Correct:      summary.Correct,
		ScorePercent: summary.ScorePercent,
		Passed:       summary.Passed,
		DurationSecs: int(summary.Elapsed.Seconds()),
	})
	opts.upsertProgress(ctx, store.ModuleProgressData{
		UserID:           opts.UserID,
		ModuleID:         cfg.ModuleID,
		SectionID:        "practice",
		Status:           "completed",
		TimeSpentMinutes: int(summary.Elapsed.Minutes()),
	})

	return summary, nil
}

func hasChoice(q *tco.Question, choiceID string) bool {
	for _, c := range q.Choices {
		if c.ID == choiceID {
			return true
		}
	}
	return false
}

func printQuestion(out io.Writer, q *tco.Question, index, total int) {
	fmt.Fprintf(out, "\n[%d/%d] (%s, %s) %s\n", index+1, total,
		tco.DomainDisplayName(q.Domain), q.Difficulty, q.Text)
	for _, c := range q.Choices {
		fmt.Fprintf(out, "  %s) %s\n", c.ID, c.Text)
	}
	fmt.Fprint(out, "> ")
}

func printFeedback(out io.Writer, q *tco.Question, correct bool) {
	if correct {
		fmt.Fprintln(out, "Correct.")
	} else {
		fmt.Fprintf(out, "Incorrect. The answer is %s.\n", q.CorrectChoiceID)
	}
	if q.Explanation != "" {
		fmt.Fprintln(out, q.Explanation)
	}
}

func printSummary(out io.Writer, s *session.Summary) {
	fmt.Fprintf(out, "\nSession complete: %d/%d correct (%.1f%%)",
		s.Correct, s.TotalQuestions, s.ScorePercent)
	if s.Passed {
		fmt.Fprintln(out, " - passed")
	} else {
		fmt.Fprintln(out, " - below passing score")
	}
	for _, dr := range s.ByDomain {
		fmt.Fprintf(out, "  %-40s %d/%d (%.0f%%)\n",
			tco.DomainDisplayName(dr.Domain), dr.Correct, dr.Total, dr.Percentage)
	}
	fmt.Fprintf(out, "  elapsed: %s\n", s.Elapsed.Round(time.Second))
}

// appendSessionEvent writes best-effort: a persistence failure is logged
// and the session keeps running.
func (o *Options) appendSessionEvent(ctx context.Context, data store.SessionEventData) {
	if o.Events == nil {
		return
	}
	if err := o.Events.AppendSessionEvent(ctx, data); err != nil {
		o.Log.Warnw("session event not saved", "session", data.SessionID, "error", err)
	}
}

func (o *Options) appendAnswerEvent(ctx context.Context, data store.AnswerEventData) {
	if o.Events == nil {
		return
	}
	if err := o.Events.AppendAnswerEvent(ctx, data); err != nil {
		o.Log.Warnw("answer event not saved", "question", data.QuestionID, "error", err)
	}
}

func (o *Options) upsertProgress(ctx context.Context, data store.ModuleProgressData) {
	if o.Progress == nil || data.ModuleID == "" {
		return
	}
	if err := o.Progress.Upsert(ctx, data); err != nil {
		o.Log.Warnw("progress not saved", "module", data.ModuleID, "error", err)
	}
}
