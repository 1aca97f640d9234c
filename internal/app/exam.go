package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/opsprep/tcoprep/internal/assessment"
	"github.com/opsprep/tcoprep/internal/store"
	"github.com/opsprep/tcoprep/internal/tco"
)

// RunExam drives one mock-exam assessment over the given question set.
// Each question is answered in order; after the choice the learner may
// enter a 1-5 confidence rating (empty input skips it). The completed
// session is scored and the remediation plan printed.
func RunExam(ctx context.Context, opts Options, cfg assessment.Config, questions []tco.Question) (*assessment.Result, error) {
	opts.normalize()

	sess, err := assessment.NewSession(uuid.NewString(), opts.UserID, "", questions, cfg, opts.Now())
	if err != nil {
		return nil, err
	}

	opts.appendSessionEvent(ctx, store.SessionEventData{
		SessionID: sess.ID,
		UserID:    opts.UserID,
		Kind:      "assessment",
		Action:    "started",
	})

	scanner := bufio.NewScanner(opts.In)

	for i := range sess.Questions {
		q := &sess.Questions[i]
		printQuestion(opts.Out, q, i, len(sess.Questions))

		shownAt := opts.Now()
		choice, ok := readLine(scanner)
		if !ok {
			break
		}
		elapsed := opts.Now().Sub(shownAt)

		fmt.Fprint(opts.Out, "confidence 1-5 (enter to skip): ")
		confInput, _ := readLine(scanner)
		confidence := 0
		if n, err := strconv.Atoi(confInput); err == nil && n >= 1 && n <= 5 {
			confidence = n
		}

		resp := assessment.Response{
			QuestionID:  q.ID,
			ChoiceID:    choice,
			Correct:     q.Correct(choice),
			TimeSeconds: int(elapsed.Seconds()),
			Confidence:  confidence,
		}
		if err := sess.Record(resp); err != nil {
			return nil, err
		}

		opts.appendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:  sess.ID,
			UserID:     opts.UserID,
			QuestionID: q.ID,
			Domain:     q.Domain,
			Difficulty: q.Difficulty,
			ChoiceID:   choice,
			Correct:    resp.Correct,
			TimeMs:     int(elapsed.Milliseconds()),
		})
	}

	result, err := assessment.Complete(sess, opts.Now())
	if err != nil {
		return nil, err
	}
	printResult(opts.Out, result)

	opts.appendSessionEvent(ctx, store.SessionEventData{
		SessionID:    sess.ID,
		UserID:       opts.UserID,
		Kind:         "assessment",
		Action:       "completed",
		Questions:    result.Score.Total,
		Correct:      result.Score.Correct,
		ScorePercent: result.Score.Percentage,
		Passed:       result.Score.Passed,
		DurationSecs: result.Metrics.TotalSeconds,
	})

	return result, nil
}

func printResult(out io.Writer, r *assessment.Result) {
	s := r.Score
	fmt.Fprintf(out, "\nScore: %.1f%% (%d/%d), weighted %.1f%%",
		s.Percentage, s.Correct, s.Total, s.Weighted)
	if s.Passed {
		fmt.Fprintln(out, " - PASS")
	} else {
		fmt.Fprintln(out, " - FAIL")
	}

	fmt.Fprintln(out, "\nBy domain:")
	for _, d := range tco.AllDomains() {
		ds := s.ByDomain[d]
		fmt.Fprintf(out, "  %-40s %d/%d (%.0f%%)\n",
			tco.DomainDisplayName(d), ds.Correct, ds.Total, ds.Percentage)
	}

	p := r.Plan
	fmt.Fprintf(out, "\nRecommendation: %s (est. %d min)\n",
		p.Recommendation, p.EstimatedMinutes)
	for _, item := range p.StudyPlan {
		fmt.Fprintf(out, "  %2d. [%s] %s\n", item.Order, item.Type, item.Title)
	}
	if p.Retake.Eligible {
		fmt.Fprintf(out, "Retake available after %dh (max %d attempts).\n",
			p.Retake.WaitHours, p.Retake.MaxAttempts)
	}
}
