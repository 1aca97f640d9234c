package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsprep/tcoprep/internal/srs"
	"github.com/opsprep/tcoprep/internal/tco"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session history and domain accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, opts, err := buildOptions(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		out := cmd.OutOrStdout()

		summaries, err := opts.Events.SessionSummaries(ctx, opts.UserID, limit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Fprintln(out, "No completed sessions yet.")
		} else {
			fmt.Fprintf(out, "Recent sessions for %s:\n", opts.UserID)
			for _, s := range summaries {
				verdict := "FAIL"
				if s.Passed {
					verdict = "PASS"
				}
				fmt.Fprintf(out, "  %s  %-10s %3d/%3d  %5.1f%%  %s\n",
					s.Timestamp.Format("2006-01-02 15:04"), s.Kind,
					s.Correct, s.Questions, s.ScorePercent, verdict)
			}
		}

		fmt.Fprintln(out, "\nDomain accuracy:")
		for _, d := range tco.AllDomains() {
			acc, err := opts.Events.DomainAccuracy(ctx, opts.UserID, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-32s %5.1f%%  (%s)\n",
				tco.DomainDisplayName(d), acc*100,
				tco.TierForPercentage(acc*100))
		}

		items, err := opts.Reviews.LoadAll(ctx, opts.UserID)
		if err != nil {
			return err
		}
		sched := srs.NewScheduler(items, nil)
		fmt.Fprintf(out, "\nReview queue: %d tracked, %d due now.\n",
			sched.Len(), len(sched.DueItems(time.Now())))
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent sessions to show")
}
