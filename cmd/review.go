package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opsprep/tcoprep/internal/app"
	"github.com/opsprep/tcoprep/internal/tco"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review due spaced-repetition items",
	Long:  "Asks every due review item, rates each answer, and schedules the next review. Missed practice questions are enrolled automatically.",
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

		repo, err := loadRepo(cfg)
		if err != nil {
			return err
		}
		opts.Repo = repo

		lookup := make(map[string]tco.Question, repo.Len())
		for _, q := range repo.All() {
			lookup[q.ID] = q
		}

		seedIDs, err := opts.Events.NeedsReviewQuestionIDs(ctx, opts.UserID)
		if err != nil {
			return err
		}

		_, err = app.RunReview(ctx, opts, lookup, seedIDs)
		return err
	},
}
