package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opsprep/tcoprep/internal/app"
	"github.com/opsprep/tcoprep/internal/assessment"
	"github.com/opsprep/tcoprep/internal/targeting"
	"github.com/opsprep/tcoprep/internal/tco"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take a weighted mock assessment",
	Long:  "Runs a mock exam sampled across all domains by exam weight, then scores it and prints a remediation plan.",
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

		count, _ := cmd.Flags().GetInt("count")
		if count <= 0 {
			count = cfg.QuestionCount
		}

		// Weight the draw toward domains with pending review backlog
		// when asked; falls back to exam weights on an empty backlog.
		var needsReview map[tco.Domain]int
		if byReviews, _ := cmd.Flags().GetBool("by-reviews"); byReviews {
			needsReview, err = opts.Events.NeedsReviewCounts(ctx, opts.UserID)
			if err != nil {
				return err
			}
		}

		questions, err := targeting.BuildWeightedSet(ctx, repo, tco.AllDomains(), count, needsReview, opts.Rand)
		if err != nil {
			return err
		}

		examCfg := assessment.Config{
			Type:          assessment.TypeMockExam,
			PassThreshold: cfg.PassingScore,
		}
		_, err = app.RunExam(ctx, opts, examCfg, questions)
		return err
	},
}

func init() {
	examCmd.Flags().Int("count", 0, "Number of questions (default from config)")
	examCmd.Flags().Bool("by-reviews", false, "Weight domains by pending review backlog instead of exam weights")
}
