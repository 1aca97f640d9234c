package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsprep/tcoprep/internal/app"
	"github.com/opsprep/tcoprep/internal/session"
	"github.com/opsprep/tcoprep/internal/targeting"
	"github.com/opsprep/tcoprep/internal/tco"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session",
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
		domainFlag, _ := cmd.Flags().GetString("domain")
		moduleID, _ := cmd.Flags().GetString("module")
		passScore, _ := cmd.Flags().GetFloat64("pass")
		if passScore <= 0 {
			passScore = cfg.PassingScore
		} else if passScore > 1 {
			return fmt.Errorf("pass score %v out of range (0, 1]", passScore)
		}

		var questions []tco.Question
		sessionCfg := session.Config{
			ModuleID:      moduleID,
			QuestionCount: count,
			PassingScore:  passScore,
		}

		if domainFlag != "" {
			domain := tco.Domain(domainFlag)
			if !tco.IsValidDomain(domain) {
				return fmt.Errorf("unknown domain %q", domainFlag)
			}
			sessionCfg.Domain = domain
			questions, err = repo.ByDomain(ctx, domain)
			if err != nil {
				return err
			}
			opts.Rand.Shuffle(len(questions), func(i, j int) {
				questions[i], questions[j] = questions[j], questions[i]
			})
			if len(questions) > count {
				questions = questions[:count]
			}
		} else {
			questions, err = targeting.BuildWeightedSet(ctx, repo, tco.AllDomains(), count, nil, opts.Rand)
			if err != nil {
				return err
			}
		}

		_, err = app.RunPractice(ctx, opts, sessionCfg, questions)
		return err
	},
}

func init() {
	practiceCmd.Flags().Int("count", 0, "Number of questions (default from config)")
	practiceCmd.Flags().String("domain", "", "Restrict to one exam domain")
	practiceCmd.Flags().String("module", "", "Study module to record progress against")
	practiceCmd.Flags().Float64("pass", 0, "Passing score override as a fraction (default from config)")
}
