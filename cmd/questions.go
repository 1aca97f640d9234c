package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsprep/tcoprep/internal/tco"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Validate the question bank and show its coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		repo, err := loadRepo(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d questions, all valid.\n", cfg.BankPath, repo.Len())

		byDomain := make(map[tco.Domain]int)
		byDifficulty := make(map[tco.Difficulty]int)
		for _, q := range repo.All() {
			byDomain[q.Domain]++
			byDifficulty[q.Difficulty]++
		}

		fmt.Fprintln(out, "\nPer domain:")
		for _, d := range tco.AllDomains() {
			fmt.Fprintf(out, "  %-32s %4d  (exam weight %d%%)\n",
				tco.DomainDisplayName(d), byDomain[d], tco.ExamWeight(d))
		}

		fmt.Fprintln(out, "\nPer difficulty:")
		for _, diff := range tco.AllDifficulties() {
			fmt.Fprintf(out, "  %-12s %4d\n", diff, byDifficulty[diff])
		}
		return nil
	},
}
