package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/matching"
	"github.com/spigell/interview-sim/internal/questions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the match score breakdown for one job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		runScore(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("job", "", "job posting file")
	scoreCmd.MarkFlagRequired("job")
}

func runScore(cmd *cobra.Command) {
	d := setup("score")

	jobFile, _ := cmd.Flags().GetString("job")
	posting, err := jobposting.LoadFile(jobFile)
	if err != nil {
		d.logger.Fatal("loading job posting", zap.Error(err))
	}

	category, _ := questions.NewRouter().Route(posting.Requirement)

	output := struct {
		Job      string             `json:"job"`
		Category questions.Category `json:"category"`
		Report   matching.Report    `json:"report"`
	}{
		Job:      posting.Label(),
		Category: category,
		Report:   d.scorer.Breakdown(posting.Requirement, d.facts),
	}

	pretty, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		d.logger.Fatal("encoding the report", zap.Error(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
}
