package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job postings with their match score after the posting filters",
	Run: func(cmd *cobra.Command, _ []string) {
		runJobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().Bool("all", false, "do not drop postings below the minimum match score")
	jobsCmd.Flags().Bool("report", false, "log the postings grouped by company")
	jobsCmd.Flags().Bool("dump", false, "dump the postings to a temp JSON file")
}

func runJobs(cmd *cobra.Command) {
	ctx := context.Background()
	d := setup("jobs")
	out := cmd.OutOrStdout()

	all, _ := cmd.Flags().GetBool("all")

	postings, results, err := d.loadPostings(ctx, all)
	if err != nil {
		d.logger.Fatal("loading job postings", zap.Error(err))
	}

	if postings.Len() == 0 {
		d.logger.Info("exiting", zap.String("reason", "no job postings left after filters"))
		return
	}

	for _, posting := range postings.Items {
		result := d.matchFor(posting, results)
		fmt.Fprintf(out, "%3d%%  %s  (%s)\n", result.Overall, posting.Label(), posting.Source)
	}

	if report, _ := cmd.Flags().GetBool("report"); report {
		pretty, _ := json.MarshalIndent(postings.ReportByCompany(), "", "  ")
		d.logger.Info(string(pretty), zap.Int("postings count", postings.Len()))
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		filename, err := postings.DumpToTmpFile()
		if err != nil {
			d.logger.Fatal("dump results to file", zap.Error(err))
		}
		d.logger.Info("dumping result to file", zap.String("filename", filename))
	}
}
