package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spigell/interview-sim/internal/interview"
	"github.com/spigell/interview-sim/internal/jobposting"
	"github.com/spigell/interview-sim/internal/matching"
	"github.com/spigell/interview-sim/internal/questions"
	"github.com/spigell/interview-sim/internal/utils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptNext = "Next question"
	PromptStop = "Stop the interview"
)

var errStopped = errors.New("interview stopped")

var nextPrompt = promptui.Select{
	Label: "Continue?",
	Items: []string{PromptNext, PromptStop},
}

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a simulated five question interview for a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		runInterview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().String("job", "", "job posting file; when unset a posting is chosen from the jobs dir")
	interviewCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation between questions")
	interviewCmd.Flags().Bool("dump", false, "dump the finished session to a temp JSON file")
}

func runInterview(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := setup("interview")
	out := cmd.OutOrStdout()

	autoApprove, _ := cmd.Flags().GetBool("auto-approve")
	jobFile, _ := cmd.Flags().GetString("job")

	posting, err := choosePosting(ctx, d, jobFile, autoApprove)
	if err != nil {
		d.logger.Fatal("choosing a job posting", zap.Error(err))
	}
	if posting == nil {
		d.logger.Info("exiting", zap.String("reason", "no job postings left after filters"))
		return
	}

	engine := interview.NewEngine(d.facts, d.scorer, questions.NewRouter(), d.answerGenerator(ctx), d.logger,
		interview.WithPace(d.config.Pace),
	)

	session := engine.StartPosting(posting.Requirement)
	printSessionHeader(out, session)

	var summary interview.Summary
	if autoApprove {
		summary, err = engine.Run(ctx, session, func(turn interview.Turn) { printTurn(out, turn) })
	} else {
		summary, err = advanceInteractively(ctx, engine, session, out)
	}

	switch {
	case errors.Is(err, errStopped):
		d.logger.Info("exiting", zap.String("reason", "stopped from prompt"), zap.Int("answered", len(session.Turns)))
		return
	case err != nil:
		d.logger.Fatal("running the interview", zap.Error(err))
	}

	printSummary(out, summary)

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		filename, err := utils.DumpToTmpFile("session_*.json", session)
		if err != nil {
			d.logger.Fatal("dump session to file", zap.Error(err))
		}
		d.logger.Info("dumping session to file", zap.String("filename", filename))
	}
}

// choosePosting loads the posting given by --job, or lets the user pick one of
// the filtered postings. With auto-approve the best match is taken.
func choosePosting(ctx context.Context, d *deps, jobFile string, autoApprove bool) (*jobposting.Posting, error) {
	if jobFile != "" {
		return jobposting.LoadFile(jobFile)
	}

	postings, results, err := d.loadPostings(ctx, false)
	if err != nil {
		return nil, err
	}
	if postings.Len() == 0 {
		return nil, nil
	}

	if autoApprove {
		return bestMatch(postings, func(p *jobposting.Posting) matching.Result { return d.matchFor(p, results) }), nil
	}

	items := postings.Labels()
	for i, posting := range postings.Items {
		items[i] = fmt.Sprintf("%3d%%  %s", d.matchFor(posting, results).Overall, items[i])
	}

	postingPrompt := promptui.Select{
		Label: "Choose a job posting and press ENTER",
		Items: items,
	}

	index, _, err := postingPrompt.Run()
	if err != nil {
		return nil, err
	}
	return postings.Items[index], nil
}

// bestMatch returns the posting with the highest overall score, the first one on ties.
func bestMatch(postings *jobposting.Postings, score func(*jobposting.Posting) matching.Result) *jobposting.Posting {
	var best *jobposting.Posting
	bestScore := -1
	for _, posting := range postings.Items {
		if overall := score(posting).Overall; overall > bestScore {
			best, bestScore = posting, overall
		}
	}
	return best
}

func advanceInteractively(ctx context.Context, engine *interview.Engine, session *interview.Session, out io.Writer) (interview.Summary, error) {
	for {
		step, err := engine.Advance(ctx, session)
		if err != nil {
			return interview.Summary{}, err
		}
		if step.Done() {
			return *step.Summary, nil
		}

		printTurn(out, *step.Turn)

		if step.Turn.Index == len(session.Questions) {
			continue
		}

		_, action, err := nextPrompt.Run()
		if err != nil {
			return interview.Summary{}, err
		}
		if action == PromptStop {
			return interview.Summary{}, errStopped
		}
	}
}

func printSessionHeader(w io.Writer, s *interview.Session) {
	fmt.Fprintf(w, "\n%s\n", s.Job.Label())
	fmt.Fprintf(w, "Category: %s\n", s.Category)
	fmt.Fprintf(w, "Initial match score: %d%%\n", s.InitialMatchScore())
}

func printTurn(w io.Writer, turn interview.Turn) {
	fmt.Fprintf(w, "\nQuestion %d: %s\n", turn.Index, turn.Spec.Question)
	fmt.Fprintf(w, "Answer: %s\n", turn.Answer)
	fmt.Fprintf(w, "Assessment: %s\n", turn.Spec.Assessment)
	fmt.Fprintf(w, "Tip: %s\n", turn.Spec.Tip)
	fmt.Fprintf(w, "Score: %d%%\n", turn.Score)
}

func printSummary(w io.Writer, summary interview.Summary) {
	fmt.Fprintf(w, "\nInterview complete\n")
	fmt.Fprintf(w, "Average score: %d%%\n", summary.AverageScore)
	fmt.Fprintf(w, "Initial match score: %d%%\n", summary.InitialMatchScore)
	fmt.Fprintf(w, "Per question: %v\n", summary.PerQuestionScores)
}
