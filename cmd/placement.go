package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentalmath/internal/placement"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/skillgraph"
	"github.com/abhisek/mentalmath/internal/ui/theme"
)

var placementCmd = &cobra.Command{
	Use:   "placement",
	Short: "Run the placement test and set the starting level",
	Long: `Answer a short battery of problems, one per line. The result sets the
profile's level and, for the staged test, seeds per-skill proficiency.

The default battery has seven fixed items. --staged runs up to four stages of
three skills and stops early when a stage goes badly.`,
	RunE: runPlacement,
}

func init() {
	placementCmd.Flags().Bool("staged", false, "Run the staged placement with early stop")
}

func runPlacement(cmd *cobra.Command, args []string) error {
	staged, _ := cmd.Flags().GetBool("staged")

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	p, err := rt.loadProfile(ctx, profileName(cmd))
	if err != nil {
		return err
	}

	gen := problemgen.NewGenerator(rt.cfg.Source(), problemgen.WithLogger(rt.logger))
	opts := []placement.Option{
		placement.WithScoring(placement.PolicyByName(rt.cfg.Scoring)),
		placement.WithLogger(rt.logger),
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	var report placement.Report
	if staged {
		report, err = stagedPlacement(out, scanner, placement.NewStaged(gen, opts...))
	} else {
		report, err = batteryPlacement(out, scanner, placement.NewEngine(gen, opts...))
	}
	if err != nil {
		return err
	}

	p.ApplyPlacement(report)
	if err := rt.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	printReport(out, report)
	return nil
}

func batteryPlacement(out io.Writer, scanner *bufio.Scanner, e *placement.Engine) (placement.Report, error) {
	fmt.Fprintf(out, "Placement: %d problems. Type a whole number and press Enter.\n\n", e.Len())
	for !e.Complete() {
		prob, err := e.Next()
		if err != nil {
			return placement.Report{}, err
		}
		raw, secs, ok := ask(out, scanner, prob)
		if !ok {
			return placement.Report{}, fmt.Errorf("placement interrupted")
		}
		res, err := e.Submit(prob, raw, secs)
		if err != nil {
			return placement.Report{}, err
		}
		printVerdict(out, res.Correct, res.CorrectAnswer)
		if res.Guide != nil {
			fmt.Fprintf(out, "Tip: %s\n", res.Guide.Strategy)
		}
		fmt.Fprintln(out)
	}
	return e.Report(), nil
}

func stagedPlacement(out io.Writer, scanner *bufio.Scanner, s *placement.Staged) (placement.Report, error) {
	fmt.Fprintf(out, "Staged placement: up to %d stages of three problems.\n\n", skillgraph.StageCount())
	for !s.Complete() {
		prob, err := s.Next()
		if err != nil {
			return placement.Report{}, err
		}
		if prob == nil {
			break
		}
		raw, secs, ok := ask(out, scanner, prob)
		if !ok {
			return placement.Report{}, fmt.Errorf("placement interrupted")
		}
		res, err := s.Submit(prob, raw, secs)
		if err != nil {
			return placement.Report{}, err
		}
		printVerdict(out, res.Correct, res.CorrectAnswer)
		if res.StageDone && !res.Complete {
			fmt.Fprintf(out, "── Stage %d ──\n", res.Stage+1)
		}
		fmt.Fprintln(out)
	}
	return s.Report(), nil
}

// ask shows a problem and reads one line. ok is false when input ends.
func ask(out io.Writer, scanner *bufio.Scanner, p *problemgen.Problem) (string, float64, bool) {
	if p.Progress != "" {
		fmt.Fprintf(out, "[%s] ", p.Progress)
	}
	fmt.Fprintf(out, "%s\n> ", p.Prompt())

	start := time.Now()
	if !scanner.Scan() {
		fmt.Fprintln(out, "\n(input closed)")
		return "", 0, false
	}
	return strings.TrimSpace(scanner.Text()), time.Since(start).Seconds(), true
}

func printVerdict(out io.Writer, correct bool, answer problemgen.Answer) {
	if correct {
		fmt.Fprintln(out, theme.Correct.Render("✓ Correct!"))
		return
	}
	fmt.Fprintf(out, "%s Answer: %s\n", theme.Incorrect.Render("✗ Wrong."), answer)
}

func printReport(out io.Writer, r placement.Report) {
	fmt.Fprintln(out, "── Result ──")
	fmt.Fprintf(out, "Accuracy: %.0f%%\n", r.OverallAccuracy*100)
	fmt.Fprintf(out, "Starting level: %d\n", r.RecommendedLevel)
	if len(r.Weaknesses) > 0 {
		names := make([]string, len(r.Weaknesses))
		for i, key := range r.Weaknesses {
			names[i] = skillDisplayName(key)
		}
		fmt.Fprintf(out, "Work on: %s\n", strings.Join(names, ", "))
	}
}

func skillDisplayName(key string) string {
	if s, err := skillgraph.GetSkill(key); err == nil {
		return s.Name
	}
	return key
}
