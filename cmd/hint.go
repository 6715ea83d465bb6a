package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentalmath/internal/hints"
	"github.com/abhisek/mentalmath/internal/lessons"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/ui/components"
	"github.com/abhisek/mentalmath/internal/ui/theme"
)

// hintWidth is the card width used for terminal output.
const hintWidth = 64

var hintCmd = &cobra.Command{
	Use:   `hint "<a> <op> <b>"`,
	Short: "Show the mental strategy and worked steps for an expression",
	Example: `  mentalmath hint "48 + 37"
  mentalmath hint "25% of 80"
  mentalmath hint "sqrt 144"
  mentalmath hint --manual`,
	Args: func(cmd *cobra.Command, args []string) error {
		if manual, _ := cmd.Flags().GetBool("manual"); manual {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if manual, _ := cmd.Flags().GetBool("manual"); manual {
			printManual(cmd.OutOrStdout())
			return nil
		}
		p, err := problemgen.ParseExpression(strings.Join(args, " "))
		if err != nil {
			return err
		}
		lib, err := hints.New()
		if err != nil {
			return fmt.Errorf("load hints: %w", err)
		}
		visual, _ := cmd.Flags().GetBool("visual")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s = %s\n\n", p.Expression(), p.Answer)
		fmt.Fprintln(out, components.HintCard(lib.Hint(p), visual, hintWidth))
		if steps := lessons.Steps(p); len(steps) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, components.StepList(steps, hintWidth))
		}
		return nil
	},
}

// printManual lists the general protocols used when no specific
// strategy applies.
func printManual(w io.Writer) {
	m := hints.GeneralManual()
	fmt.Fprintln(w, theme.Title.Render("Mental math manual"))
	fmt.Fprintln(w, m.Mindset)
	for _, p := range m.Protocols {
		fmt.Fprintf(w, "\n%d. %s: %s\n   %s\n", p.Number, theme.Strong.Render(p.Title), p.Mission, p.Tactic)
	}
}

func init() {
	hintCmd.Flags().Bool("visual", true, "Include the visual breakdown when the strategy has one")
	hintCmd.Flags().Bool("manual", false, "Print the general mental math protocols instead of a hint")
}
