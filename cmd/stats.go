package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentalmath/internal/profile"
	"github.com/abhisek/mentalmath/internal/ui/components"
	"github.com/abhisek/mentalmath/internal/xp"
)

// recentSessions is how many sessions stats prints.
const recentSessions = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		sessions, err := rt.repo.Sessions(ctx, p.Name, recentSessions)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		prog := xp.Progress(p.XP)
		fmt.Fprintf(out, "%s  level %d  %d XP\n", p.Name, p.Level, p.XP)
		fmt.Fprintln(out, components.ProgressBar{
			Label:   "Next level",
			Percent: prog.Percent / 100,
			Suffix:  fmt.Sprintf("%d/%d", prog.Current, prog.Needed),
			Width:   60,
		}.View())
		fmt.Fprintf(out, "Streak: %d days (best %d), next milestone %d\n",
			p.Streak, p.LongestStreak, xp.NextStreakMilestone(p.Streak))
		if !p.HasCompletedDiagnostic {
			fmt.Fprintln(out, "No placement yet: run `mentalmath placement`.")
		}
		if p.ActivePlan != nil {
			fmt.Fprintf(out, "Plan: %s\n", p.ActivePlan.Name)
		}

		if len(sessions) == 0 {
			fmt.Fprintln(out, "\nNo sessions yet.")
			return nil
		}
		fmt.Fprintln(out, "\nRecent sessions")
		for i := len(sessions) - 1; i >= 0; i-- {
			printSession(cmd, sessions[i])
		}
		return nil
	},
}

func printSession(cmd *cobra.Command, r profile.SessionRecord) {
	line := fmt.Sprintf("  %s  %d/%d correct  %.0f%%  %.1fs avg  +%d XP",
		r.Date, r.Correct, r.ProblemsSolved, r.Accuracy, r.AvgSpeed, r.XPEarned)
	if r.StruggledSkill != "" {
		line += "  (struggled: " + skillDisplayName(r.StruggledSkill) + ")"
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
