package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentalmath/internal/practice"
	"github.com/abhisek/mentalmath/internal/router"
	"github.com/abhisek/mentalmath/internal/skillgraph"
	"github.com/abhisek/mentalmath/internal/ui/layout"
	"github.com/abhisek/mentalmath/internal/ui/theme"
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	outcome practice.Outcome
	saveErr error
}

var _ router.Screen = (*SummaryScreen)(nil)
var _ router.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. A non-nil saveErr is shown as a warning;
// the outcome is still displayed.
func New(outcome practice.Outcome, saveErr error) *SummaryScreen {
	return &SummaryScreen{outcome: outcome, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.PopCmd
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.outcome.Summary
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(centered.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Problems: %d    Correct: %d    Accuracy: %.0f%%    Avg: %.1fs",
		sum.TotalProblems, sum.CorrectProblems, sum.Accuracy, sum.AvgSpeed)
	b.WriteString(centered.Foreground(theme.Text).Render(stats))
	b.WriteString("\n\n")

	xpLine := fmt.Sprintf("+%d XP bonus    Total %d XP    Day streak %d",
		sum.XPEarned, s.outcome.TotalXP, s.outcome.DayStreak)
	b.WriteString(centered.Foreground(theme.Accent).Render(xpLine))
	b.WriteString("\n")

	if s.outcome.LevelUp {
		b.WriteString("\n")
		b.WriteString(centered.Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("Level up! You reached level %d.", s.outcome.NewLevel)))
		b.WriteString("\n")
	}

	if len(sum.SkillResults) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Dim.Render("Skills")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, r := range sum.SkillResults {
			line := fmt.Sprintf("%-28s %d/%d", skillName(r.SkillKey), r.Correct, r.Attempted)
			style := theme.Body
			if r.SkillKey == sum.StruggledSkill {
				style = theme.Incorrect
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	if sum.StruggledSkill != "" {
		b.WriteString("\n")
		b.WriteString(centered.Foreground(theme.TextDim).
			Render("Needs work: " + skillName(sum.StruggledSkill)))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(centered.Foreground(theme.Error).Render("Could not save progress: " + s.saveErr.Error()))
	}
	return b.String()
}

func skillName(key string) string {
	if sk, err := skillgraph.GetSkill(key); err == nil {
		return sk.Name
	}
	return key
}
