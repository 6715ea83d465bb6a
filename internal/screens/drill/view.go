package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentalmath/internal/diagnosis"
	"github.com/abhisek/mentalmath/internal/ui/components"
	"github.com/abhisek/mentalmath/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cw := min(width-4, 72)
	var sections []string

	if s.phase == phaseError {
		sections = append(sections,
			theme.Incorrect.Render("Could not build a problem"),
			theme.Dim.Render(s.errMsg))
		return center(sections, width, height)
	}

	sections = append(sections, s.renderProgress(cw))
	if s.problem != nil {
		sections = append(sections, theme.Card.Width(cw).Render(theme.Problem.Render(s.problem.Prompt())))
	}
	sections = append(sections, s.input.View())

	switch s.phase {
	case phaseFeedback:
		sections = append(sections, s.renderFeedback(cw)...)
	case phaseQuitConfirm:
		sections = append(sections, theme.Highlight.Render("End this session? Progress so far will be saved. (y/n)"))
	}
	return center(sections, width, height)
}

func (s *Screen) renderProgress(width int) string {
	total := max(s.env.SessionLength, 1)
	label := fmt.Sprintf("Problem %d of %d", min(s.answered+1, total), total)
	if s.phase == phaseFeedback {
		label = fmt.Sprintf("Problem %d of %d", s.answered, total)
	}
	return components.ProgressBar{
		Label:   label,
		Percent: float64(s.answered) / float64(total),
		Suffix:  fmt.Sprintf("streak %d", s.engine.Streak()),
		Width:   width,
	}.View()
}

func (s *Screen) renderFeedback(width int) []string {
	var out []string
	res := s.last
	if res.Correct {
		out = append(out, theme.Correct.Render("Correct!")+"  "+theme.Body.Render(res.Feedback))
		out = append(out, theme.Dim.Render(fmt.Sprintf("+%d XP", res.XP)))
	} else {
		out = append(out, theme.Incorrect.Render("Not quite.")+"  "+theme.Body.Render(res.Feedback))
		out = append(out, theme.Body.Render("The answer is ")+theme.Strong.Render(res.CorrectAnswer.String()))
		if s.errorKind != "" && s.errorKind != diagnosis.KindCalculation {
			out = append(out, theme.Dim.Render(diagnosis.Describe(s.errorKind)+": "+diagnosis.Strategy(s.errorKind)))
		}
		if s.unsimplified {
			out = append(out, theme.Dim.Render("Same value, but write it in lowest terms."))
		}
		if res.Hint != nil {
			if s.freshHint {
				out = append(out, theme.Highlight.Render("New strategy!"))
			}
			out = append(out, components.HintCard(*res.Hint, s.env.Profile.VisualHints, width))
		}
	}

	switch {
	case s.outcome.ShowBreakdown:
		out = append(out, components.StepList(s.outcome.Steps, width))
	case s.explain:
		out = append(out, components.StepList(s.tutor.Breakdown(s.problem), width))
	}
	return out
}

func center(sections []string, width, height int) string {
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
