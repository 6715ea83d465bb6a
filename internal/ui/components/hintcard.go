package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentalmath/internal/hints"
	"github.com/abhisek/mentalmath/internal/lessons"
	"github.com/abhisek/mentalmath/internal/ui/theme"
)

// RenderMarkup renders the **bold** spans used in hint text.
func RenderMarkup(s string) string {
	parts := strings.Split(s, "**")
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(theme.Strong.Render(part))
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}

// HintCard renders a strategy hint, with its visual breakdown when
// visual is true and the hint has one.
func HintCard(h hints.Hint, visual bool, width int) string {
	body := RenderMarkup(h.Text)
	if visual && h.Visual != nil {
		body += "\n\n" + renderVisual(*h.Visual)
	}
	return theme.HintCard.Width(width).Render(body)
}

func renderVisual(v hints.Visual) string {
	var b strings.Builder
	if v.Title != "" {
		b.WriteString(theme.Highlight.Render(v.Title))
		b.WriteString("\n")
	}
	labelWidth := 0
	for _, s := range v.Steps {
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}
	for _, s := range v.Steps {
		line := fmt.Sprintf("%-*s", labelWidth, s.Label)
		if s.Operation != "" {
			line = s.Operation + " " + line
		} else {
			line = "  " + line
		}
		if s.Value != "" {
			line += "  = " + s.Value
		}
		if s.Highlight {
			line = theme.Highlight.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// StepList renders a worked solution as numbered steps.
func StepList(steps []lessons.Step, width int) string {
	var b strings.Builder
	b.WriteString(theme.Highlight.Render("Step by step"))
	b.WriteString("\n")
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s", i+1, s.Text)
		if s.SubCalculation != "" {
			b.WriteString("  " + theme.Dim.Render(s.SubCalculation))
		}
		b.WriteString("\n")
	}
	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
