package skillmap

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentalmath/internal/practice"
	"github.com/abhisek/mentalmath/internal/profile"
	"github.com/abhisek/mentalmath/internal/router"
	"github.com/abhisek/mentalmath/internal/screens/drill"
	"github.com/abhisek/mentalmath/internal/skillgraph"
	"github.com/abhisek/mentalmath/internal/ui/components"
	"github.com/abhisek/mentalmath/internal/ui/layout"
	"github.com/abhisek/mentalmath/internal/ui/theme"
)

type rowKind int

const (
	rowStrandHeader rowKind = iota
	rowSkill
)

type row struct {
	kind   rowKind
	strand skillgraph.Strand
	skill  skillgraph.MicroSkill
}

type planSavedMsg struct{ err error }

// SkillMapScreen lists every micro-skill by strand with the learner's
// proficiency. Enter starts a focused drill; P focuses the plan on the
// selected strand.
type SkillMapScreen struct {
	env          *practice.Env
	rows         []row
	cursor       int
	scrollOffset int
	status       string
}

var _ router.Screen = (*SkillMapScreen)(nil)
var _ router.KeyHintProvider = (*SkillMapScreen)(nil)

// New creates a new SkillMapScreen.
func New(env *practice.Env) *SkillMapScreen {
	var rows []row
	for _, strand := range skillgraph.AllStrands() {
		skills := skillgraph.ByStrand(strand)
		if len(skills) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowStrandHeader, strand: strand})
		for _, sk := range skills {
			rows = append(rows, row{kind: rowSkill, strand: strand, skill: sk})
		}
	}

	s := &SkillMapScreen{env: env, rows: rows}
	for i, r := range s.rows {
		if r.kind == rowSkill {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *SkillMapScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillMapScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planSavedMsg:
		if msg.err != nil {
			s.status = "Could not save plan: " + msg.err.Error()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextStrand()
		case "shift+tab":
			s.prevStrand()
		case "enter":
			return s, s.selectSkill()
		case "p":
			return s, s.togglePlan()
		case "q":
			return s, router.PopCmd
		}
	}
	return s, nil
}

func (s *SkillMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	var lines []string
	if plan := s.env.Profile.ActivePlan; plan != nil {
		lines = append(lines, theme.Highlight.Render("  Plan: "+plan.Name))
	}
	if s.status != "" {
		lines = append(lines, theme.Dim.Render("  "+s.status))
	}
	rowsHeight := height - len(lines)
	s.adjustScroll(rowsHeight)

	eligible := skillgraph.EligibleSkills(s.env.Profile.Level)
	planned := s.env.Profile.PlanSkills()
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= rowsHeight {
			break
		}
		switch r.kind {
		case rowStrandHeader:
			lines = append(lines, renderStrandHeader(r.strand, width))
		case rowSkill:
			lines = append(lines, s.renderSkillRow(r.skill, i == s.cursor,
				slices.Contains(eligible, r.skill.Key), slices.Contains(planned, r.skill.Key), width))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

func (s *SkillMapScreen) Title() string {
	return "Skill Map"
}

func (s *SkillMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Strand"},
		{Key: "Enter", Description: "Drill"},
		{Key: "P", Description: "Plan strand"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping strand headers.
func (s *SkillMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowSkill {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextStrand jumps the cursor to the first skill in the next strand.
func (s *SkillMapScreen) nextStrand() {
	current := s.rows[s.cursor].strand
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowSkill && s.rows[i].strand != current {
			s.cursor = i
			return
		}
	}
}

// prevStrand jumps the cursor to the first skill in the previous strand.
func (s *SkillMapScreen) prevStrand() {
	current := s.rows[s.cursor].strand
	var target skillgraph.Strand
	found := false
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowSkill && s.rows[i].strand != current {
			target = s.rows[i].strand
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowSkill && r.strand == target {
			s.cursor = i
			return
		}
	}
}

func (s *SkillMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowStrandHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *SkillMapScreen) selectSkill() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowSkill {
		return nil
	}
	return router.Push(drill.NewFocused(s.env, r.skill.Key))
}

// togglePlan focuses the training plan on the cursor's strand, or clears
// it when that strand is already the plan.
func (s *SkillMapScreen) togglePlan() tea.Cmd {
	p := s.env.Profile
	strand := s.rows[s.cursor].strand
	plan, err := profile.StrandPlan(strand, s.env.Clock())
	if err != nil {
		s.status = err.Error()
		return nil
	}
	if p.ActivePlan != nil && p.ActivePlan.Name == plan.Name {
		p.ClearPlan()
		s.status = "Plan cleared"
	} else {
		p.SetPlan(plan)
		s.status = ""
	}

	repo := s.env.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		return planSavedMsg{err: repo.Save(context.Background(), p)}
	}
}

func renderStrandHeader(strand skillgraph.Strand, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(skillgraph.StrandDisplayName(strand)))
}

func (s *SkillMapScreen) renderSkillRow(sk skillgraph.MicroSkill, selected, eligible, planned bool, width int) string {
	marker := "  "
	switch {
	case planned:
		marker = "★ "
	case eligible:
		marker = "• "
	}

	nameWidth := max(width/3, 12)
	name := sk.Name
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case selected:
		style = style.Foreground(theme.Primary).Bold(true)
	case !eligible && !planned:
		style = style.Foreground(theme.TextDim)
	}

	prof := s.env.Profile.Proficiency(sk.Key)
	bar := components.ProgressBar{
		Percent: float64(prof) / profile.MaxProficiency,
		Suffix:  fmt.Sprintf("%3d", prof),
		Width:   max(width-nameWidth-10, 16),
	}
	return "    " + style.Render(marker+fmt.Sprintf("%-*s", nameWidth, name)) + "  " + bar.View()
}
