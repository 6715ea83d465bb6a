package home

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentalmath/internal/practice"
	"github.com/abhisek/mentalmath/internal/router"
	"github.com/abhisek/mentalmath/internal/screens/drill"
	"github.com/abhisek/mentalmath/internal/screens/history"
	"github.com/abhisek/mentalmath/internal/screens/skillmap"
	"github.com/abhisek/mentalmath/internal/session"
	"github.com/abhisek/mentalmath/internal/skillgraph"
	"github.com/abhisek/mentalmath/internal/ui/components"
	"github.com/abhisek/mentalmath/internal/ui/theme"
	"github.com/abhisek/mentalmath/internal/xp"
)

// weakShown is how many weak skills the stats card lists.
const weakShown = 3

// HomeScreen is the main menu with a stats card for the learner.
type HomeScreen struct {
	env  *practice.Env
	menu components.Menu
	weak []string // skill names below session.WeakProficiency, weakest first
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *practice.Env) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Practice", Detail: "Adaptive drill", Action: func() tea.Cmd {
			return router.Push(drill.New(env))
		}},
		{Label: "Skill Map", Detail: "Proficiency by strand", Action: func() tea.Cmd {
			return router.Push(skillmap.New(env))
		}},
		{Label: "History", Detail: "Recent sessions", Action: func() tea.Cmd {
			return router.Push(history.New(env.Repo, env.Profile.Name, env.Profile.History))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h := &HomeScreen{env: env, menu: components.NewMenu(items)}
	h.computeWeak()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh recomputes the stats after a drill changed the profile.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.computeWeak()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-4, 64)
	sections := []string{
		theme.Title.Render("Mental Math Trainer"),
		h.renderStats(cw),
		theme.Card.Width(cw).Render(h.menu.View()),
	}
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStats(width int) string {
	p := h.env.Profile
	prog := xp.Progress(p.XP)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  ·  Level %d  ·  %d day streak (best %d)\n",
		theme.Strong.Render(p.Name), p.Level, p.Streak, p.LongestStreak)
	b.WriteString(components.ProgressBar{
		Label:   "XP",
		Percent: prog.Percent / 100,
		Suffix:  fmt.Sprintf("%d/%d", prog.Current, prog.Needed),
		Width:   width - 4,
	}.View())
	if p.ActivePlan != nil {
		b.WriteString("\n" + theme.Highlight.Render("Plan: "+p.ActivePlan.Name))
	}
	if len(h.weak) > 0 {
		b.WriteString("\n" + theme.Dim.Render("Work on: "+strings.Join(h.weak, ", ")))
	}
	return theme.Card.Width(width).Render(b.String())
}

func (h *HomeScreen) computeWeak() {
	p := h.env.Profile
	keys := skillgraph.EligibleSkills(p.Level)
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(p.Proficiency(a), p.Proficiency(b))
	})
	h.weak = h.weak[:0]
	for _, k := range keys {
		if len(h.weak) == weakShown {
			break
		}
		if p.Proficiency(k) < session.WeakProficiency {
			h.weak = append(h.weak, skillgraph.MustSkill(k).Name)
		}
	}
}
