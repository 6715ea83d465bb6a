package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mentalmath/internal/profile"
	"github.com/abhisek/mentalmath/internal/router"
	"github.com/abhisek/mentalmath/internal/skillgraph"
	"github.com/abhisek/mentalmath/internal/store"
	"github.com/abhisek/mentalmath/internal/ui/layout"
	"github.com/abhisek/mentalmath/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []profile.SessionRecord
	Err      error
}

// HistoryScreen lists recent sessions, newest first.
type HistoryScreen struct {
	repo     store.ProfileRepo
	name     string
	sessions []profile.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. With a nil repo the fallback records are
// shown as-is.
func New(repo store.ProfileRepo, name string, fallback []profile.SessionRecord) *HistoryScreen {
	s := &HistoryScreen{repo: repo, name: name, expanded: make(map[int]bool)}
	if repo == nil {
		s.sessions = newestFirst(fallback)
		s.loaded = true
	}
	return s
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.repo == nil {
		return nil
	}
	repo, name := s.repo, s.name
	return func() tea.Msg {
		sessions, err := repo.Sessions(context.Background(), name, profile.MaxHistory)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = newestFirst(msg.Sessions)
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.PopCmd
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return centered.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return centered.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return centered.Foreground(theme.TextDim).Italic(true).Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, rec := range s.sessions {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s  %2d problems  %3.0f%% accuracy  +%d XP",
			prefix, rec.Date, rec.ProblemsSolved, rec.Accuracy, rec.XPEarned)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %d correct, %.1fs per problem", rec.Correct, rec.AvgSpeed)
			if rec.StruggledSkill != "" {
				detail += ", struggled with " + skillName(rec.StruggledSkill)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Dim.Render(detail)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func newestFirst(recs []profile.SessionRecord) []profile.SessionRecord {
	out := make([]profile.SessionRecord, len(recs))
	for i, r := range recs {
		out[len(recs)-1-i] = r
	}
	return out
}

func skillName(key string) string {
	if sk, err := skillgraph.GetSkill(key); err == nil {
		return sk.Name
	}
	return key
}
