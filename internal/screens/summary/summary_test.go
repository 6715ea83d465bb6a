package summary

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mentalmath/internal/practice"
	"github.com/abhisek/mentalmath/internal/session"
)

func testOutcome() practice.Outcome {
	return practice.Outcome{
		Summary: session.Summary{
			TotalProblems:   5,
			CorrectProblems: 3,
			Accuracy:        60,
			AvgSpeed:        4.2,
			StruggledSkill:  "mult_tables_9",
			LowestAccuracy:  33.3,
			XPEarned:        35,
			SkillResults: []session.SkillResult{
				{SkillKey: "add_basic_10", Attempted: 2, Correct: 2},
				{SkillKey: "mult_tables_9", Attempted: 3, Correct: 1},
			},
		},
		LevelUp:   true,
		NewLevel:  2,
		TotalXP:   140,
		DayStreak: 3,
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(testOutcome(), nil)
	view := s.View(100, 30)
	for _, want := range []string{"Session complete!", "Level up!", "Needs work"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_SaveError(t *testing.T) {
	s := New(testOutcome(), errors.New("disk full"))
	if !strings.Contains(s.View(100, 30), "disk full") {
		t.Error("expected the save error in the view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testOutcome(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testOutcome(), nil)
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}
