// Package drill is the practice screen: one problem at a time from the
// adaptive engine, with coach feedback, strategy hints and a worked
// breakdown after repeated misses.
package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mentalmath/internal/diagnosis"
	"github.com/abhisek/mentalmath/internal/lessons"
	"github.com/abhisek/mentalmath/internal/practice"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/router"
	"github.com/abhisek/mentalmath/internal/screens/summary"
	"github.com/abhisek/mentalmath/internal/session"
	"github.com/abhisek/mentalmath/internal/ui/components"
	"github.com/abhisek/mentalmath/internal/ui/layout"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseQuitConfirm
	phaseError
)

// Screen runs one practice session.
type Screen struct {
	env   *practice.Env
	focus string // skill key for a focused lesson drill; empty means adaptive

	engine      *session.Engine
	tutor       *lessons.Tutor
	input       components.AnswerInput
	levelBefore int

	problem  *problemgen.Problem
	shownAt  time.Time
	answered int  // first attempts, counted toward the session length
	retrying bool // current attempt is a retry of the same problem

	last      session.Result
	errorKind diagnosis.Kind
	freshHint bool // the hint is the first one shown for its skill type
	// unsimplified marks a fraction answer equal in value but not reduced.
	unsimplified bool
	outcome   lessons.Outcome
	explain   bool

	phase     phase
	prevPhase phase // restored when the quit prompt is dismissed
	errMsg    string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHintProvider = (*Screen)(nil)

// New creates an adaptive practice screen.
func New(env *practice.Env) *Screen {
	return &Screen{env: env, tutor: lessons.NewTutor(), input: components.NewAnswerInput("your answer", 12)}
}

// NewFocused creates a drill on one skill, phrased as word problems when
// the environment asks for them.
func NewFocused(env *practice.Env, skillKey string) *Screen {
	s := New(env)
	s.focus = skillKey
	return s
}

func (s *Screen) Init() tea.Cmd {
	s.engine = s.env.NewSession()
	s.levelBefore = s.env.Profile.Level
	s.nextProblem()
	return s.input.Init()
}

func (s *Screen) Title() string {
	if s.focus != "" {
		return "Focus Drill"
	}
	return "Practice"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{{Key: "Y", Description: "End session"}, {Key: "N", Description: "Keep going"}}
	case phaseFeedback:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
		if !s.last.Correct {
			hints = append(hints,
				layout.KeyHint{Key: "R", Description: "Retry"},
				layout.KeyHint{Key: "F", Description: "Similar problem"},
				layout.KeyHint{Key: "E", Description: "Explain"},
				layout.KeyHint{Key: "V", Description: "Visual hints"})
		}
		return hints
	case phaseError:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	return []layout.KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Quit"}}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	if s.phase == phaseQuestion {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()
	switch s.phase {
	case phaseError:
		return s, router.PopCmd

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s.finish()
		case "n", "N", "esc":
			s.phase = s.prevPhase
		}
		return s, nil

	case phaseFeedback:
		switch key {
		case "r", "R":
			if !s.last.Correct {
				s.retry()
				return s, nil
			}
		case "f", "F":
			if !s.last.Correct {
				s.followUp()
				return s, nil
			}
		case "e", "E":
			s.explain = true
			return s, nil
		case "v", "V":
			s.env.Profile.VisualHints = !s.env.Profile.VisualHints
			return s, nil
		case "esc":
			s.confirmQuit()
			return s, nil
		}
		if s.answered >= s.env.SessionLength {
			return s.finish()
		}
		s.nextProblem()
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit()
		return s, nil
	case "enter":
		s.submit()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) confirmQuit() {
	s.prevPhase = s.phase
	s.phase = phaseQuitConfirm
}

// CapturesEsc keeps the app from popping the drill on Esc so the quit
// prompt can run first.
func (s *Screen) CapturesEsc() bool { return s.phase != phaseError }

func (s *Screen) nextProblem() {
	var (
		p   *problemgen.Problem
		err error
	)
	if s.focus != "" {
		p, err = s.engine.LessonProblem(s.focus, s.env.WordProblems)
	} else {
		p, err = s.engine.NextProblem()
	}
	if err != nil {
		s.errMsg = err.Error()
		s.phase = phaseError
		return
	}
	s.problem = p
	s.tutor.Reset(p)
	s.retrying = false
	s.showQuestion()
}

func (s *Screen) retry() {
	s.retrying = true
	s.showQuestion()
}

// followUp swaps in a fresh problem built around the diagnosed mistake.
// Like a retry it does not count toward the session length. If no
// follow-up can be built the same problem is retried.
func (s *Screen) followUp() {
	p, err := s.engine.FollowUp(s.problem, s.errorKind)
	if err != nil {
		s.retry()
		return
	}
	s.problem = p
	s.tutor.Reset(p)
	s.retry()
}

func (s *Screen) showQuestion() {
	s.input.Reset()
	s.explain = false
	s.outcome = lessons.Outcome{}
	s.shownAt = s.env.Clock()
	s.phase = phaseQuestion
}

func (s *Screen) submit() {
	raw := s.input.Value()
	if raw == "" {
		return
	}
	seconds := s.env.Clock().Sub(s.shownAt).Seconds()

	s.last = s.engine.Grade(s.problem, raw, seconds)
	s.env.Apply(s.last)
	s.freshHint = s.env.TakeFreshHint()
	s.input.Mark(s.last.Correct)
	s.outcome = s.tutor.HandleAttempt(s.problem, s.last.Correct)
	s.errorKind = ""
	s.unsimplified = false
	if !s.last.Correct {
		s.errorKind = diagnosis.Classify(s.problem, raw)
		s.unsimplified = problemgen.EquivalentFraction(raw, s.problem)
	}
	if !s.retrying {
		s.answered++
	}
	s.phase = phaseFeedback
}

func (s *Screen) finish() (router.Screen, tea.Cmd) {
	if len(s.engine.Attempts()) == 0 {
		return s, router.PopCmd
	}
	out, err := s.env.Finish(context.Background(), s.levelBefore, s.engine.Summary())
	next := summary.New(out, err)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
