package lessons

import (
	"github.com/abhisek/mentalmath/internal/diagnosis"
	"github.com/abhisek/mentalmath/internal/problemgen"
)

// BreakdownThreshold is the number of wrong attempts on one problem after
// which the full worked solution is shown.
const BreakdownThreshold = 2

// Outcome is the tutor's reaction to an attempt.
type Outcome struct {
	ShowBreakdown bool
	Steps         []Step
}

// Guide bundles a worked solution with the remediation tip for the
// diagnosed error.
type Guide struct {
	ProblemID string
	ErrorKind diagnosis.Kind
	Steps     []Step
	Strategy  string
}

// Tutor counts wrong attempts on the problem currently on screen.
// The count is keyed by problem identity: Reset must be called whenever
// the displayed problem changes, and attempts against any other problem
// are ignored.
type Tutor struct {
	identity string
	wrong    int
}

// NewTutor returns a tutor with no active problem.
func NewTutor() *Tutor { return &Tutor{} }

// Reset starts tracking p with a zero wrong count. Call it for every
// problem shown, including a retry of the same numbers after a skip.
func (t *Tutor) Reset(p *problemgen.Problem) {
	t.identity = p.Identity()
	t.wrong = 0
}

// WrongAttempts returns the wrong count for the active problem.
func (t *Tutor) WrongAttempts() int { return t.wrong }

// HandleAttempt records an attempt on p. The breakdown is returned once the
// wrong count reaches BreakdownThreshold.
func (t *Tutor) HandleAttempt(p *problemgen.Problem, correct bool) Outcome {
	if correct || t.identity == "" || p.Identity() != t.identity {
		return Outcome{}
	}
	t.wrong++
	if t.wrong < BreakdownThreshold {
		return Outcome{}
	}
	return Outcome{ShowBreakdown: true, Steps: Steps(p)}
}

// Breakdown returns the worked solution on demand, regardless of the
// attempt count.
func (t *Tutor) Breakdown(p *problemgen.Problem) []Step { return Steps(p) }

// NewGuide builds the remediation guide for a wrong answer.
func NewGuide(p *problemgen.Problem, kind diagnosis.Kind) Guide {
	return Guide{
		ProblemID: p.Identity(),
		ErrorKind: kind,
		Steps:     Steps(p),
		Strategy:  diagnosis.Strategy(kind),
	}
}
