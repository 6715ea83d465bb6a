package lessons

import (
	"testing"

	"github.com/abhisek/mentalmath/internal/diagnosis"
	"github.com/abhisek/mentalmath/internal/problemgen"
)

func TestTutor_BreakdownOnSecondMiss(t *testing.T) {
	tutor := NewTutor()
	p := binary(47, problemgen.OpAdd, 36, 83)
	tutor.Reset(p)

	if out := tutor.HandleAttempt(p, false); out.ShowBreakdown || len(out.Steps) != 0 {
		t.Fatalf("first miss: got %+v, want no breakdown", out)
	}
	out := tutor.HandleAttempt(p, false)
	if !out.ShowBreakdown {
		t.Fatal("second miss: want breakdown")
	}
	if len(out.Steps) != 3 {
		t.Errorf("got %d steps, want 3", len(out.Steps))
	}
}

func TestTutor_ResetBetweenProblemsPreventsBreakdown(t *testing.T) {
	tutor := NewTutor()
	p1 := binary(47, problemgen.OpAdd, 36, 83)
	p2 := binary(12, problemgen.OpAdd, 9, 21)

	tutor.Reset(p1)
	tutor.HandleAttempt(p1, false)
	tutor.Reset(p2)
	if out := tutor.HandleAttempt(p2, false); out.ShowBreakdown {
		t.Error("breakdown carried over to a new problem")
	}
	if tutor.WrongAttempts() != 1 {
		t.Errorf("wrong attempts = %d, want 1", tutor.WrongAttempts())
	}
}

func TestTutor_IgnoresAttemptsOnOtherProblems(t *testing.T) {
	tutor := NewTutor()
	p1 := binary(47, problemgen.OpAdd, 36, 83)
	p2 := binary(12, problemgen.OpAdd, 9, 21)

	tutor.Reset(p1)
	tutor.HandleAttempt(p2, false)
	tutor.HandleAttempt(p2, false)
	if tutor.WrongAttempts() != 0 {
		t.Errorf("wrong attempts = %d, want 0", tutor.WrongAttempts())
	}
}

func TestTutor_SameNumbersShareIdentity(t *testing.T) {
	tutor := NewTutor()
	p := binary(47, problemgen.OpAdd, 36, 83)
	p.ID = "first"
	retry := binary(47, problemgen.OpAdd, 36, 83)
	retry.ID = "second"

	tutor.Reset(p)
	tutor.HandleAttempt(p, false)
	if out := tutor.HandleAttempt(retry, false); !out.ShowBreakdown {
		t.Error("same numbers with a new ID should count toward the breakdown")
	}
}

func TestTutor_CorrectNeverBreaksDown(t *testing.T) {
	tutor := NewTutor()
	p := binary(7, problemgen.OpMultiply, 8, 56)
	tutor.Reset(p)
	for i := 0; i < 3; i++ {
		if out := tutor.HandleAttempt(p, true); out.ShowBreakdown || out.Steps != nil {
			t.Fatalf("correct attempt %d: got %+v", i, out)
		}
	}
	if tutor.WrongAttempts() != 0 {
		t.Errorf("wrong attempts = %d, want 0", tutor.WrongAttempts())
	}
}

func TestTutor_NoResetNoCount(t *testing.T) {
	tutor := NewTutor()
	p := binary(7, problemgen.OpMultiply, 8, 56)
	tutor.HandleAttempt(p, false)
	if out := tutor.HandleAttempt(p, false); out.ShowBreakdown {
		t.Error("attempts counted without Reset")
	}
}

func TestTutor_BreakdownOnDemand(t *testing.T) {
	p := binary(85, problemgen.OpDivide, 5, 17)
	if got := NewTutor().Breakdown(p); len(got) != 3 {
		t.Errorf("got %d steps, want 3", len(got))
	}
}

func TestNewGuide(t *testing.T) {
	p := binary(15, problemgen.OpAdd, 5, 20)
	g := NewGuide(p, diagnosis.KindCarrying)
	if g.ProblemID != "15-+-5" {
		t.Errorf("ProblemID = %q, want 15-+-5", g.ProblemID)
	}
	if g.ErrorKind != diagnosis.KindCarrying {
		t.Errorf("ErrorKind = %s", g.ErrorKind)
	}
	if g.Strategy != diagnosis.Strategy(diagnosis.KindCarrying) {
		t.Errorf("Strategy = %q", g.Strategy)
	}
	if len(g.Steps) == 0 {
		t.Error("no steps")
	}
}
