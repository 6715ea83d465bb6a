// Package session drives adaptive practice: it picks the next problem for a
// learner, grades answers and summarizes the session.
package session

import (
	"log/slog"
	"time"

	"github.com/abhisek/mentalmath/internal/hints"
	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/persona"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/profile"
)

// WeakProficiency is the score below which a skill is drilled preferentially.
const WeakProficiency = 80

// ReviewChance is the probability of picking from every eligible skill
// even when weak skills exist.
const ReviewChance = 0.2

// FastSeconds is the answer time under which a correct answer earns the
// larger proficiency gain.
const FastSeconds = 5

// Proficiency deltas reported per graded answer.
const (
	DeltaFast  = 5
	DeltaSlow  = 2
	DeltaWrong = -5
)

// LearnerState is the read-only learner snapshot an engine works from.
type LearnerState struct {
	Level       int
	Proficiency map[string]int
	PlanSkills  []string
}

// StateFromProfile snapshots a profile for a new session.
func StateFromProfile(p *profile.LearnerProfile) LearnerState {
	prof := make(map[string]int, len(p.SkillProficiency))
	for k, v := range p.SkillProficiency {
		prof[k] = v
	}
	return LearnerState{Level: p.Level, Proficiency: prof, PlanSkills: p.PlanSkills()}
}

// Deps are the collaborators of an Engine. Generator and Hints are
// required; nil Coach, Source and Logger get defaults.
type Deps struct {
	Generator *problemgen.Generator
	Hints     *hints.Library
	Coach     *persona.Coach
	Source    mathrand.Source
	Logger    *slog.Logger
	Now       func() time.Time

	// WordProblems wraps lesson problems in story templates.
	WordProblems bool
}

// Attempt is one graded answer.
type Attempt struct {
	ProblemID string
	SkillKey  string
	Correct   bool
	TimeTaken float64 // seconds
	At        time.Time
}

// Result is the outcome of grading one answer.
type Result struct {
	Correct       bool
	Streak        int
	CorrectAnswer problemgen.Answer
	Feedback      string

	// Hint is set only for wrong answers.
	Hint *hints.Hint

	ProficiencyDelta int
	SkillKey         string
	XP               int
}
