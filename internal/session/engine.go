package session

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/abhisek/mentalmath/internal/diagnosis"
	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/persona"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/skillgraph"
	"github.com/abhisek/mentalmath/internal/xp"
)


// Engine is one learner's practice session. It is owned by a single
// goroutine.
type Engine struct {
	state  LearnerState
	deps   Deps
	src    mathrand.Source
	coach  *persona.Coach
	logger *slog.Logger
	now    func() time.Time

	streak   int
	attempts []Attempt
}

// NewEngine starts a session for the given learner.
func NewEngine(state LearnerState, deps Deps) *Engine {
	if state.Level < 1 {
		state.Level = 1
	}
	e := &Engine{state: state, deps: deps, src: deps.Source, coach: deps.Coach, logger: deps.Logger, now: deps.Now}
	if e.src == nil {
		e.src = deps.Generator.Source()
	}
	if e.coach == nil {
		e.coach = persona.New(e.src)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Level returns the session's learner level.
func (e *Engine) Level() int { return e.state.Level }

// Streak returns the current run of correct answers.
func (e *Engine) Streak() int { return e.streak }

// Attempts returns a copy of the graded attempts in order.
func (e *Engine) Attempts() []Attempt {
	return slices.Clone(e.attempts)
}

// Candidates returns the skills NextProblem chooses from: the level's
// eligible skills, narrowed to the training plan when they overlap.
func (e *Engine) Candidates() []string {
	eligible := skillgraph.EligibleSkills(e.state.Level)
	var planned []string
	for _, key := range eligible {
		if slices.Contains(e.state.PlanSkills, key) {
			planned = append(planned, key)
		}
	}
	if len(planned) > 0 {
		return planned
	}
	return eligible
}

// NextProblem picks a skill, favoring weak ones, and generates a problem
// for it tagged with the skill key.
func (e *Engine) NextProblem() (*problemgen.Problem, error) {
	key := e.pickSkill(e.Candidates())
	skill, err := skillgraph.GetSkill(key)
	if err != nil {
		return nil, err
	}
	return e.generate(skill)
}

func (e *Engine) pickSkill(candidates []string) string {
	var weak []string
	for _, key := range candidates {
		if e.state.Proficiency[key] < WeakProficiency {
			weak = append(weak, key)
		}
	}
	if len(weak) > 0 && e.src.Float64() > ReviewChance {
		return mathrand.Pick(e.src, weak)
	}
	return mathrand.Pick(e.src, candidates)
}

// SkillRange returns the operand range a skill is drilled at for this
// learner. "double" skills grow with level.
func (e *Engine) SkillRange(skill skillgraph.MicroSkill) skillgraph.Range {
	r := skill.Range
	if skill.ScalesWithLevel() {
		r.Max = min(100, 20+e.state.Level*30)
	}
	return r
}

func (e *Engine) generate(skill skillgraph.MicroSkill) (*problemgen.Problem, error) {
	p, err := e.deps.Generator.Generate(skill.Type, e.state.Level, e.SkillRange(skill))
	if err != nil {
		return nil, fmt.Errorf("skill %s: %w", skill.Key, err)
	}
	return p.WithSkill(skill.Key), nil
}

// LessonProblem generates a problem for an explicitly chosen skill,
// optionally as a word problem. Unknown keys drill addition_basic.
func (e *Engine) LessonProblem(key string, asWord bool) (*problemgen.Problem, error) {
	skill, err := skillgraph.GetSkill(key)
	if err != nil {
		fallback, ok := skillgraph.FallbackFor(skillgraph.TypeAddition)
		if !ok {
			return nil, err
		}
		e.logger.Warn("unknown lesson skill, using fallback", "skill", key, "fallback", fallback.Key)
		skill = fallback
	}
	p, err := e.generate(skill)
	if err != nil {
		return nil, err
	}
	if asWord || e.deps.WordProblems {
		p = problemgen.ToWordProblem(p, e.src)
	}
	return p, nil
}

// FollowUp builds a problem that gives the learner another go at the
// mistake diagnosed as k on p. It keeps p's skill key so grading credits
// the same skill.
func (e *Engine) FollowUp(p *problemgen.Problem, k diagnosis.Kind) (*problemgen.Problem, error) {
	next, err := diagnosis.GenerateFromError(e.deps.Generator, p, k)
	if err != nil {
		return nil, fmt.Errorf("follow-up for %s: %w", k, err)
	}
	return next, nil
}

// Grade checks an answer, updates the streak, records the attempt and
// returns feedback. Wrong answers carry a strategy hint.
func (e *Engine) Grade(p *problemgen.Problem, raw string, seconds float64) Result {
	correct := problemgen.CheckAnswer(raw, p)
	if correct {
		e.streak++
	} else {
		e.streak = 0
	}
	e.attempts = append(e.attempts, Attempt{
		ProblemID: p.ID,
		SkillKey:  p.SkillKey,
		Correct:   correct,
		TimeTaken: seconds,
		At:        e.now(),
	})

	res := Result{
		Correct:          correct,
		Streak:           e.streak,
		CorrectAnswer:    p.Answer,
		Feedback:         e.coach.Feedback(correct, seconds, !correct && isClose(p.Answer, raw)),
		ProficiencyDelta: proficiencyDelta(correct, seconds),
		SkillKey:         p.SkillKey,
		XP:               xp.ForAnswer(correct, seconds, e.state.Level, e.streak),
	}
	if !correct {
		h := e.deps.Hints.Hint(p)
		res.Hint = &h
	}
	return res
}

func proficiencyDelta(correct bool, seconds float64) int {
	switch {
	case !correct:
		return DeltaWrong
	case seconds < FastSeconds:
		return DeltaFast
	default:
		return DeltaSlow
	}
}

// isClose reports whether a numeric answer missed by at most 2 or by less
// than 10% of the correct value.
func isClose(want problemgen.Answer, raw string) bool {
	if !want.Numeric {
		return false
	}
	got, ok := problemgen.ParseNumber(raw)
	if !ok {
		return false
	}
	diff := math.Abs(got - want.Value)
	if diff <= 2 {
		return true
	}
	return want.Value != 0 && diff/math.Abs(want.Value) < 0.1
}
