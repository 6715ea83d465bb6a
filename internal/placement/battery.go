// Package placement runs the assessments that set a new learner's level:
// a fixed calibration battery and a shorter staged placement that stops
// early when a stage goes badly.
package placement

import (
	"fmt"

	"github.com/abhisek/mentalmath/internal/diagnosis"
	"github.com/abhisek/mentalmath/internal/lessons"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// Item is one calibration problem of the battery.
type Item struct {
	ID       string
	Type     skillgraph.SkillType
	Level    int
	Range    skillgraph.Range
	SkillKey string
}

// battery is the same for every learner.
var battery = []Item{
	{ID: "d1", Type: skillgraph.TypeAddition, Level: 1, Range: skillgraph.Range{Min: 1, Max: 10}, SkillKey: "addition_basic"},
	{ID: "d2", Type: skillgraph.TypeAddition, Level: 1, Range: skillgraph.Range{Min: 5, Max: 15}, SkillKey: "addition_basic"},
	{ID: "d3", Type: skillgraph.TypeAddition, Level: 2, Range: skillgraph.Range{Min: 15, Max: 25}, SkillKey: "addition_carrying"},
	{ID: "d4", Type: skillgraph.TypeSubtraction, Level: 1, Range: skillgraph.Range{Min: 1, Max: 10}, SkillKey: "subtraction_basic"},
	{ID: "d5", Type: skillgraph.TypeSubtraction, Level: 2, Range: skillgraph.Range{Min: 20, Max: 30}, SkillKey: "subtraction_borrowing"},
	{ID: "d6", Type: skillgraph.TypeMultiplication, Level: 2, Range: skillgraph.Range{Min: 2, Max: 9}, SkillKey: "multiplication_basic"},
	{ID: "d7", Type: skillgraph.TypeMultiplication, Level: 2, Range: skillgraph.Range{Min: 3, Max: 12}, SkillKey: "multiplication_basic"},
}

// Battery returns a copy of the calibration battery.
func Battery() []Item {
	return append([]Item(nil), battery...)
}

// Engine walks the fixed battery. It is not safe for concurrent use.
type Engine struct {
	gen   *problemgen.Generator
	opts  options
	index int
	tally *tally
}

// NewEngine returns an engine at the first battery item.
func NewEngine(gen *problemgen.Generator, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{gen: gen, opts: o, tally: newTally()}
}

// Len returns the battery length.
func (e *Engine) Len() int { return len(battery) }

// Complete reports whether every item has been answered.
func (e *Engine) Complete() bool { return e.index >= len(battery) }

// Next returns the current item's problem tagged with its skill and an
// "i/total" progress label, or nil once the battery is exhausted.
func (e *Engine) Next() (*problemgen.Problem, error) {
	if e.Complete() {
		return nil, nil
	}
	item := battery[e.index]
	p, err := e.gen.Generate(item.Type, item.Level, item.Range)
	if err != nil {
		return nil, fmt.Errorf("placement item %s: %w", item.ID, err)
	}
	return p.WithSkill(item.SkillKey).WithProgress(fmt.Sprintf("%d/%d", e.index+1, len(battery))), nil
}

// Submit grades an answer as a whole number, records it against the
// problem's skill and advances. Malformed input is simply wrong.
func (e *Engine) Submit(p *problemgen.Problem, raw string, seconds float64) (SubmitResult, error) {
	if e.Complete() {
		return SubmitResult{}, ErrComplete
	}
	skill := p.SkillKey
	if skill == "" {
		skill = battery[e.index].SkillKey
	}

	n, ok := problemgen.ParseInteger(raw)
	correct := ok && p.Answer.Numeric && float64(n) == p.Answer.Value

	e.tally.add(skill, correct, seconds)
	e.index++

	res := SubmitResult{Correct: correct, CorrectAnswer: p.Answer, Complete: e.Complete()}
	if !correct {
		res.ErrorKind = diagnosis.Classify(p, raw)
		guide := lessons.NewGuide(p, res.ErrorKind)
		res.Guide = &guide
	}
	if res.Complete {
		r := e.Report()
		e.opts.logger.Info("placement complete",
			"kind", "battery",
			"level", r.RecommendedLevel,
			"accuracy", r.OverallAccuracy,
			"weaknesses", len(r.Weaknesses))
	}
	return res, nil
}

// Report aggregates the answers so far.
func (e *Engine) Report() Report {
	return e.tally.report(e.opts.scoring)
}
