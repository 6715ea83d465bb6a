package placement

import (
	"fmt"

	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// StageContinueAccuracy is the stage accuracy, in percent, needed to move
// on to the next stage.
const StageContinueAccuracy = 66.0

// StagedResult is one answered staged problem.
type StagedResult struct {
	SkillKey string
	Correct  bool
	Seconds  float64
}

// StagedSubmit is the outcome of one staged answer.
type StagedSubmit struct {
	Correct       bool
	CorrectAnswer problemgen.Answer
	Stage         int
	StageDone     bool
	Complete      bool
}

// Staged is the quick placement: stages of three registry skills, stopping
// after a weak stage or the last one. It is not safe for concurrent use.
type Staged struct {
	gen  *problemgen.Generator
	opts options

	stage   int
	batch   []*problemgen.Problem
	pos     int
	results []StagedResult
	done    bool
}

// NewStaged returns a staged placement at stage 1.
func NewStaged(gen *problemgen.Generator, opts ...Option) *Staged {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Staged{gen: gen, opts: o}
}

// Stage returns the current 1-based stage, or 0 before the first problem.
func (s *Staged) Stage() int { return s.stage }

// Complete reports whether the placement has stopped.
func (s *Staged) Complete() bool { return s.done }

// Results returns a copy of the answers so far.
func (s *Staged) Results() []StagedResult {
	return append([]StagedResult(nil), s.results...)
}

// Next returns the current problem, generating the next stage's batch
// when needed, or nil once complete.
func (s *Staged) Next() (*problemgen.Problem, error) {
	if s.done {
		return nil, nil
	}
	if s.batch == nil {
		if err := s.loadStage(s.stage + 1); err != nil {
			return nil, err
		}
	}
	return s.batch[s.pos], nil
}

func (s *Staged) loadStage(stage int) error {
	keys := skillgraph.StageSkills(stage)
	batch := make([]*problemgen.Problem, 0, len(keys))
	for i, key := range keys {
		skill, err := skillgraph.GetSkill(key)
		if err != nil {
			return fmt.Errorf("placement stage %d: %w", stage, err)
		}
		p, err := s.gen.Generate(skill.Type, 1, skill.Range)
		if err != nil {
			return fmt.Errorf("placement stage %d skill %s: %w", stage, key, err)
		}
		batch = append(batch, p.WithSkill(key).WithProgress(fmt.Sprintf("%d/%d", i+1, len(keys))))
	}
	s.stage = stage
	s.batch = batch
	s.pos = 0
	return nil
}

// Submit grades the current problem. Answers compare like practice
// answers (numeric value, or exact fraction text).
func (s *Staged) Submit(p *problemgen.Problem, raw string, seconds float64) (StagedSubmit, error) {
	if s.done {
		return StagedSubmit{}, ErrComplete
	}
	if s.batch == nil {
		return StagedSubmit{}, fmt.Errorf("placement: submit before next")
	}

	correct := problemgen.CheckAnswer(raw, p)
	s.results = append(s.results, StagedResult{SkillKey: p.SkillKey, Correct: correct, Seconds: seconds})
	s.pos++

	res := StagedSubmit{Correct: correct, CorrectAnswer: p.Answer, Stage: s.stage}
	if s.pos < len(s.batch) {
		return res, nil
	}

	res.StageDone = true
	stageResults := s.results[len(s.results)-len(s.batch):]
	right := 0
	for _, r := range stageResults {
		if r.Correct {
			right++
		}
	}
	accuracy := float64(right) / float64(len(stageResults)) * 100
	if accuracy < StageContinueAccuracy || s.stage >= skillgraph.StageCount() {
		s.done = true
		res.Complete = true
		r := s.Report()
		s.opts.logger.Info("placement complete",
			"kind", "staged",
			"stage", s.stage,
			"level", r.RecommendedLevel,
			"accuracy", r.OverallAccuracy)
	}
	s.batch = nil
	return res, nil
}

// Report scores the answers so far. Proficiency per skill is the mean of
// the per-answer estimates for that skill.
func (s *Staged) Report() Report {
	t := newTally()
	sums := make(map[string]int)
	for _, r := range s.results {
		t.add(r.SkillKey, r.Correct, r.Seconds)
		sums[r.SkillKey] += s.opts.proficiency(r.Correct, r.Seconds)
	}
	rep := t.report(s.opts.scoring)
	rep.SkillProficiency = make(map[string]int, len(sums))
	for key, sum := range sums {
		rep.SkillProficiency[key] = sum / rep.Stats[key].Total
	}
	return rep
}
