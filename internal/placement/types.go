package placement

import (
	"errors"
	"log/slog"

	"github.com/abhisek/mentalmath/internal/diagnosis"
	"github.com/abhisek/mentalmath/internal/lessons"
	"github.com/abhisek/mentalmath/internal/problemgen"
)

// WeaknessThreshold is the per-skill accuracy below which a skill is
// reported as a weakness.
const WeaknessThreshold = 0.6

// ErrComplete is returned when submitting to a finished placement.
var ErrComplete = errors.New("placement already complete")

// SkillStats accumulates results for one skill.
type SkillStats struct {
	Correct   int
	Total     int
	TotalTime float64 // seconds
}

// Accuracy returns Correct/Total, or 0 with no attempts.
func (s SkillStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// SubmitResult is the outcome of one placement answer.
type SubmitResult struct {
	Correct       bool
	CorrectAnswer problemgen.Answer
	Complete      bool

	// ErrorKind and Guide are set only for wrong answers.
	ErrorKind diagnosis.Kind
	Guide     *lessons.Guide
}

// Report is the final placement.
type Report struct {
	RecommendedLevel int
	Weaknesses       []string
	OverallAccuracy  float64 // 0..1
	Stats            map[string]SkillStats

	// SkillProficiency is filled by staged placement only.
	SkillProficiency map[string]int
}

// Option configures a placement engine.
type Option func(*options)

type options struct {
	scoring     ScoringPolicy
	proficiency ProficiencyPolicy
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		scoring:     FiveTier,
		proficiency: SpeedProficiency,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// WithScoring sets the level mapping.
func WithScoring(p ScoringPolicy) Option {
	return func(o *options) {
		if p != nil {
			o.scoring = p
		}
	}
}

// WithProficiency sets the per-answer proficiency estimate used by staged
// placement.
func WithProficiency(p ProficiencyPolicy) Option {
	return func(o *options) {
		if p != nil {
			o.proficiency = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// tally tracks per-skill stats in first-seen order.
type tally struct {
	order []string
	stats map[string]*SkillStats
}

func newTally() *tally { return &tally{stats: make(map[string]*SkillStats)} }

func (t *tally) add(skill string, correct bool, seconds float64) {
	s, ok := t.stats[skill]
	if !ok {
		s = &SkillStats{}
		t.stats[skill] = s
		t.order = append(t.order, skill)
	}
	s.Total++
	s.TotalTime += seconds
	if correct {
		s.Correct++
	}
}

func (t *tally) report(scoring ScoringPolicy) Report {
	r := Report{Stats: make(map[string]SkillStats, len(t.stats))}
	var correct, total int
	for _, key := range t.order {
		s := *t.stats[key]
		r.Stats[key] = s
		correct += s.Correct
		total += s.Total
		if s.Accuracy() < WeaknessThreshold {
			r.Weaknesses = append(r.Weaknesses, key)
		}
	}
	if total > 0 {
		r.OverallAccuracy = float64(correct) / float64(total)
	}
	r.RecommendedLevel = scoring(r.OverallAccuracy)
	return r
}
