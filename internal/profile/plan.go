package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// Weekly goal defaults for new plans.
const (
	DefaultTargetXP       = 500
	DefaultTargetAccuracy = 80
)

// ErrEmptyPlan is returned for a plan without target skills.
var ErrEmptyPlan = errors.New("training plan has no target skills")

// WeeklyGoal is what a plan aims for each week.
type WeeklyGoal struct {
	TargetXP       int
	TargetAccuracy int // 0..100
	TargetProblems int
}

// TrainingPlan narrows practice to a set of skills.
type TrainingPlan struct {
	Name         string
	TargetSkills []string
	Goal         WeeklyGoal
	StartDate    string // YYYY-MM-DD
}

// NewPlan builds a plan over registry skills. Unknown keys are rejected.
// An empty name is derived from the first skill.
func NewPlan(name string, skills []string, start time.Time) (*TrainingPlan, error) {
	if len(skills) == 0 {
		return nil, ErrEmptyPlan
	}
	seen := make(map[string]bool, len(skills))
	var keys []string
	for _, key := range skills {
		if _, err := skillgraph.GetSkill(key); err != nil {
			return nil, fmt.Errorf("training plan: %w", err)
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if strings.TrimSpace(name) == "" {
		name = skillgraph.MustSkill(keys[0]).Name + " focus"
	}
	return &TrainingPlan{
		Name:         strings.TrimSpace(name),
		TargetSkills: keys,
		Goal:         WeeklyGoal{TargetXP: DefaultTargetXP, TargetAccuracy: DefaultTargetAccuracy},
		StartDate:    Date(start),
	}, nil
}

// StrandPlan builds a plan over every skill of a strand.
func StrandPlan(strand skillgraph.Strand, start time.Time) (*TrainingPlan, error) {
	var keys []string
	for _, s := range skillgraph.ByStrand(strand) {
		keys = append(keys, s.Key)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("training plan: unknown strand %q", strand)
	}
	return NewPlan(skillgraph.StrandDisplayName(strand), keys, start)
}

// SetPlan activates a plan.
func (p *LearnerProfile) SetPlan(plan *TrainingPlan) { p.ActivePlan = plan }

// ClearPlan deactivates the current plan.
func (p *LearnerProfile) ClearPlan() { p.ActivePlan = nil }

// PlanSkills returns the active plan's target skills, or nil.
func (p *LearnerProfile) PlanSkills() []string {
	if p.ActivePlan == nil {
		return nil
	}
	return append([]string(nil), p.ActivePlan.TargetSkills...)
}
