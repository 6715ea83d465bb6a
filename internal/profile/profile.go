// Package profile holds the persisted learner profile and the rules for
// folding session results into it.
package profile

import (
	"time"

	"github.com/abhisek/mentalmath/internal/placement"
	"github.com/abhisek/mentalmath/internal/xp"
)

const (
	// DefaultName is the profile used when none is chosen.
	DefaultName = "Player"

	// MaxProficiency bounds every per-skill proficiency score.
	MaxProficiency = 100

	// MaxHistory is the number of session records kept.
	MaxHistory = 30
)

// dateLayout is the calendar-day key used for streaks and records.
const dateLayout = "2006-01-02"

// SessionRecord is one finished practice session.
type SessionRecord struct {
	Date           string // YYYY-MM-DD
	ProblemsSolved int
	Correct        int
	Accuracy       float64 // 0..100
	AvgSpeed       float64 // seconds per problem
	XPEarned       int
	StruggledSkill string
}

// LearnerProfile is everything the app remembers about a learner.
type LearnerProfile struct {
	Name                   string
	Level                  int
	XP                     int
	SkillProficiency       map[string]int
	ActivePlan             *TrainingPlan
	AutoPilot              bool
	VisualHints            bool
	HasCompletedDiagnostic bool

	Streak           int
	LongestStreak    int
	LastPracticeDate string // YYYY-MM-DD, empty before the first session

	History []SessionRecord
}

// New returns a fresh level-1 profile.
func New(name string) *LearnerProfile {
	if name == "" {
		name = DefaultName
	}
	return &LearnerProfile{
		Name:             name,
		Level:            1,
		SkillProficiency: make(map[string]int),
	}
}

// Proficiency returns the learner's score for a skill; unseen skills are 0.
func (p *LearnerProfile) Proficiency(key string) int {
	return p.SkillProficiency[key]
}

// Apply adds delta to a skill's proficiency, clamped to [0, 100], and
// returns the new score.
func (p *LearnerProfile) Apply(key string, delta int) int {
	if p.SkillProficiency == nil {
		p.SkillProficiency = make(map[string]int)
	}
	v := min(MaxProficiency, max(0, p.SkillProficiency[key]+delta))
	p.SkillProficiency[key] = v
	return v
}

// AddXP adds earned XP and resyncs the level from the total. It reports
// whether the level went up.
func (p *LearnerProfile) AddXP(n int) bool {
	if n <= 0 {
		return false
	}
	before := p.Level
	p.XP += n
	p.Level = xp.LevelFor(p.XP)
	return p.Level > before
}

// RecordSession appends a record, keeping the most recent MaxHistory.
func (p *LearnerProfile) RecordSession(r SessionRecord) {
	p.History = append(p.History, r)
	if len(p.History) > MaxHistory {
		p.History = append([]SessionRecord(nil), p.History[len(p.History)-MaxHistory:]...)
	}
}

// TouchStreak marks now's calendar day as practiced. The same day is a
// no-op, the day after the last practice extends the streak, and any gap
// restarts it at 1.
func (p *LearnerProfile) TouchStreak(now time.Time) {
	today := now.Format(dateLayout)
	if p.LastPracticeDate == today {
		return
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if p.LastPracticeDate != "" && p.LastPracticeDate == yesterday {
		p.Streak++
	} else {
		p.Streak = 1
	}
	p.LongestStreak = max(p.LongestStreak, p.Streak)
	p.LastPracticeDate = today
}

// ApplyPlacement sets the level from a placement report and seeds the
// proficiency map from any per-skill estimates. XP is raised to the start
// of the placed level so later awards keep it; a learner already past
// that level keeps their XP and level.
func (p *LearnerProfile) ApplyPlacement(r placement.Report) {
	if r.RecommendedLevel > 0 {
		p.XP = max(p.XP, xp.LevelFloor(r.RecommendedLevel))
		p.Level = xp.LevelFor(p.XP)
	}
	if p.SkillProficiency == nil {
		p.SkillProficiency = make(map[string]int)
	}
	for key, v := range r.SkillProficiency {
		p.SkillProficiency[key] = min(MaxProficiency, max(0, v))
	}
	p.HasCompletedDiagnostic = true
}

// Date formats t as a session record date.
func Date(t time.Time) string { return t.Format(dateLayout) }
