package session

import (
	"time"

	"github.com/abhisek/mentalmath/internal/profile"
)

// StruggleMinAttempts is the number of attempts a skill needs before it
// can be reported as the struggled skill.
const StruggleMinAttempts = 3

// SkillResult tracks per-skill performance within a session.
type SkillResult struct {
	SkillKey  string
	Attempted int
	Correct   int
}

// Accuracy returns the percentage of correct answers.
func (r SkillResult) Accuracy() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempted) * 100
}

// Summary is the end-of-session report.
type Summary struct {
	TotalProblems   int
	CorrectProblems int
	Accuracy        float64 // 0..100
	AvgSpeed        float64 // seconds per problem

	// StruggledSkill is the weakest skill with at least three attempts;
	// empty when none qualifies.
	StruggledSkill string
	LowestAccuracy float64

	XPEarned     int
	SkillResults []SkillResult
}

// Summary reports the session so far. XP is a completion bonus of 10 per
// correct answer plus 5 per level.
func (e *Engine) Summary() Summary {
	s := Summary{TotalProblems: len(e.attempts), LowestAccuracy: 100}

	var totalTime float64
	index := make(map[string]int)
	for _, a := range e.attempts {
		totalTime += a.TimeTaken
		if a.Correct {
			s.CorrectProblems++
		}
		i, ok := index[a.SkillKey]
		if !ok {
			i = len(s.SkillResults)
			index[a.SkillKey] = i
			s.SkillResults = append(s.SkillResults, SkillResult{SkillKey: a.SkillKey})
		}
		s.SkillResults[i].Attempted++
		if a.Correct {
			s.SkillResults[i].Correct++
		}
	}
	if s.TotalProblems > 0 {
		s.Accuracy = float64(s.CorrectProblems) / float64(s.TotalProblems) * 100
		s.AvgSpeed = totalTime / float64(s.TotalProblems)
	}

	for _, r := range s.SkillResults {
		if r.Attempted < StruggleMinAttempts {
			continue
		}
		if acc := r.Accuracy(); acc < s.LowestAccuracy {
			s.LowestAccuracy = acc
			s.StruggledSkill = r.SkillKey
		}
	}

	s.XPEarned = 10*s.CorrectProblems + 5*e.state.Level
	return s
}

// Record converts the summary into a profile session record dated t.
func (s Summary) Record(t time.Time) profile.SessionRecord {
	return profile.SessionRecord{
		Date:           profile.Date(t),
		ProblemsSolved: s.TotalProblems,
		Correct:        s.CorrectProblems,
		Accuracy:       s.Accuracy,
		AvgSpeed:       s.AvgSpeed,
		XPEarned:       s.XPEarned,
		StruggledSkill: s.StruggledSkill,
	}
}
