// Package xp computes experience rewards and the level curve.
package xp

import "math"

const (
	// BaseXP is the reward for a correct answer at difficulty 1.
	BaseXP = 10
	// LevelConstant scales the quadratic level curve.
	LevelConstant = 100
	// MaxStreakBonus caps the streak multiplier input.
	MaxStreakBonus = 1000
)

// ForAnswer returns the XP for one answer. Wrong answers earn nothing;
// fast answers and running streaks multiply the base reward.
func ForAnswer(correct bool, seconds float64, difficulty, streak int) int {
	if !correct {
		return 0
	}
	xp := float64(BaseXP * difficulty)

	switch {
	case seconds < 1.5:
		xp *= 2.0
	case seconds < 2:
		xp *= 1.5
	case seconds < 5:
		xp *= 1.2
	}

	xp *= 1 + float64(min(max(streak, 0), MaxStreakBonus))*0.1
	return int(math.Round(xp))
}

// LevelFor returns the level reached with total XP: level n starts at
// (n-1)² × LevelConstant.
func LevelFor(total int) int {
	if total < 0 {
		total = 0
	}
	return int(math.Floor(math.Sqrt(float64(total)/LevelConstant))) + 1
}

// LevelFloor returns the XP at which level starts.
func LevelFloor(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * LevelConstant
}

// LevelProgress describes progress through the current level.
type LevelProgress struct {
	Level   int
	Current int // XP earned within the level
	Needed  int // XP span of the level
	Percent float64
}

// Progress returns the level and progress for total XP.
func Progress(total int) LevelProgress {
	if total < 0 {
		total = 0
	}
	level := LevelFor(total)
	start, next := LevelFloor(level), LevelFloor(level+1)
	current, needed := total-start, next-start
	return LevelProgress{
		Level:   level,
		Current: current,
		Needed:  needed,
		Percent: float64(current) / float64(needed) * 100,
	}
}

// NextStreakMilestone returns the next streak milestone above the current
// streak length.
func NextStreakMilestone(current int) int {
	for _, t := range []int{5, 10, 15, 20} {
		if t > current {
			return t
		}
	}
	// Beyond 20, every 10.
	return (current/10 + 1) * 10
}

// IsStreakMilestone reports whether streak just hit a milestone.
func IsStreakMilestone(streak int) bool {
	return streak > 0 && NextStreakMilestone(streak-1) == streak
}
