package placement

// ScoringPolicy maps overall accuracy in [0, 1] to a recommended level.
type ScoringPolicy func(accuracy float64) int

// FiveTier is the default placement scale: 90% places at level 7, 75% at
// 5, 60% at 3, 40% at 2, anything lower at 1. Bounds are inclusive.
func FiveTier(accuracy float64) int {
	pct := accuracy * 100
	switch {
	case pct >= 90:
		return 7
	case pct >= 75:
		return 5
	case pct >= 60:
		return 3
	case pct >= 40:
		return 2
	default:
		return 1
	}
}

// TwoTier is the coarse scale: above 90% places at level 5, above 70% at 2,
// anything else at 1. Bounds are exclusive.
func TwoTier(accuracy float64) int {
	switch {
	case accuracy > 0.9:
		return 5
	case accuracy > 0.7:
		return 2
	default:
		return 1
	}
}

// PolicyByName returns the scoring policy for a config name. Unknown names
// get FiveTier.
func PolicyByName(name string) ScoringPolicy {
	if name == "two-tier" {
		return TwoTier
	}
	return FiveTier
}

// ProficiencyPolicy estimates a 0..100 proficiency from one answer.
type ProficiencyPolicy func(correct bool, seconds float64) int

// SpeedProficiency rates correct answers by speed: under 5s is 80, under
// 10s is 60, slower is 40. Wrong answers are 20.
func SpeedProficiency(correct bool, seconds float64) int {
	switch {
	case !correct:
		return 20
	case seconds < 5:
		return 80
	case seconds < 10:
		return 60
	default:
		return 40
	}
}
