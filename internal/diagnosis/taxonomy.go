package diagnosis

import "github.com/abhisek/mentalmath/internal/problemgen"

// entry describes one error kind for learners.
type entry struct {
	Label    string
	Strategy string
	Target   problemgen.Target
}

var taxonomy = map[Kind]entry{
	KindCarrying: {
		Label:    "Carrying slip",
		Strategy: "When a column adds up to 10 or more, carry the 1 into the next column.",
		Target:   problemgen.TargetCarry,
	},
	KindBorrowing: {
		Label:    "Borrowing slip",
		Strategy: "If the top digit is smaller than the bottom digit, borrow from the column on the left.",
		Target:   problemgen.TargetBorrow,
	},
	KindSign: {
		Label:    "Sign slip",
		Strategy: "Watch the signs! Two negatives make a positive when you multiply or divide.",
	},
	KindOffByOne: {
		Label:    "Off by one",
		Strategy: "So close! Recheck your counting and the basic fact.",
	},
	KindCalculation: {
		Label:    "Calculation error",
		Strategy: "Slow down and break the problem into smaller, friendlier steps.",
	},
	KindUnknown: {
		Label:    "Unreadable answer",
		Strategy: "Type your answer as a number, like 42 or 3.5, or a fraction like 3/4.",
	},
}

// Describe returns a short display name for a kind.
func Describe(k Kind) string {
	if e, ok := taxonomy[k]; ok {
		return e.Label
	}
	return string(k)
}

// Strategy returns the remediation tip for a kind. Unrecognized kinds get
// the generic calculation tip.
func Strategy(k Kind) string {
	if e, ok := taxonomy[k]; ok {
		return e.Strategy
	}
	return taxonomy[KindCalculation].Strategy
}

// GenerateFromError builds a follow-up problem that recreates the error
// opportunity behind kind: a forced carry after a carrying error, a forced
// borrow after a borrowing error, otherwise a similar problem of the same
// operation.
func GenerateFromError(g *problemgen.Generator, p *problemgen.Problem, k Kind) (*problemgen.Problem, error) {
	target := problemgen.TargetSimilar
	if e, ok := taxonomy[k]; ok {
		target = e.Target
	}
	next, err := g.GenerateTargeted(p, target)
	if err != nil {
		return nil, err
	}
	return next.WithSkill(p.SkillKey), nil
}
