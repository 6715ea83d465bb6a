package problemgen

import (
	"math"

	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// Target names the error opportunity a follow-up problem should recreate.
type Target int

const (
	// TargetSimilar regenerates the same operation at a similar magnitude.
	TargetSimilar Target = iota
	// TargetCarry forces the ones digits of an addition to sum to 10 or more.
	TargetCarry
	// TargetBorrow forces a subtraction whose subtrahend ones digit exceeds
	// the minuend's.
	TargetBorrow
)

// GenerateTargeted builds a follow-up to orig engineered around target.
// Carry and borrow targets only apply to addition and subtraction; any
// other combination regenerates the same type with an inferred range.
func (g *Generator) GenerateTargeted(orig *Problem, target Target) (*Problem, error) {
	lo, hi := similarRange(orig)

	switch {
	case target == TargetCarry && orig.Operator == OpAdd && orig.Operand1.Kind == KindNumber:
		return g.validated(skillgraph.TypeAddition, func() (*Problem, error) {
			p := g.carryProblem(lo, hi)
			p.Level = orig.Level
			return p, nil
		})
	case target == TargetBorrow && orig.Operator == OpSubtract && orig.Operand1.Kind == KindNumber:
		return g.validated(skillgraph.TypeSubtraction, func() (*Problem, error) {
			p := g.borrowProblem(lo, hi)
			p.Level = orig.Level
			return p, nil
		})
	}

	level := int(math.Ceil(math.Log10(float64(hi))))
	if level < 1 {
		level = 1
	}
	return g.Generate(orig.SkillType, level, skillgraph.Range{Min: lo, Max: hi})
}

// similarRange infers operand bounds from the original problem: half to
// one and a half times a numeric first operand, or the decade of its
// digit count otherwise.
func similarRange(p *Problem) (int, int) {
	if p.Operand1.Kind == KindNumber && p.Operand1.IsInteger() {
		n := p.Operand1.Value
		lo, hi := int(math.Floor(n*0.5)), int(math.Ceil(n*1.5))
		if lo < 1 {
			lo = 1
		}
		if hi <= lo {
			hi = lo + 1
		}
		return lo, hi
	}
	digits := len(p.Operand1.String())
	return int(math.Pow(10, float64(digits-1))), int(math.Pow(10, float64(digits)))
}

func (g *Generator) carryProblem(lo, hi int) *Problem {
	a := mathrand.Between(g.src, lo, hi)
	if a%10 == 0 {
		// A zero ones digit can never carry.
		a += g.src.IntN(9) + 1
	}
	ones1 := a % 10
	minOnes2 := 10 - ones1
	base := mathrand.Between(g.src, lo, hi)
	b := (base/10)*10 + minOnes2 + g.src.IntN(9-minOnes2+1)
	return binary(skillgraph.TypeAddition, 0, a, OpAdd, b, a+b)
}

func (g *Generator) borrowProblem(lo, hi int) *Problem {
	if lo < 10 {
		lo = 10
	}
	if hi < lo+9 {
		hi = lo + 9
	}
	a := mathrand.Between(g.src, lo, hi)
	if a%10 == 9 {
		// Nothing exceeds a ones digit of 9.
		a--
	}
	ones1 := a % 10
	tens1 := a / 10
	ones2 := ones1 + 1 + g.src.IntN(9-ones1)
	tens2 := g.src.IntN(tens1)
	b := tens2*10 + ones2
	return binary(skillgraph.TypeSubtraction, 0, a, OpSubtract, b, a-b)
}
