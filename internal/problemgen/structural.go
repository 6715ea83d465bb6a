package problemgen

import "github.com/abhisek/mentalmath/internal/skillgraph"

// operatorsByType lists the operators each skill type may render with.
var operatorsByType = map[skillgraph.SkillType][]string{
	skillgraph.TypeAddition:               {OpAdd},
	skillgraph.TypeSubtraction:            {OpSubtract},
	skillgraph.TypeMultiplication:         {OpMultiply},
	skillgraph.TypeDivision:               {OpDivide},
	skillgraph.TypeFractionSimplification: {OpSimplify},
	skillgraph.TypeFractionAddition:       {OpAdd},
	skillgraph.TypePercentage:             {OpPercent},
	skillgraph.TypePowers:                 {OpPower},
	skillgraph.TypeRoots:                  {OpRoot},
}

// StructuralValidator checks that the operands and answer have the shape
// the skill type requires.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	allowed, ok := operatorsByType[p.SkillType]
	if !ok {
		return fail("unknown skill type " + string(p.SkillType))
	}
	if !contains(allowed, p.Operator) {
		return fail("operator " + p.Operator + " not valid for " + string(p.SkillType))
	}

	unary := p.Operator == OpRoot || p.Operator == OpSimplify
	if unary && p.Operand2 != nil {
		return fail("unary operation has a second operand")
	}
	if !unary && p.Operand2 == nil {
		return fail("binary operation is missing its second operand")
	}

	for _, o := range []*Operand{&p.Operand1, p.Operand2} {
		if o != nil && o.Kind == KindFraction && o.Den <= 0 {
			return fail("fraction with non-positive denominator")
		}
	}

	switch p.SkillType {
	case skillgraph.TypeFractionSimplification, skillgraph.TypeFractionAddition:
		if p.Answer.Numeric || p.Answer.Text == "" {
			return fail("fraction problems need a fraction answer")
		}
	default:
		if !p.Answer.Numeric {
			return fail("numeric problems need a numeric answer")
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
