package problemgen

import (
	"fmt"
	"math"
)

// MathCheckValidator recomputes the answer from the operands and rejects
// problems whose stored answer disagrees.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem) *ValidationError {
	computed, err := Evaluate(p)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	if !answersEqual(computed, p.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but problem claims %q", computed, p.Answer),
			Retryable: true,
		}
	}
	return nil
}

// Evaluate derives the answer of p from its operands and operator alone.
// Like-fraction sums are left unsimplified; simplification reduces by the
// greatest common divisor.
func Evaluate(p *Problem) (Answer, error) {
	a := p.Operand1
	b := p.B()

	switch p.Operator {
	case OpSimplify:
		if a.Kind != KindFraction {
			return Answer{}, fmt.Errorf("simplify needs a fraction operand")
		}
		g := GCD(a.Num, a.Den)
		if g == 0 {
			return Answer{}, fmt.Errorf("zero fraction")
		}
		return TextAnswer(fmt.Sprintf("%d/%d", a.Num/g, a.Den/g)), nil

	case OpAdd:
		if a.Kind == KindFraction || b.Kind == KindFraction {
			if a.Kind != KindFraction || b.Kind != KindFraction || a.Den != b.Den {
				return Answer{}, fmt.Errorf("only like fractions can be added")
			}
			return TextAnswer(fmt.Sprintf("%d/%d", a.Num+b.Num, a.Den)), nil
		}
		return NumberAnswer(clean(a.Value + b.Value)), nil

	case OpSubtract:
		return NumberAnswer(clean(a.Value - b.Value)), nil

	case OpMultiply:
		return NumberAnswer(clean(a.Value * b.Value)), nil

	case OpDivide:
		if b.Value == 0 {
			return Answer{}, fmt.Errorf("division by zero")
		}
		return NumberAnswer(clean(a.Value / b.Value)), nil

	case OpPercent:
		return NumberAnswer(clean(a.Value * b.Value / 100)), nil

	case OpPower:
		return NumberAnswer(clean(math.Pow(a.Value, b.Value))), nil

	case OpRoot:
		if a.Value < 0 {
			return Answer{}, fmt.Errorf("root of negative number")
		}
		return NumberAnswer(clean(math.Sqrt(a.Value))), nil
	}
	return Answer{}, fmt.Errorf("unsupported operator: %s", p.Operator)
}

// clean strips float noise below six decimal places.
func clean(v float64) float64 { return roundTo(v, 6) }

func answersEqual(a, b Answer) bool {
	if a.Numeric != b.Numeric {
		return false
	}
	if a.Numeric {
		return math.Abs(a.Value-b.Value) < numericTolerance
	}
	return a.Text == b.Text
}
