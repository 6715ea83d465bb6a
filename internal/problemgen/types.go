package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// Operator symbols used for display. Some are not evaluable operators in
// the arithmetic sense ("of", "simplify").
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "×"
	OpDivide   = "÷"
	OpSimplify = "simplify"
	OpPercent  = "of"
	OpPower    = "^"
	OpRoot     = "√"
)

// OperandKind tags the shape of an Operand.
type OperandKind int

const (
	KindNumber   OperandKind = iota // plain number, e.g. 42 or 1.5
	KindFraction                    // numerator/denominator pair
	KindPercent                     // percent value, e.g. 25 for "25%"
)

// Operand is a number, a fraction or a percent.
type Operand struct {
	Kind  OperandKind
	Value float64 // number value, or percent for KindPercent
	Num   int     // fraction numerator
	Den   int     // fraction denominator
}

// Number returns a numeric operand.
func Number(v float64) Operand { return Operand{Kind: KindNumber, Value: v} }

// Fraction returns a fraction operand.
func Fraction(num, den int) Operand { return Operand{Kind: KindFraction, Num: num, Den: den} }

// Percent returns a percent operand.
func Percent(p float64) Operand { return Operand{Kind: KindPercent, Value: p} }

// Float returns the operand's numeric value. Percents return the percent
// itself (25 for "25%"), fractions their quotient.
func (o Operand) Float() float64 {
	if o.Kind == KindFraction {
		if o.Den == 0 {
			return 0
		}
		return float64(o.Num) / float64(o.Den)
	}
	return o.Value
}

// Int returns the operand value truncated to an int.
func (o Operand) Int() int { return int(o.Float()) }

// IsInteger reports whether the operand is a whole number.
func (o Operand) IsInteger() bool {
	return o.Kind == KindNumber && o.Value == float64(int64(o.Value))
}

func (o Operand) String() string {
	switch o.Kind {
	case KindFraction:
		return fmt.Sprintf("%d/%d", o.Num, o.Den)
	case KindPercent:
		return FormatNumber(o.Value) + "%"
	default:
		return FormatNumber(o.Value)
	}
}

// Answer is the exact-match target of a problem: a number, or a
// normalized string such as "3/4".
type Answer struct {
	Numeric bool
	Value   float64
	Text    string
}

// NumberAnswer returns a numeric answer.
func NumberAnswer(v float64) Answer { return Answer{Numeric: true, Value: v} }

// TextAnswer returns a string answer.
func TextAnswer(s string) Answer { return Answer{Text: s} }

func (a Answer) String() string {
	if a.Numeric {
		return FormatNumber(a.Value)
	}
	return a.Text
}

// Problem is a single generated exercise. It is immutable once returned
// by the generator; converters return modified copies.
type Problem struct {
	ID        string
	SkillType skillgraph.SkillType

	// SkillKey is the micro-skill the problem was drawn for, if any.
	SkillKey string

	Operand1 Operand
	Operand2 *Operand // nil for unary operations (square root, simplify)
	Operator string
	Answer   Answer

	// Level is the difficulty level used at generation time.
	Level int

	IsWordProblem bool
	QuestionText  string

	// Progress is set by placement batteries, e.g. "3/7".
	Progress string
}

// Expression renders the bare problem, e.g. "12 + 7" or "√49".
func (p *Problem) Expression() string {
	switch p.Operator {
	case OpRoot:
		return OpRoot + p.Operand1.String()
	case OpSimplify:
		return "simplify " + p.Operand1.String()
	}
	if p.Operand2 == nil {
		return p.Operand1.String()
	}
	return fmt.Sprintf("%s %s %s", p.Operand1, p.Operator, p.Operand2)
}

// Prompt is the text shown to the learner.
func (p *Problem) Prompt() string {
	if p.IsWordProblem && p.QuestionText != "" {
		return p.QuestionText
	}
	return p.Expression() + " = ?"
}

// Identity is a stable key built from the operands and operator. Two
// problems with the same numbers and operation share an identity even
// if their IDs differ.
func (p *Problem) Identity() string {
	second := ""
	if p.Operand2 != nil {
		second = p.Operand2.String()
	}
	return fmt.Sprintf("%s-%s-%s", p.Operand1, p.Operator, second)
}

// B returns the second operand, or a zero number for unary problems.
func (p *Problem) B() Operand {
	if p.Operand2 == nil {
		return Number(0)
	}
	return *p.Operand2
}

// WithSkill returns a copy of the problem tagged with a skill key.
func (p *Problem) WithSkill(key string) *Problem {
	cp := *p
	cp.SkillKey = key
	return &cp
}

// WithProgress returns a copy of the problem tagged with a progress label.
func (p *Problem) WithProgress(progress string) *Problem {
	cp := *p
	cp.Progress = progress
	return &cp
}

// FormatNumber renders v without trailing zeros ("3", "0.5", "12.25").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func operandPtr(o Operand) *Operand { return &o }
