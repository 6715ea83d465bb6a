package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// operatorAliases maps typed operator spellings to display operators.
var operatorAliases = map[string]string{
	"+": OpAdd,
	"-": OpSubtract,
	"*": OpMultiply, "x": OpMultiply, "×": OpMultiply,
	"/": OpDivide, "÷": OpDivide,
	"^": OpPower, "**": OpPower,
	"of": OpPercent,
}

// ParseExpression builds a problem from a typed expression such as
// "48 + 37", "12 x 15", "25% of 80", "3/8 + 1/8", "simplify 6/8", "7^2"
// or "sqrt 144". Binary operators must be separated by spaces; powers and
// roots may also be written without them. The answer is derived with
// Evaluate.
func ParseExpression(expr string) (*Problem, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}

	fields := strings.Fields(expr)
	if len(fields) == 1 {
		fields = splitCompact(fields[0])
	}

	var p *Problem
	switch {
	case len(fields) == 2 && (fields[0] == "sqrt" || fields[0] == OpRoot):
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse root operand %q: %w", fields[1], err)
		}
		p = &Problem{SkillType: skillgraph.TypeRoots, Operand1: Number(v), Operator: OpRoot}

	case len(fields) == 2 && fields[0] == OpSimplify:
		num, den, err := parseFraction(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse fraction %q: %w", fields[1], err)
		}
		p = &Problem{SkillType: skillgraph.TypeFractionSimplification, Operand1: Fraction(int(num), int(den)), Operator: OpSimplify}

	case len(fields) == 3:
		op, ok := operatorAliases[strings.ToLower(fields[1])]
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", fields[1])
		}
		a, err := parseOperand(fields[0])
		if err != nil {
			return nil, err
		}
		b, err := parseOperand(fields[2])
		if err != nil {
			return nil, err
		}
		p = &Problem{Operand1: a, Operand2: operandPtr(b), Operator: op, SkillType: typeFor(op, a, b)}

	default:
		return nil, fmt.Errorf("cannot parse %q: expected \"<a> <op> <b>\"", expr)
	}

	answer, err := Evaluate(p)
	if err != nil {
		return nil, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	p.Answer = answer
	p.Level = 1
	return p, nil
}

// splitCompact splits "7^2" and "√49" written without spaces.
func splitCompact(s string) []string {
	if rest, ok := strings.CutPrefix(s, OpRoot); ok {
		return []string{OpRoot, rest}
	}
	if a, b, ok := strings.Cut(s, "^"); ok {
		return []string{a, "^", b}
	}
	return []string{s}
}

func parseOperand(s string) (Operand, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return Operand{}, fmt.Errorf("parse percent %q: %w", s, err)
		}
		return Percent(v), nil
	}
	if strings.Contains(s, "/") {
		num, den, err := parseFraction(s)
		if err != nil {
			return Operand{}, fmt.Errorf("parse fraction %q: %w", s, err)
		}
		return Fraction(int(num), int(den)), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("parse number %q: %w", s, err)
	}
	return Number(v), nil
}

func typeFor(op string, a, b Operand) skillgraph.SkillType {
	switch op {
	case OpAdd:
		switch {
		case a.Kind == KindFraction || b.Kind == KindFraction:
			return skillgraph.TypeFractionAddition
		case !a.IsInteger() || !b.IsInteger():
			return skillgraph.TypeDecimal
		}
		return skillgraph.TypeAddition
	case OpSubtract:
		if !a.IsInteger() || !b.IsInteger() {
			return skillgraph.TypeDecimal
		}
		return skillgraph.TypeSubtraction
	case OpMultiply:
		return skillgraph.TypeMultiplication
	case OpDivide:
		return skillgraph.TypeDivision
	case OpPercent:
		return skillgraph.TypePercentage
	case OpPower:
		return skillgraph.TypePowers
	}
	return skillgraph.TypeAddition
}
