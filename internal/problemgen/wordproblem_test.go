package problemgen

import (
	"strings"
	"testing"

	"github.com/abhisek/mentalmath/internal/mathrand"
)

func TestToWordProblem_Arithmetic(t *testing.T) {
	for _, op := range []string{OpAdd, OpSubtract, OpMultiply, OpDivide} {
		p := &Problem{Operand1: Number(36), Operand2: operandPtr(Number(4)), Operator: op, Answer: NumberAnswer(1)}
		for i := 0; i < len(wordTemplates[op]); i++ {
			w := ToWordProblem(p, &mathrand.Scripted{Ints: []int{0, i}})
			if !w.IsWordProblem {
				t.Fatalf("%s: not converted", op)
			}
			if !strings.Contains(w.QuestionText, "36") || !strings.Contains(w.QuestionText, "4") {
				t.Errorf("%s template %d lost operands: %q", op, i, w.QuestionText)
			}
			if strings.Contains(w.QuestionText, "{{") {
				t.Errorf("unrendered template: %q", w.QuestionText)
			}
		}
		if p.IsWordProblem {
			t.Fatal("original problem was mutated")
		}
	}
}

func TestToWordProblem_PercentUsesDedicatedTemplates(t *testing.T) {
	p := &Problem{Operand1: Percent(25), Operand2: operandPtr(Number(80)), Operator: OpPercent, Answer: NumberAnswer(20)}
	for i := range percentTemplates {
		w := ToWordProblem(p, &mathrand.Scripted{Ints: []int{0, i}})
		if !w.IsWordProblem {
			t.Fatal("percentage problem not converted")
		}
		if !strings.Contains(w.QuestionText, "25%") {
			t.Errorf("template %d missing percent: %q", i, w.QuestionText)
		}
		if !strings.Contains(w.QuestionText, "80") {
			t.Errorf("template %d missing base: %q", i, w.QuestionText)
		}
		if strings.Contains(w.QuestionText, "%%") || strings.Contains(w.QuestionText, "25%%") {
			t.Errorf("template %d doubled the sign: %q", i, w.QuestionText)
		}
	}
}

func TestToWordProblem_UnsupportedTypesUnchanged(t *testing.T) {
	tests := []*Problem{
		{Operand1: Number(49), Operator: OpRoot, Answer: NumberAnswer(7)},
		{Operand1: Fraction(2, 4), Operator: OpSimplify, Answer: TextAnswer("1/2")},
		{Operand1: Fraction(1, 5), Operand2: operandPtr(Fraction(2, 5)), Operator: OpAdd, Answer: TextAnswer("3/5")},
	}
	for _, p := range tests {
		w := ToWordProblem(p, mathrand.New(1))
		if w.IsWordProblem || w.QuestionText != "" {
			t.Errorf("%s should not convert", p.Expression())
		}
		if w == p {
			t.Error("expected a copy")
		}
	}
}
