package diagnosis

import (
	"testing"

	"github.com/abhisek/mentalmath/internal/problemgen"
)

func binary(a float64, op string, b, answer float64) *problemgen.Problem {
	o2 := problemgen.Number(b)
	return &problemgen.Problem{
		Operand1: problemgen.Number(a),
		Operand2: &o2,
		Operator: op,
		Answer:   problemgen.NumberAnswer(answer),
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		problem *problemgen.Problem
		answer  string
		want    Kind
	}{
		{"dropped carry", binary(15, problemgen.OpAdd, 5, 20), "10", KindCarrying},
		{"carry too many", binary(27, problemgen.OpAdd, 8, 35), "45", KindCarrying},
		{"off by one on addition", binary(5, problemgen.OpAdd, 2, 7), "6", KindOffByOne},
		{"off by one beats borrowing", binary(12, problemgen.OpSubtract, 3, 9), "10", KindOffByOne},
		{"borrowing", binary(42, problemgen.OpSubtract, 7, 35), "45", KindBorrowing},
		{"borrowing below", binary(42, problemgen.OpSubtract, 7, 35), "25", KindBorrowing},
		{"flipped sign product", binary(-5, problemgen.OpMultiply, 5, -25), "25", KindSign},
		{"flipped sign quotient", binary(-20, problemgen.OpDivide, 4, -5), "5", KindSign},
		{"flipped sign ascii x", binary(-5, "x", 5, -25), "25", KindSign},
		{"flipped sign asterisk", binary(5, "*", -5, -25), "25", KindSign},
		{"flipped sign slash", binary(-20, "/", 4, -5), "5", KindSign},
		{"flipped sign needs product", binary(-5, problemgen.OpAdd, -5, -10), "10", KindCalculation},
		{"ten off on multiplication", binary(6, problemgen.OpMultiply, 7, 42), "52", KindCalculation},
		{"ten off on subtraction", binary(20, problemgen.OpSubtract, 5, 15), "25", KindBorrowing},
		{"far off", binary(12, problemgen.OpAdd, 9, 21), "50", KindCalculation},
		{"not a number", binary(12, problemgen.OpAdd, 9, 21), "twenty", KindUnknown},
		{"empty", binary(12, problemgen.OpAdd, 9, 21), "", KindUnknown},
		{"decimal answer", binary(1.5, problemgen.OpAdd, 1, 2.5), "3.5", KindOffByOne},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.problem, tt.answer); got != tt.want {
				t.Errorf("Classify(%s, %q) = %s, want %s", tt.problem.Expression(), tt.answer, got, tt.want)
			}
		})
	}
}

func TestClassify_FractionAnswer(t *testing.T) {
	p := &problemgen.Problem{
		Operand1: problemgen.Fraction(6, 8),
		Operator: problemgen.OpSimplify,
		Answer:   problemgen.TextAnswer("3/4"),
	}
	if got := Classify(p, "1/2"); got != KindCalculation {
		t.Errorf("got %s, want %s", got, KindCalculation)
	}
	if got := Classify(p, "3/0"); got != KindUnknown {
		t.Errorf("zero denominator: got %s, want %s", got, KindUnknown)
	}
}

func TestSignClassifier_ZeroProduct(t *testing.T) {
	c := &SignClassifier{}
	in := &ClassifyInput{Problem: binary(0, problemgen.OpMultiply, 5, 0), Answer: 0, Correct: 0}
	if got := c.Classify(in); got != "" {
		t.Errorf("got %q for zero product, want empty", got)
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	in := &ClassifyInput{Problem: binary(3, problemgen.OpAdd, 4, 7), Answer: 100, Correct: 7}
	kind, name := RunClassifiers(DefaultClassifiers(), in)
	if kind != "" || name != "" {
		t.Errorf("got (%q, %q), want empty", kind, name)
	}
}

func TestRunClassifiers_ReportsRuleName(t *testing.T) {
	in := &ClassifyInput{Problem: binary(15, problemgen.OpAdd, 5, 20), Answer: 10, Correct: 20}
	kind, name := RunClassifiers(DefaultClassifiers(), in)
	if kind != KindCarrying || name != "carrying" {
		t.Errorf("got (%q, %q), want (%q, carrying)", kind, name, KindCarrying)
	}
}
