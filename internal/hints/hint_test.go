package hints

import (
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

func newTestLibrary(t *testing.T, opts ...Option) *Library {
	t.Helper()
	opts = append([]Option{WithSource(mathrand.New(1))}, opts...)
	lib, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return lib
}

func binary(t skillgraph.SkillType, a float64, op string, b float64) *problemgen.Problem {
	o2 := problemgen.Number(b)
	return &problemgen.Problem{SkillType: t, Operand1: problemgen.Number(a), Operand2: &o2, Operator: op}
}

func percentOf(pct, base float64) *problemgen.Problem {
	o2 := problemgen.Number(base)
	return &problemgen.Problem{
		SkillType: skillgraph.TypePercentage,
		Operand1:  problemgen.Percent(pct),
		Operand2:  &o2,
		Operator:  problemgen.OpPercent,
	}
}

func TestHint_PatternBranches(t *testing.T) {
	lib := newTestLibrary(t)
	add, sub, mul, div := skillgraph.TypeAddition, skillgraph.TypeSubtraction, skillgraph.TypeMultiplication, skillgraph.TypeDivision
	pow := skillgraph.TypePowers

	tests := []struct {
		name    string
		problem *problemgen.Problem
		want    string
	}{
		{"add first near 100", binary(add, 97, problemgen.OpAdd, 25), "**Compensation**: 97 is close to 100"},
		{"add second near 100", binary(add, 25, problemgen.OpAdd, 96), "**Compensation**: 96 is close to 100"},
		{"add ends in 8", binary(add, 48, problemgen.OpAdd, 27), "**Round and Adjust**"},
		{"add ends in 8 three digits", binary(add, 346, problemgen.OpAdd, 228), "**Round and Adjust**"},
		{"add exactly 100", binary(add, 100, problemgen.OpAdd, 35), "**Round and Adjust**"},
		{"add above 100", binary(add, 105, problemgen.OpAdd, 12), "**Round and Adjust**"},
		{"add second above 90", binary(add, 12, problemgen.OpAdd, 150), "**Round and Adjust**"},
		{"add tens and ones", binary(add, 34, problemgen.OpAdd, 25), "**Break Into Chunks**"},
		{"add decimals", binary(add, 1.2, problemgen.OpAdd, 0.5), "**Line Up Decimals**"},
		{"sub decimals", binary(sub, 1.2, problemgen.OpSubtract, 0.5), "**Line Up Decimals**"},
		{"sub near 100", binary(sub, 150, problemgen.OpSubtract, 97), "**Compensation**: Subtract 100, then add back 3."},
		{"sub count up", binary(sub, 45, problemgen.OpSubtract, 17), "**Count Up**:\n17 → 20 (+3)\n20 → 45 (+25)"},
		{"sub dataset compensation", binary(sub, 40, problemgen.OpSubtract, 38), "**Compensation (Round & Adjust)**"},
		{"sub dataset break", binary(sub, 20, problemgen.OpSubtract, 13), "**Break and Subtract**"},
		{"sub think addition", binary(sub, 9, problemgen.OpSubtract, 4), "**Think Addition**: 4 + ? = 9"},
		{"mul 11s", binary(mul, 43, problemgen.OpMultiply, 11), "**11s Trick**"},
		{"mul 11s carry", binary(mul, 78, problemgen.OpMultiply, 11), "7 | 15 | 8 (carry 1)"},
		{"mul 5s", binary(mul, 36, problemgen.OpMultiply, 5), "**5s Trick**"},
		{"mul 4s", binary(mul, 13, problemgen.OpMultiply, 4), "**Double Double**"},
		{"mul 9s", binary(mul, 13, problemgen.OpMultiply, 9), "**9s Trick**"},
		{"mul 8s", binary(mul, 13, problemgen.OpMultiply, 8), "**8s Trick**"},
		{"mul near 100 second", binary(mul, 7, problemgen.OpMultiply, 98), "**Near 100**"},
		{"mul near 100 first", binary(mul, 95, problemgen.OpMultiply, 6), "**Near 100**"},
		{"mul round up", binary(mul, 29, problemgen.OpMultiply, 13), "(30 × 13) - (1 × 13). Start with 390, then subtract 13."},
		{"mul round down", binary(mul, 32, problemgen.OpMultiply, 13), "(30 × 13) + (2 × 13). Start with 390, then add 26."},
		{"mul round second", binary(mul, 30, problemgen.OpMultiply, 21), "(30 × 20) + (30 × 1)"},
		{"mul three digits", binary(mul, 120, problemgen.OpMultiply, 3), "**Break Apart (Distributive Property)**"},
		{"mul even pair", binary(mul, 20, problemgen.OpMultiply, 30), "**Doubling and Halving**"},
		{"mul tens and ones", binary(mul, 23, problemgen.OpMultiply, 7), "20 × 7 = 140\n3 × 7 = 21\n140 + 21 = 161"},
		{"mul table fact", binary(mul, 3, problemgen.OpMultiply, 7), "**Times Tables**"},
		{"mul tens only", binary(mul, 30, problemgen.OpMultiply, 7), "in chunks"},
		{"mul decimal shift", binary(mul, 3.7, problemgen.OpMultiply, 100), "**Shift the Decimal**: ×100 moves the decimal point 2 place(s)"},
		{"div anchor 10", binary(div, 84, problemgen.OpDivide, 6), "Step 1: 10 × 6 = 60\nStep 2: 4 × 6 = 24\nAnswer: 10 + 4 = 14"},
		{"div anchor 5", binary(div, 42, problemgen.OpDivide, 7), "Step 1: 5 × 7 = 35\nStep 2: 1 × 7 = 7\nAnswer: 5 + 1 = 6"},
		{"div small", binary(div, 12, problemgen.OpDivide, 4), "What number times 4 makes 12?"},
		{"div large divisor", binary(div, 195, problemgen.OpDivide, 15), "What number times 15 makes 195?\nAnswer: 13"},
		{"pct 10", percentOf(10, 70), "**10%**"},
		{"pct 50", percentOf(50, 36), "36 ÷ 2 = 18"},
		{"pct 25", percentOf(25, 80), "80 ÷ 2 = 40\n40 ÷ 2 = 20"},
		{"pct 20", percentOf(20, 45), "10% of 45 = 4.5\n4.5 × 2 = 9"},
		{"pct chunking", percentOf(15, 60), "**10% Method (Chunking)**"},
		{"pct generic", percentOf(27, 300), "27/100 × 300 = 81"},
		{"square ends in 5", binary(pow, 35, problemgen.OpPower, 2), "Step 1: 3 × 4 = 12"},
		{"square of 5", binary(pow, 5, problemgen.OpPower, 2), "Answer: 25"},
		{"square near base", binary(pow, 52, problemgen.OpPower, 2), "**Near 50 Trick**"},
		{"square below base", binary(pow, 9, problemgen.OpPower, 2), "= 100 - 20 + 1"},
		{"square dataset", binary(pow, 14, problemgen.OpPower, 2), "**Near-Base Squaring**"},
		{"square small", binary(pow, 4, problemgen.OpPower, 2), "4^2 = 4 × 4 = 16"},
		{"cube", binary(pow, 3, problemgen.OpPower, 3), "3^3 = 3 × 3 × 3 = 27"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := lib.Hint(tt.problem)
			if !strings.Contains(h.Text, tt.want) {
				t.Errorf("hint for %s:\n%s\nwant substring %q", tt.problem.Expression(), h.Text, tt.want)
			}
		})
	}
}

func TestHint_Fractions(t *testing.T) {
	lib := newTestLibrary(t)

	p := &problemgen.Problem{
		SkillType: skillgraph.TypeFractionSimplification,
		Operand1:  problemgen.Fraction(6, 8),
		Operator:  problemgen.OpSimplify,
	}
	h := lib.Hint(p)
	if !strings.Contains(h.Text, "Simplified: 3/4") {
		t.Errorf("got %q", h.Text)
	}
	if h.Visual == nil || h.Visual.Steps[2].Value != "3/4" || !h.Visual.Steps[2].Highlight {
		t.Errorf("unexpected visual %+v", h.Visual)
	}

	p.Operand1 = problemgen.Fraction(3, 7)
	if h := lib.Hint(p); !strings.Contains(h.Text, "**Already Simplified**") {
		t.Errorf("got %q", h.Text)
	}

	p.SkillType = skillgraph.TypeFractionAddition
	if h := lib.Hint(p); !strings.Contains(h.Text, "**Like Fractions**") {
		t.Errorf("got %q", h.Text)
	}
}

func TestHint_Roots(t *testing.T) {
	lib := newTestLibrary(t)
	p := &problemgen.Problem{SkillType: skillgraph.TypeRoots, Operand1: problemgen.Number(1764), Operator: problemgen.OpRoot}
	h := lib.Hint(p)
	for _, want := range []string{"40² = 1600, 50² = 2500", "Last digit 4 → root ends in 2 or 8", "Answer: 42"} {
		if !strings.Contains(h.Text, want) {
			t.Errorf("hint %q missing %q", h.Text, want)
		}
	}

	p.Operand1 = problemgen.Number(50)
	h = lib.Hint(p)
	if !strings.Contains(h.Text, "between 7 and 8") || !strings.Contains(h.Text, "Approximately 7.1") {
		t.Errorf("got %q", h.Text)
	}
}

func TestHint_DecimalType(t *testing.T) {
	lib := newTestLibrary(t)
	p := binary(skillgraph.TypeDecimal, 1.5, problemgen.OpAdd, 2.25)
	if h := lib.Hint(p); !strings.Contains(h.Text, "**Align Decimals**") {
		t.Errorf("got %q", h.Text)
	}
}

func TestHint_UnknownTypeFallsBackToManual(t *testing.T) {
	lib := newTestLibrary(t, WithSource(&mathrand.Scripted{Ints: []int{1}}))
	p := binary(skillgraph.SkillType("geometry"), 1, "?", 2)
	h := lib.Hint(p)
	if h.Text != "**Estimation**: "+manual.Protocols[1].Tactic {
		t.Errorf("got %q", h.Text)
	}
}

func TestHint_NeverEmptyForGeneratedProblems(t *testing.T) {
	lib := newTestLibrary(t)
	gen := problemgen.NewGenerator(mathrand.New(7))
	for _, s := range skillgraph.AllSkills() {
		for i := 0; i < 20; i++ {
			p, err := gen.Generate(s.Type, 3, s.Range)
			if err != nil {
				t.Fatalf("%s: %v", s.Key, err)
			}
			if h := lib.Hint(p); strings.TrimSpace(h.Text) == "" {
				t.Fatalf("%s: empty hint for %s", s.Key, p.Expression())
			}
		}
	}
}

func TestHint_FirstOccurrenceReportedOnce(t *testing.T) {
	var mu sync.Mutex
	seen := map[skillgraph.SkillType]int{}
	lib := newTestLibrary(t, WithObserver(func(st skillgraph.SkillType) {
		mu.Lock()
		seen[st]++
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lib.Hint(binary(skillgraph.TypeAddition, 12, problemgen.OpAdd, 7))
			lib.Hint(binary(skillgraph.TypeMultiplication, 12, problemgen.OpMultiply, 7))
		}()
	}
	wg.Wait()

	if seen[skillgraph.TypeAddition] != 1 || seen[skillgraph.TypeMultiplication] != 1 {
		t.Errorf("observer counts = %v, want one per type", seen)
	}
}

func TestGeneralManual(t *testing.T) {
	m := GeneralManual()
	if len(m.Protocols) != 4 {
		t.Fatalf("got %d protocols, want 4", len(m.Protocols))
	}
	titles := []string{"General", "Estimation", "Patterns", "Inverse Operations"}
	for i, p := range m.Protocols {
		if p.Title != titles[i] || p.Number != i+1 || p.Tactic == "" {
			t.Errorf("protocol %d = %+v", i, p)
		}
	}
	m.Protocols[0].Title = "changed"
	if manual.Protocols[0].Title != "General" {
		t.Error("GeneralManual returned shared slice")
	}
}

func TestHint_AdditionBreakdownWithoutDataset(t *testing.T) {
	data := []byte(`
version: v1.0.0
operations:
  multiplication:
    - name: Times Tables
      alias: Recall
      best_for: Single-digit facts.
      examples:
        - problem: 3 x 7
          steps: ["21"]
`)
	lib := newTestLibrary(t, WithDataset(data))
	h := lib.Hint(binary(skillgraph.TypeAddition, 34, problemgen.OpAdd, 25))
	if !strings.Contains(h.Text, "**Break It Down**: Add the tens") {
		t.Errorf("got %q", h.Text)
	}
	if h.Visual == nil || h.Visual.Steps[2].Value != "59" {
		t.Errorf("visual = %+v", h.Visual)
	}
}
