package problemgen

import (
	"testing"

	"github.com/abhisek/mentalmath/internal/skillgraph"
)

func TestGenerateTargeted_Carry(t *testing.T) {
	gen := newTestGenerator(30)
	orig := &Problem{SkillType: skillgraph.TypeAddition, Operand1: Number(24), Operand2: operandPtr(Number(18)), Operator: OpAdd}
	for i := 0; i < propertyRuns; i++ {
		p, err := gen.GenerateTargeted(orig, TargetCarry)
		if err != nil {
			t.Fatal(err)
		}
		a, b := int(p.Operand1.Value), int(p.B().Value)
		if a%10+b%10 < 10 {
			t.Fatalf("%d + %d does not carry", a, b)
		}
		if p.Answer.Value != float64(a+b) {
			t.Fatalf("wrong answer for %d + %d", a, b)
		}
	}
}

func TestGenerateTargeted_Borrow(t *testing.T) {
	gen := newTestGenerator(31)
	for _, n1 := range []float64{5, 23, 60, 99} {
		orig := &Problem{SkillType: skillgraph.TypeSubtraction, Operand1: Number(n1), Operand2: operandPtr(Number(1)), Operator: OpSubtract}
		for i := 0; i < propertyRuns; i++ {
			p, err := gen.GenerateTargeted(orig, TargetBorrow)
			if err != nil {
				t.Fatal(err)
			}
			a, b := int(p.Operand1.Value), int(p.B().Value)
			if b >= a {
				t.Fatalf("%d - %d is not positive", a, b)
			}
			if b%10 <= a%10 {
				t.Fatalf("%d - %d does not borrow", a, b)
			}
		}
	}
}

func TestGenerateTargeted_FallsBackToSimilar(t *testing.T) {
	gen := newTestGenerator(32)
	orig := &Problem{SkillType: skillgraph.TypeMultiplication, Operand1: Number(40), Operand2: operandPtr(Number(3)), Operator: OpMultiply}
	for i := 0; i < 100; i++ {
		p, err := gen.GenerateTargeted(orig, TargetCarry)
		if err != nil {
			t.Fatal(err)
		}
		if p.SkillType != skillgraph.TypeMultiplication {
			t.Fatalf("type = %s", p.SkillType)
		}
		if a := p.Operand1.Value; a < 20 || a > 60 {
			t.Fatalf("operand %v outside [20, 60]", a)
		}
	}
}

func TestGenerateTargeted_FractionUsesDigitRange(t *testing.T) {
	gen := newTestGenerator(33)
	orig := &Problem{SkillType: skillgraph.TypeFractionSimplification, Operand1: Fraction(6, 8), Operator: OpSimplify}
	p, err := gen.GenerateTargeted(orig, TargetSimilar)
	if err != nil {
		t.Fatal(err)
	}
	if p.SkillType != skillgraph.TypeFractionSimplification {
		t.Errorf("type = %s", p.SkillType)
	}
}

func TestSimilarRange(t *testing.T) {
	lo, hi := similarRange(&Problem{Operand1: Number(15)})
	if lo != 7 || hi != 23 {
		t.Errorf("similarRange(15) = [%d, %d], want [7, 23]", lo, hi)
	}
	lo, hi = similarRange(&Problem{Operand1: Fraction(6, 8)})
	if lo != 100 || hi != 1000 {
		t.Errorf("similarRange(6/8) = [%d, %d], want [100, 1000]", lo, hi)
	}
}
