// Package lessons builds worked solutions and decides when a learner who
// keeps missing the same problem should see one.
package lessons

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/mentalmath/internal/problemgen"
)

// Step is one line of a worked solution.
type Step struct {
	Text           string
	SubCalculation string
}

// Steps returns a worked solution for p. The strategy depends only on the
// problem's shape, so the same problem always gets the same explanation.
func Steps(p *problemgen.Problem) []Step {
	switch {
	case p.Operand1.Kind == problemgen.KindPercent:
		return percentSteps(p)
	case p.Operator == problemgen.OpRoot:
		return rootSteps(p)
	case p.Operator == problemgen.OpSimplify:
		return simplifySteps(p)
	case p.Operator == problemgen.OpAdd && p.Operand1.Kind == problemgen.KindFraction:
		return fractionSumSteps(p)
	}

	if p.Operand1.Kind != problemgen.KindNumber || p.Operand2 == nil || p.Operand2.Kind != problemgen.KindNumber {
		return []Step{
			{Text: "Solve: " + p.Expression()},
			{Text: fmt.Sprintf("The answer is %s.", p.Answer)},
		}
	}

	a, b := p.Operand1.Value, p.Operand2.Value
	switch p.Operator {
	case problemgen.OpAdd:
		return additionSteps(a, b)
	case problemgen.OpSubtract:
		return subtractionSteps(a, b)
	case problemgen.OpMultiply:
		return multiplicationSteps(a, b)
	case problemgen.OpDivide:
		return divisionSteps(a, b)
	case problemgen.OpPower:
		return powerSteps(a, b)
	}
	return []Step{{Text: fmt.Sprintf("The answer is %s.", p.Answer)}}
}

func additionSteps(a, b float64) []Step {
	if b < 10 {
		return []Step{
			{Text: fmt.Sprintf("Start with %s.", f(a))},
			{Text: fmt.Sprintf("Count up by %s.", f(b)), SubCalculation: fmt.Sprintf("%s + %s = %s", f(a), f(b), f(a+b))},
		}
	}
	tens := math.Floor(b/10) * 10
	ones := b - tens
	mid := a + tens
	steps := []Step{
		{Text: "Start with the first number.", SubCalculation: f(a)},
		{Text: fmt.Sprintf("Add the tens from %s.", f(b)), SubCalculation: fmt.Sprintf("%s + %s = %s", f(a), f(tens), f(mid))},
	}
	if ones > 0 {
		steps = append(steps, Step{Text: "Add the ones that are left.", SubCalculation: fmt.Sprintf("%s + %s = %s", f(mid), f(ones), f(mid+ones))})
	}
	return steps
}

func subtractionSteps(a, b float64) []Step {
	if isPowerOfTen(a) && a > b && b > 0 && b == math.Trunc(b) {
		return complementSteps(int(a), int(b))
	}
	if b < 10 {
		return []Step{
			{Text: fmt.Sprintf("Start at %s and count back by %s.", f(a), f(b)), SubCalculation: fmt.Sprintf("%s - %s = %s", f(a), f(b), f(a-b))},
		}
	}
	tens := math.Floor(b/10) * 10
	ones := b - tens
	mid := a - tens
	steps := []Step{
		{Text: fmt.Sprintf("Take away the tens from %s.", f(b)), SubCalculation: fmt.Sprintf("%s - %s = %s", f(a), f(tens), f(mid))},
	}
	if ones > 0 {
		steps = append(steps, Step{Text: "Take away the ones that are left.", SubCalculation: fmt.Sprintf("%s - %s = %s", f(mid), f(ones), f(mid-ones))})
	}
	return steps
}

// complementSteps subtracts from a power of ten digit by digit: every
// digit from 9, the last non-zero digit from 10, trailing zeros kept.
func complementSteps(a, b int) []Step {
	width := len(fmt.Sprint(a)) - 1
	digits := fmt.Sprintf("%0*d", width, b)
	last := strings.LastIndexFunc(digits, func(r rune) bool { return r != '0' })

	var calc []string
	var result strings.Builder
	for i, r := range digits {
		d := int(r - '0')
		switch {
		case i < last:
			calc = append(calc, fmt.Sprintf("9-%d=%d", d, 9-d))
			result.WriteByte(byte('0' + 9 - d))
		case i == last:
			calc = append(calc, fmt.Sprintf("10-%d=%d", d, 10-d))
			result.WriteByte(byte('0' + 10 - d))
		default:
			result.WriteByte('0')
		}
	}

	return []Step{
		{Text: fmt.Sprintf("Taking away from %d? Use \"all from 9, the last from 10\".", a)},
		{Text: fmt.Sprintf("Take each digit of %s from 9, except the last non-zero one.", digits), SubCalculation: strings.Join(calc[:len(calc)-1], ", ")},
		{Text: "Take the last non-zero digit from 10.", SubCalculation: calc[len(calc)-1]},
		{Text: fmt.Sprintf("The result is %d.", a-b), SubCalculation: strings.TrimLeft(result.String(), "0")},
	}
}

func multiplicationSteps(a, b float64) []Step {
	if a != math.Trunc(a) || b != math.Trunc(b) {
		return []Step{{Text: "Multiply.", SubCalculation: fmt.Sprintf("%s × %s = %s", f(a), f(b), f(a*b))}}
	}
	x, y := int(a), int(b)

	switch {
	case x == y && x%10 == 5:
		head := x / 10
		return []Step{
			{Text: "This is the square of a number ending in 5."},
			{Text: fmt.Sprintf("%d² always ends in 25.", x), SubCalculation: "...25"},
			{Text: "Multiply the leading digits by the next number up.", SubCalculation: fmt.Sprintf("%d × %d = %d", head, head+1, head*(head+1))},
			{Text: "Put them together.", SubCalculation: fmt.Sprint(x * x)},
		}

	case y == 11 && x >= 10 && x <= 99:
		d1, d2 := x/10, x%10
		sum := d1 + d2
		steps := []Step{{Text: fmt.Sprintf("To multiply by 11, add the digits of %d.", x)}}
		if sum < 10 {
			return append(steps,
				Step{Text: "Write the sum between the two digits.", SubCalculation: fmt.Sprintf("%d + %d = %d", d1, d2, sum)},
				Step{Text: fmt.Sprintf("The answer is %d.", x*11), SubCalculation: fmt.Sprintf("%d %d %d", d1, sum, d2)},
			)
		}
		return append(steps,
			Step{Text: fmt.Sprintf("%d + %d = %d has two digits, so carry the 1 into the front.", d1, d2, sum), SubCalculation: fmt.Sprintf("%d %d %d", d1+1, sum%10, d2)},
			Step{Text: fmt.Sprintf("The answer is %d.", x*11)},
		)

	case y == 5 && x%2 == 0:
		half := x / 2
		return []Step{
			{Text: "Multiplying by 5 is the same as halving, then multiplying by 10."},
			{Text: "Halve the number.", SubCalculation: fmt.Sprintf("%d ÷ 2 = %d", x, half)},
			{Text: "Multiply by 10.", SubCalculation: fmt.Sprintf("%d × 10 = %d", half, half*10)},
		}

	case x%2 == 0 && x < 50 && y < 50:
		half, double := x/2, y*2
		return []Step{
			{Text: "Try doubling and halving."},
			{Text: fmt.Sprintf("Halve %d and double %d.", x, y), SubCalculation: fmt.Sprintf("%d → %d, %d → %d", x, half, y, double)},
			{Text: "Now solve the easier one.", SubCalculation: fmt.Sprintf("%d × %d = %d", half, double, half*double)},
		}

	case y > 10:
		tens, ones := y/10*10, y%10
		steps := []Step{
			{Text: fmt.Sprintf("Split %d into %d and %d.", y, tens, ones)},
			{Text: fmt.Sprintf("Multiply %d by %d.", x, tens), SubCalculation: fmt.Sprintf("%d × %d = %d", x, tens, x*tens)},
		}
		if ones == 0 {
			return steps
		}
		return append(steps,
			Step{Text: fmt.Sprintf("Multiply %d by %d.", x, ones), SubCalculation: fmt.Sprintf("%d × %d = %d", x, ones, x*ones)},
			Step{Text: "Add the two results.", SubCalculation: fmt.Sprintf("%d + %d = %d", x*tens, x*ones, x*y)},
		)
	}

	return []Step{
		{Text: "Use your times tables."},
		{Text: fmt.Sprintf("%d × %d = %d", x, y, x*y)},
	}
}

func divisionSteps(a, b float64) []Step {
	if b == 0 {
		return []Step{{Text: "Nothing can be divided by zero."}}
	}
	q := a / b
	if b == 5 {
		return []Step{
			{Text: "Dividing by 5 is the same as doubling, then dividing by 10."},
			{Text: "Double the number.", SubCalculation: fmt.Sprintf("%s × 2 = %s", f(a), f(a*2))},
			{Text: "Divide by 10.", SubCalculation: fmt.Sprintf("%s ÷ 10 = %s", f(a*2), f(q))},
		}
	}
	return []Step{
		{Text: "Think of the matching multiplication fact."},
		{Text: fmt.Sprintf("What times %s makes %s?", f(b), f(a)), SubCalculation: fmt.Sprintf("? × %s = %s", f(b), f(a))},
		{Text: fmt.Sprintf("The answer is %s.", f(q)), SubCalculation: fmt.Sprintf("%s × %s = %s", f(q), f(b), f(a))},
	}
}

func percentSteps(p *problemgen.Problem) []Step {
	pct := p.Operand1.Value
	base := p.B().Float()
	result := pct * base / 100

	switch {
	case pct == 50:
		return []Step{
			{Text: "50% means half."},
			{Text: fmt.Sprintf("Halve %s.", f(base)), SubCalculation: fmt.Sprintf("%s ÷ 2 = %s", f(base), f(result))},
		}
	case pct == 25:
		half := base / 2
		return []Step{
			{Text: "25% is a quarter, so halve twice."},
			{Text: fmt.Sprintf("Halve %s.", f(base)), SubCalculation: fmt.Sprintf("%s ÷ 2 = %s", f(base), f(half))},
			{Text: "Halve again.", SubCalculation: fmt.Sprintf("%s ÷ 2 = %s", f(half), f(result))},
		}
	case pct > 0 && math.Mod(pct, 10) == 0:
		ten := base / 10
		steps := []Step{{Text: "Find 10% by dividing by 10.", SubCalculation: fmt.Sprintf("%s ÷ 10 = %s", f(base), f(ten))}}
		if k := pct / 10; k != 1 {
			steps = append(steps, Step{
				Text:           fmt.Sprintf("%s%% is %s lots of 10%%.", f(pct), f(k)),
				SubCalculation: fmt.Sprintf("%s × %s = %s", f(ten), f(k), f(result)),
			})
		}
		return steps
	}

	one := base / 100
	return []Step{
		{Text: "Find 1% by dividing by 100.", SubCalculation: fmt.Sprintf("%s ÷ 100 = %s", f(base), f(one))},
		{Text: fmt.Sprintf("Multiply by %s to get %s%%.", f(pct), f(pct)), SubCalculation: fmt.Sprintf("%s × %s = %s", f(one), f(pct), f(result))},
	}
}

func rootSteps(p *problemgen.Problem) []Step {
	n := p.Operand1.Float()
	r := math.Sqrt(n)
	if r != math.Trunc(r) {
		lo, hi := math.Floor(r), math.Ceil(r)
		return []Step{
			{Text: fmt.Sprintf("%s is not a perfect square. Find the squares either side.", f(n)), SubCalculation: fmt.Sprintf("%s² = %s, %s² = %s", f(lo), f(lo*lo), f(hi), f(hi*hi))},
			{Text: fmt.Sprintf("The root is between %s and %s.", f(lo), f(hi))},
		}
	}
	return []Step{
		{Text: fmt.Sprintf("Find the whole number that squares to %s.", f(n))},
		{Text: "Check the neighbours.", SubCalculation: fmt.Sprintf("%s² = %s, %s² = %s", f(r-1), f((r-1)*(r-1)), f(r+1), f((r+1)*(r+1)))},
		{Text: fmt.Sprintf("The answer is %s.", f(r)), SubCalculation: fmt.Sprintf("%s² = %s", f(r), f(n))},
	}
}

func simplifySteps(p *problemgen.Problem) []Step {
	n, d := p.Operand1.Num, p.Operand1.Den
	g := problemgen.GCD(n, d)
	if g <= 1 {
		return []Step{{Text: fmt.Sprintf("%d and %d share no factor, so %d/%d is already simplest.", n, d, n, d)}}
	}
	return []Step{
		{Text: fmt.Sprintf("Find the biggest number that divides both %d and %d.", n, d), SubCalculation: fmt.Sprintf("GCD = %d", g)},
		{Text: "Divide the top and the bottom by it.", SubCalculation: fmt.Sprintf("%d ÷ %d = %d, %d ÷ %d = %d", n, g, n/g, d, g, d/g)},
		{Text: fmt.Sprintf("The answer is %d/%d.", n/g, d/g)},
	}
}

func fractionSumSteps(p *problemgen.Problem) []Step {
	o1, o2 := p.Operand1, p.B()
	if o2.Kind != problemgen.KindFraction || o1.Den != o2.Den {
		return []Step{
			{Text: "Rewrite both fractions over a common denominator, then add the numerators."},
			{Text: fmt.Sprintf("The answer is %s.", p.Answer)},
		}
	}
	return []Step{
		{Text: "The denominators match, so add the numerators.", SubCalculation: fmt.Sprintf("%d + %d = %d", o1.Num, o2.Num, o1.Num+o2.Num)},
		{Text: "Keep the denominator.", SubCalculation: fmt.Sprintf("%d/%d", o1.Num+o2.Num, o1.Den)},
	}
}

func powerSteps(base, exp float64) []Step {
	n := int(exp)
	if n < 1 || exp != math.Trunc(exp) {
		return []Step{{Text: fmt.Sprintf("Work out %s to the power %s.", f(base), f(exp))}}
	}
	factors := make([]string, n)
	for i := range factors {
		factors[i] = f(base)
	}
	return []Step{
		{Text: fmt.Sprintf("Multiply %s by itself %d times.", f(base), n), SubCalculation: fmt.Sprintf("%s = %s", strings.Join(factors, " × "), f(math.Pow(base, exp)))},
	}
}

func isPowerOfTen(v float64) bool {
	if v < 10 || v != math.Trunc(v) {
		return false
	}
	for v >= 10 && math.Mod(v, 10) == 0 {
		v /= 10
	}
	return v == 1
}

// f formats v, hiding float noise such as 0.1 + 0.2.
func f(v float64) string { return problemgen.FormatNumber(math.Round(v*1e6) / 1e6) }
