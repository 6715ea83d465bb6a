package hints

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/mentalmath/internal/problemgen"
)

func fractionSimplification(p *problemgen.Problem) *Hint {
	if p.Operand1.Kind != problemgen.KindFraction {
		return nil
	}
	n, d := p.Operand1.Num, p.Operand1.Den
	g := problemgen.GCD(n, d)
	if g <= 1 {
		return &Hint{Text: fmt.Sprintf("**Already Simplified**: %d/%d has no common factor to divide out.", n, d)}
	}
	sn, sd := n/g, d/g
	return &Hint{
		Text: fmt.Sprintf("**Find a Common Factor**:\n%d and %d are both divisible by %d\n%d ÷ %d = %d\n%d ÷ %d = %d\nSimplified: %d/%d",
			n, d, g, n, g, sn, d, g, sd, sn, sd),
		Visual: &Visual{Title: "Simplify Fraction", Steps: []VisualStep{
			{Label: fmt.Sprintf("%d ÷ %d", n, g), Value: itoa(sn)},
			{Label: fmt.Sprintf("%d ÷ %d", d, g), Value: itoa(sd)},
			{Label: "Result", Value: fmt.Sprintf("%d/%d", sn, sd), Highlight: true},
		}},
	}
}

func fractionAddition() *Hint {
	return &Hint{
		Text: "**Like Fractions**: When the denominators match, add the numerators and keep the denominator.\n" +
			"If they differ, rewrite both over a common denominator first.\n" +
			"Step 1: Find a common denominator\nStep 2: Rewrite each fraction\nStep 3: Add the numerators\nStep 4: Simplify if you can",
		Visual: &Visual{Title: "Add Fractions", Steps: []VisualStep{
			{Label: "Common denominator", Value: "Match the bottoms"},
			{Label: "Rewrite", Value: "Same denominator"},
			{Label: "Add", Value: "Numerators only"},
			{Label: "Simplify", Value: "If possible", Highlight: true},
		}},
	}
}

func decimalAlignment() *Hint {
	return &Hint{
		Text: "**Align Decimals**:\nStep 1: Line up the decimal points\nStep 2: Pad with zeros so the places match\n" +
			"Step 3: Work column by column from the right\nStep 4: Drop the decimal point straight down",
		Visual: &Visual{Title: "Decimal Alignment", Steps: []VisualStep{
			{Label: "Align", Value: "Line up decimal points"},
			{Label: "Fill", Value: "Add trailing zeros"},
			{Label: "Calculate", Value: "Right to left"},
			{Label: "Place decimal", Value: "Straight down", Highlight: true},
		}},
	}
}

func (l *Library) percentage(f facts) *Hint {
	pct := int(f.a)
	base := f.b
	switch pct {
	case 10:
		r := base / 10
		return &Hint{
			Text: fmt.Sprintf("**10%%**: Move the decimal point one place left.\n%s → %s", num(base), num(r)),
			Visual: &Visual{Title: "10% = ÷10", Steps: []VisualStep{
				{Label: "Original", Value: num(base)},
				{Label: "Move decimal ←", Value: num(r), Highlight: true},
			}},
		}
	case 50:
		r := base / 2
		return &Hint{
			Text: fmt.Sprintf("**50%%**: Cut the number in half.\n%s ÷ 2 = %s", num(base), num(r)),
			Visual: &Visual{Title: "50% = ÷2", Steps: []VisualStep{
				{Label: "Original", Value: num(base)},
				{Label: "Half", Value: num(r), Highlight: true},
			}},
		}
	case 25:
		half := base / 2
		r := half / 2
		return &Hint{
			Text: fmt.Sprintf("**25%%**: Half of a half.\n%s ÷ 2 = %s\n%s ÷ 2 = %s", num(base), num(half), num(half), num(r)),
			Visual: &Visual{Title: "25% = ÷2 ÷2", Steps: []VisualStep{
				{Label: "Original", Value: num(base)},
				{Label: "÷ 2", Value: num(half)},
				{Label: "÷ 2", Value: num(r), Highlight: true},
			}},
		}
	case 20:
		ten := base / 10
		r := ten * 2
		return &Hint{
			Text: fmt.Sprintf("**20%%**: Find 10%%, then double it.\n10%% of %s = %s\n%s × 2 = %s", num(base), num(ten), num(ten), num(r)),
			Visual: &Visual{Title: "20% = 10% × 2", Steps: []VisualStep{
				{Label: "10%", Value: num(ten)},
				{Label: "× 2", Value: num(r), Highlight: true},
			}},
		}
	}

	if pct%5 == 0 {
		if h := l.fromDataset("percentages", "10% Method (Chunking)"); h != nil {
			return h
		}
	}

	r := float64(pct) * base / 100
	return &Hint{
		Text: fmt.Sprintf("**%d%%**: Means %d/100.\n%d/100 × %s = %s", pct, pct, pct, num(base), num(r)),
		Visual: &Visual{Title: fmt.Sprintf("%d%%", pct), Steps: []VisualStep{
			{Label: fmt.Sprintf("%d/100", pct), Value: num(float64(pct) / 100)},
			{Label: "× " + num(base), Value: num(r), Highlight: true},
		}},
	}
}

func (l *Library) power(f facts) *Hint {
	n, exp := f.ai, f.bi
	if exp < 1 {
		return nil
	}
	if exp == 2 {
		if n%10 == 5 {
			prefix := n / 10
			head := prefix * (prefix + 1)
			return &Hint{
				Text: fmt.Sprintf("**Ends in 5 Trick**:\n%d² = (%d × %d) with 25 on the end\nStep 1: %d × %d = %d\nStep 2: Append 25\nAnswer: %d",
					n, prefix, prefix+1, prefix, prefix+1, head, n*n),
				Visual: &Visual{Title: "Ends in 5 Trick", Steps: []VisualStep{
					{Label: fmt.Sprintf("%d × %d", prefix, prefix+1), Value: itoa(head)},
					{Label: "Append 25", Value: "25"},
					{Label: "Answer", Value: itoa(n * n), Highlight: true},
				}},
			}
		}
		if base := roundTen(n); base > 0 {
			if diff := n - base; diff != 0 && abs(diff) <= 3 {
				return nearBaseSquare(n, base, diff)
			}
		}
		if n >= 10 {
			if h := l.fromDataset("powers", "Near-Base Squaring"); h != nil {
				return h
			}
		}
	}

	factors := make([]string, exp)
	for i := range factors {
		factors[i] = itoa(n)
	}
	chain := strings.Join(factors, " × ")
	result := itoa(int(math.Pow(float64(n), float64(exp))))
	return &Hint{
		Text: fmt.Sprintf("**Power of %d**: Multiply %d by itself %d times.\n%d^%d = %s = %s", exp, n, exp, n, exp, chain, result),
		Visual: &Visual{Title: fmt.Sprintf("Power of %d", exp), Steps: []VisualStep{
			{Label: fmt.Sprintf("%d^%d", n, exp), Value: chain},
			{Label: "Answer", Value: result, Highlight: true},
		}},
	}
}

func nearBaseSquare(n, base, diff int) *Hint {
	sign := "+"
	gap := fmt.Sprint(diff)
	if diff < 0 {
		sign = "-"
		gap = fmt.Sprintf("(%d)", diff)
	}
	cross := abs(2 * base * diff)
	return &Hint{
		Text: fmt.Sprintf("**Near %d Trick**:\n%d² = %d² + 2×%d×%s + %d²\n     = %d %s %d + %d\n     = %d",
			base, n, base, base, gap, abs(diff), base*base, sign, cross, diff*diff, n*n),
		Visual: &Visual{Title: fmt.Sprintf("Near %d Method", base), Steps: []VisualStep{
			{Label: fmt.Sprintf("%d²", base), Value: itoa(base * base)},
			{Label: fmt.Sprintf("2×%d×%d", base, abs(diff)), Value: itoa(cross), Operation: sign},
			{Label: fmt.Sprintf("%d²", abs(diff)), Value: itoa(diff * diff), Operation: "+"},
			{Label: "Answer", Value: itoa(n * n), Highlight: true},
		}},
	}
}

// rootEndings maps the last digit of a perfect square to the possible last
// digits of its root.
var rootEndings = map[int]string{
	0: "0",
	1: "1 or 9",
	4: "2 or 8",
	5: "5",
	6: "4 or 6",
	9: "3 or 7",
}

func root(f facts) *Hint {
	n := f.a
	if n < 0 {
		return nil
	}
	sq := math.Sqrt(n)
	if r := int(sq); f.integers && r*r == f.ai {
		lower := int(math.Sqrt(n/100)) * 10
		upper := lower + 10
		last := f.ai % 10
		endings, ok := rootEndings[last]
		if !ok {
			endings = "no whole number"
		}
		return &Hint{
			Text: fmt.Sprintf("**Square Root Strategy**:\n√%d = ?\nStep 1: Bracket it: %d² = %d, %d² = %d\nStep 2: Last digit %d → root ends in %s\nStep 3: Try %d² = %d ✓\nAnswer: %d",
				f.ai, lower, lower*lower, upper, upper*upper, last, endings, r, r*r, r),
			Visual: &Visual{Title: "Square Root Estimation", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d²", lower), Value: itoa(lower * lower)},
				{Label: fmt.Sprintf("%d²", upper), Value: itoa(upper * upper)},
				{Label: "Ends in: " + endings},
				{Label: "Answer", Value: itoa(r), Highlight: true},
			}},
		}
	}

	lower, upper := int(math.Floor(sq)), int(math.Ceil(sq))
	approx := math.Round(sq*10) / 10
	return &Hint{
		Text: fmt.Sprintf("**Estimate the Square Root**:\n√%s is between %d and %d\n%d² = %d\n%d² = %d\nApproximately %s",
			num(n), lower, upper, lower, lower*lower, upper, upper*upper, num(approx)),
		Visual: &Visual{Title: "Square Root Estimation", Steps: []VisualStep{
			{Label: fmt.Sprintf("%d²", lower), Value: itoa(lower * lower)},
			{Label: fmt.Sprintf("%d²", upper), Value: itoa(upper * upper)},
			{Label: "Approx", Value: num(approx), Highlight: true},
		}},
	}
}
