package hints

import (
	"fmt"
	"math"
)

func (l *Library) addition(f facts) *Hint {
	if !f.integers {
		return lineUpDecimals("Add")
	}
	a, b := f.ai, f.bi
	switch {
	case a > 90 && a < 100:
		diff := 100 - a
		return &Hint{
			Text: fmt.Sprintf("**Compensation**: %d is close to 100. Add 100, then subtract %d.", a, diff),
			Visual: &Visual{Title: "Compensation", Steps: []VisualStep{
				{Label: fmt.Sprintf("100 + %d", b), Value: itoa(100 + b)},
				{Label: fmt.Sprintf("- %d", diff), Value: itoa(100 + b - diff), Highlight: true},
			}},
		}
	case b > 90 && b < 100:
		diff := 100 - b
		return &Hint{
			Text: fmt.Sprintf("**Compensation**: %d is close to 100. Add 100, then subtract %d.", b, diff),
			Visual: &Visual{Title: "Compensation", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d + 100", a), Value: itoa(a + 100)},
				{Label: fmt.Sprintf("- %d", diff), Value: itoa(a + 100 - diff), Highlight: true},
			}},
		}
	}

	name := "Break Into Chunks"
	if a > 90 || b > 90 || a%10 > 7 || b%10 > 7 {
		name = "Round and Adjust"
	}
	if h := l.fromDataset("addition", name); h != nil {
		return h
	}

	tens1, ones1 := a/10*10, a%10
	tens2, ones2 := b/10*10, b%10
	tensSum, onesSum := tens1+tens2, ones1+ones2
	return &Hint{
		Text: fmt.Sprintf("**Break It Down**: Add the tens, then the ones.\n%d + %d = %d\n%d + %d = %d\n%d + %d = %d",
			tens1, tens2, tensSum, ones1, ones2, onesSum, tensSum, onesSum, a+b),
		Visual: &Visual{Title: "Break It Down", Steps: []VisualStep{
			{Label: fmt.Sprintf("%d + %d", tens1, tens2), Value: itoa(tensSum)},
			{Label: fmt.Sprintf("%d + %d", ones1, ones2), Value: itoa(onesSum), Operation: "+"},
			{Label: "Total", Value: itoa(a + b), Highlight: true},
		}},
	}
}

func (l *Library) subtraction(f facts) *Hint {
	if !f.integers {
		return lineUpDecimals("Subtract")
	}
	a, b := f.ai, f.bi
	if b > 90 && b < 100 {
		diff := 100 - b
		return &Hint{
			Text: fmt.Sprintf("**Compensation**: Subtract 100, then add back %d.", diff),
			Visual: &Visual{Title: "Compensation", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d - 100", a), Value: itoa(a - 100)},
				{Label: fmt.Sprintf("+ %d", diff), Value: itoa(a - 100 + diff), Highlight: true},
			}},
		}
	}

	if nextTen := (b + 9) / 10 * 10; nextTen < a {
		up1, up2 := nextTen-b, a-nextTen
		return &Hint{
			Text: fmt.Sprintf("**Count Up**:\n%d → %d (+%d)\n%d → %d (+%d)\nTotal: %d + %d = %d",
				b, nextTen, up1, nextTen, a, up2, up1, up2, a-b),
			Visual: &Visual{Title: "Count Up", Steps: []VisualStep{
				{Label: "Start", Value: itoa(b)},
				{Label: "Next ten", Value: itoa(nextTen), Operation: fmt.Sprintf("+%d", up1)},
				{Label: "Target", Value: itoa(a), Operation: fmt.Sprintf("+%d", up2)},
				{Label: "Total", Value: itoa(a - b), Highlight: true},
			}},
		}
	}

	switch {
	case b%10 > 7:
		if h := l.fromDataset("subtraction", "Compensation (Round & Adjust)"); h != nil {
			return h
		}
	case b >= 10:
		if h := l.fromDataset("subtraction", "Break and Subtract"); h != nil {
			return h
		}
	}

	return &Hint{
		Text: fmt.Sprintf("**Think Addition**: %d + ? = %d. Count up from %d.", b, a, b),
		Visual: &Visual{Title: "Think Addition", Steps: []VisualStep{
			{Label: fmt.Sprintf("%d + ?", b), Value: itoa(a)},
			{Label: "Answer", Value: itoa(a - b), Highlight: true},
		}},
	}
}

func (l *Library) multiplication(f facts) *Hint {
	if !f.integers {
		if f.b == 10 || f.b == 100 {
			places := 1
			if f.b == 100 {
				places = 2
			}
			return &Hint{
				Text: fmt.Sprintf("**Shift the Decimal**: ×%s moves the decimal point %d place(s) to the right.\n%s → %s",
					num(f.b), places, num(f.a), num(math.Round(f.a*f.b*10)/10)),
			}
		}
		return nil
	}
	if h := specialMultiplier(f.ai, f.bi); h != nil {
		return h
	}

	a, b := f.ai, f.bi
	switch {
	case b >= 90 && b <= 99:
		diff := 100 - b
		return nearHundred(fmt.Sprintf("%d × 100", a), a*100, fmt.Sprintf("- (%d × %d)", a, diff), a*diff)
	case a >= 90 && a <= 99:
		diff := 100 - a
		return nearHundred(fmt.Sprintf("100 × %d", b), 100*b, fmt.Sprintf("- (%d × %d)", diff, b), diff*b)
	}

	if a > 10 && b > 10 && a < 100 && b < 100 {
		if h := roundAndAdjust(a, b); h != nil {
			return h
		}
	}

	switch {
	case a >= 100:
		if h := l.fromDataset("multiplication", "Break Apart (Distributive Property)"); h != nil {
			return h
		}
	case a%2 == 0 && b%2 == 0 && a >= 10:
		if h := l.fromDataset("multiplication", "Doubling and Halving"); h != nil {
			return h
		}
	}

	tens, ones := a/10*10, a%10
	if tens > 0 && ones > 0 {
		return &Hint{
			Text: fmt.Sprintf("**Break It Down**:\n%d × %d = %d\n%d × %d = %d\n%d + %d = %d",
				tens, b, tens*b, ones, b, ones*b, tens*b, ones*b, a*b),
			Visual: &Visual{Title: "Break It Down", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d × %d", tens, b), Value: itoa(tens * b)},
				{Label: fmt.Sprintf("%d × %d", ones, b), Value: itoa(ones * b), Operation: "+"},
				{Label: "Total", Value: itoa(a * b), Highlight: true},
			}},
		}
	}
	if a < 10 {
		return &Hint{Text: fmt.Sprintf("**Times Tables**: Recall %d × %d from your tables, or count up in %ds.", a, b, a)}
	}
	return &Hint{Text: fmt.Sprintf("**Break It Down**: Think of %d × %d in chunks: (%d × %d) + (%d × %d).", a, b, tens, b, ones, b)}
}

// specialMultiplier covers the ×11, ×5, ×4, ×9 and ×8 tricks, in that order.
func specialMultiplier(a, b int) *Hint {
	switch {
	case b == 11 && a < 100:
		d1, d2 := a/10, a%10
		middle := d1 + d2
		carry := ""
		if middle >= 10 {
			carry = fmt.Sprintf(" (carry %d)", middle/10)
		}
		return &Hint{
			Text: fmt.Sprintf("**11s Trick**: Split the digits and put their sum in the middle.\n%d | %d | %d%s", d1, middle, d2, carry),
			Visual: &Visual{Title: "11s Trick", Steps: []VisualStep{
				{Label: "First digit", Value: itoa(d1)},
				{Label: "Sum (middle)", Value: itoa(middle)},
				{Label: "Last digit", Value: itoa(d2)},
				{Label: "Result", Value: itoa(a * 11), Highlight: true},
			}},
		}
	case b == 5:
		return &Hint{
			Text: "**5s Trick**: Multiply by 10, then halve.",
			Visual: &Visual{Title: "×5 = ×10 ÷ 2", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d × 10", a), Value: itoa(a * 10)},
				{Label: "÷ 2", Value: num(float64(a*10) / 2), Highlight: true},
			}},
		}
	case b == 4:
		return &Hint{
			Text: "**Double Double**: Double it, then double again.",
			Visual: &Visual{Title: "×4 = Double Double", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d × 2", a), Value: itoa(a * 2)},
				{Label: fmt.Sprintf("%d × 2", a*2), Value: itoa(a * 4), Highlight: true},
			}},
		}
	case b == 9:
		return &Hint{
			Text: "**9s Trick**: Multiply by 10, then take one away.",
			Visual: &Visual{Title: "×9 = ×10 - n", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d × 10", a), Value: itoa(a * 10)},
				{Label: fmt.Sprintf("- %d", a), Value: itoa(a * 9), Highlight: true},
			}},
		}
	case b == 8:
		return &Hint{
			Text: "**8s Trick**: Double three times.",
			Visual: &Visual{Title: "×8 = Triple Double", Steps: []VisualStep{
				{Label: fmt.Sprintf("%d × 2", a), Value: itoa(a * 2)},
				{Label: "× 2", Value: itoa(a * 4)},
				{Label: "× 2", Value: itoa(a * 8), Highlight: true},
			}},
		}
	}
	return nil
}

func nearHundred(label1 string, step1 int, label2 string, step2 int) *Hint {
	return &Hint{
		Text: "**Near 100**: Multiply by 100, then take off the extra.",
		Visual: &Visual{Title: "Near 100", Steps: []VisualStep{
			{Label: label1, Value: itoa(step1)},
			{Label: label2, Value: itoa(step2), Operation: "-"},
			{Label: "Result", Value: itoa(step1 - step2), Highlight: true},
		}},
	}
}

// roundAndAdjust rounds whichever operand is not already a multiple of ten.
func roundAndAdjust(a, b int) *Hint {
	if r := roundTen(a); r != a {
		diff := a - r
		return adjustHint(fmt.Sprintf("(%d × %d)", r, b), r*b, fmt.Sprintf("(%d × %d)", abs(diff), b), abs(diff)*b, diff > 0)
	}
	if r := roundTen(b); r != b {
		diff := b - r
		return adjustHint(fmt.Sprintf("(%d × %d)", a, r), a*r, fmt.Sprintf("(%d × %d)", a, abs(diff)), a*abs(diff), diff > 0)
	}
	return nil
}

func adjustHint(base string, baseVal int, fix string, fixVal int, add bool) *Hint {
	if add {
		return &Hint{Text: fmt.Sprintf("**Round & Adjust**: %s + %s. Start with %d, then add %d.", base, fix, baseVal, fixVal)}
	}
	return &Hint{Text: fmt.Sprintf("**Round & Adjust**: %s - %s. Start with %d, then subtract %d.", base, fix, baseVal, fixVal)}
}

func division(f facts) *Hint {
	a, b := f.ai, f.bi
	if b == 0 {
		return nil
	}
	q, rem := a/b, a%b
	remainder := ""
	if rem > 0 {
		remainder = fmt.Sprintf(" remainder %d", rem)
	}

	if b <= 12 {
		anchor := 0
		switch {
		case 10*b <= a:
			anchor = 10
		case 5*b <= a:
			anchor = 5
		}
		if anchor > 0 {
			rest := (a - anchor*b) / b
			return &Hint{
				Text: fmt.Sprintf("**Think Multiplication**:\n? × %d = %d\nStep 1: %d × %d = %d\nStep 2: %d × %d = %d\nAnswer: %d + %d = %d%s",
					b, a, anchor, b, anchor*b, rest, b, rest*b, anchor, rest, q, remainder),
				Visual: &Visual{Title: "Think Multiplication", Steps: []VisualStep{
					{Label: fmt.Sprintf("%d × %d", anchor, b), Value: itoa(anchor * b)},
					{Label: fmt.Sprintf("%d × %d", rest, b), Value: itoa(rest * b), Operation: "+"},
					{Label: "Total", Value: itoa(q), Highlight: true},
				}},
			}
		}
	}

	return &Hint{
		Text: fmt.Sprintf("**Think Multiplication**:\n? × %d = %d\nWhat number times %d makes %d?\nAnswer: %d%s", b, a, b, a, q, remainder),
		Visual: &Visual{Title: "Think Multiplication", Steps: []VisualStep{
			{Label: fmt.Sprintf("? × %d", b), Value: itoa(a)},
			{Label: "Answer", Value: itoa(q), Highlight: true},
		}},
	}
}

func lineUpDecimals(verb string) *Hint {
	return &Hint{
		Text: fmt.Sprintf("**Line Up Decimals**: Line up the decimal points. %s tenths from tenths, then the ones.", verb),
		Visual: &Visual{Title: "Align Decimals", Steps: []VisualStep{
			{Label: "Line up the decimal points"},
			{Label: verb + " column by column", Highlight: true},
		}},
	}
}

func roundTen(n int) int { return int(math.Round(float64(n)/10)) * 10 }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
