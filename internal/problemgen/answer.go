package problemgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numericTolerance absorbs float noise in generated decimal answers.
const numericTolerance = 1e-9

// CheckAnswer compares the learner's input against the problem's answer.
//
// Numeric answers are compared by parsed value, so "7", "7.0" and " 07 "
// all match 7. String answers (fractions) must match exactly after
// trimming whitespace. Unparseable input is simply incorrect.
func CheckAnswer(raw string, p *Problem) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !p.Answer.Numeric {
		return raw == strings.TrimSpace(p.Answer.Text)
	}
	v, ok := ParseNumber(raw)
	if !ok {
		return false
	}
	return math.Abs(v-p.Answer.Value) < numericTolerance
}

// ParseNumber parses a learner's numeric input.
func ParseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseValue parses a number or an "a/b" fraction into its value.
func ParseValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if v, ok := ParseNumber(raw); ok {
		return v, true
	}
	num, den, err := parseFraction(raw)
	if err != nil {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// Float returns the answer as a number. String answers are parsed as
// fractions; ok is false if that fails.
func (a Answer) Float() (float64, bool) {
	if a.Numeric {
		return a.Value, true
	}
	return ParseValue(a.Text)
}

// ParseInteger parses a learner's whole-number input, as the placement
// battery grades it.
func ParseInteger(raw string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	if den == 0 {
		return 0, 0, fmt.Errorf("zero denominator")
	}
	return num, den, nil
}

// EquivalentFraction reports whether raw is a fraction equal in value to
// the problem's fraction answer, e.g. "2/4" for "1/2". Grading still
// requires lowest terms; the drill uses this to say so.
func EquivalentFraction(raw string, p *Problem) bool {
	if p.Answer.Numeric {
		return false
	}
	an, ad, err := parseFraction(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	bn, bd, err := parseFraction(p.Answer.Text)
	if err != nil {
		return false
	}
	return an*bd == bn*ad
}

// GCD returns the greatest common divisor of a and b, ignoring signs.
func GCD(a, b int) int {
	return int(gcd(abs(int64(a)), abs(int64(b))))
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
