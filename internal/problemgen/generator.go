package problemgen

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// ErrGenerationExhausted is returned when no valid problem could be built
// within the attempt budget.
var ErrGenerationExhausted = errors.New("problem generation exhausted")

// DefaultMaxAttempts bounds every retry loop in the generator.
const DefaultMaxAttempts = 50

// defaultRange applies when a caller passes a zero range.
var defaultRange = skillgraph.Range{Min: 1, Max: 10}

// percentChoices is the curated set of "clean" percents.
var percentChoices = []int{10, 20, 25, 50, 75, 27, 15, 40}

// errRetry signals a degenerate draw that should be redrawn.
var errRetry = errors.New("retry")

// Generator builds problems for a skill type. It is not safe for
// concurrent use because the random source is not; use one Generator per
// session (see GenerateBatch for concurrent worksheets).
type Generator struct {
	src         mathrand.Source
	validators  []Validator
	maxAttempts int
	logger      *slog.Logger
	newID       func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithValidators replaces the validator chain.
func WithValidators(v ...Validator) Option {
	return func(g *Generator) { g.validators = v }
}

// WithMaxAttempts sets the retry budget.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithIDFunc overrides problem ID generation (tests).
func WithIDFunc(f func() string) Option {
	return func(g *Generator) { g.newID = f }
}

// DefaultValidators returns the standard validator chain.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&MathCheckValidator{},
	}
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src mathrand.Source, opts ...Option) *Generator {
	g := &Generator{
		src:         src,
		validators:  DefaultValidators(),
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.DiscardHandler),
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Source exposes the generator's random source so collaborators in the
// same session (selection, phrasing) draw from one sequence.
func (g *Generator) Source() mathrand.Source { return g.src }

// Generate builds a problem of the given type. A zero range defaults to
// [1, 10]; level drives the size of fraction and percentage problems.
// Unknown types fall back to addition.
func (g *Generator) Generate(t skillgraph.SkillType, level int, r skillgraph.Range) (*Problem, error) {
	if r.IsZero() {
		r = defaultRange
	}
	if r.Min == 0 {
		r.Min = defaultRange.Min
	}
	if r.Max == 0 {
		r.Max = defaultRange.Max
	}
	if level < 1 {
		level = 1
	}
	return g.validated(t, func() (*Problem, error) {
		return g.build(t, level, r)
	})
}

// validated runs build until the validator chain accepts a problem or the
// attempt budget is spent.
func (g *Generator) validated(t skillgraph.SkillType, build func() (*Problem, error)) (*Problem, error) {
	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		p, err := build()
		if errors.Is(err, errRetry) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}
		if verr := g.runValidators(p); verr != nil {
			if !verr.Retryable {
				return nil, verr
			}
			g.logger.Debug("generated problem rejected",
				"type", t, "validator", verr.Validator, "message", verr.Message, "attempt", attempt)
			lastErr = verr
			continue
		}
		p.ID = g.newID()
		return p, nil
	}
	g.logger.Warn("problem generation exhausted", "type", t, "attempts", g.maxAttempts)
	return nil, fmt.Errorf("%w: %s after %d attempts: %v", ErrGenerationExhausted, t, g.maxAttempts, lastErr)
}

func (g *Generator) runValidators(p *Problem) *ValidationError {
	for _, v := range g.validators {
		if err := v.Validate(p); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) build(t skillgraph.SkillType, level int, r skillgraph.Range) (*Problem, error) {
	switch t {
	case skillgraph.TypeFractionSimplification:
		return g.fractionSimplification(level)
	case skillgraph.TypeFractionAddition:
		return g.fractionAddition(), nil
	case skillgraph.TypePercentage:
		return g.percentage(level, r), nil
	case skillgraph.TypeDecimal:
		return g.decimal(), nil
	case skillgraph.TypePowers:
		return g.power(), nil
	case skillgraph.TypeRoots:
		return g.root(), nil
	}

	a := mathrand.Between(g.src, r.Min, r.Max)
	b := mathrand.Between(g.src, r.Min, r.Max)

	switch t {
	case skillgraph.TypeSubtraction:
		if b > a {
			a, b = b, a
		}
		return binary(t, level, a, OpSubtract, b, a-b), nil
	case skillgraph.TypeMultiplication:
		return binary(t, level, a, OpMultiply, b, a*b), nil
	case skillgraph.TypeDivision:
		if a == 0 {
			return nil, errRetry
		}
		// a is the divisor, b the quotient.
		return binary(t, level, a*b, OpDivide, a, b), nil
	default:
		return binary(skillgraph.TypeAddition, level, a, OpAdd, b, a+b), nil
	}
}

func binary(t skillgraph.SkillType, level, a int, op string, b, answer int) *Problem {
	return &Problem{
		SkillType: t,
		Operand1:  Number(float64(a)),
		Operand2:  operandPtr(Number(float64(b))),
		Operator:  op,
		Answer:    NumberAnswer(float64(answer)),
		Level:     level,
	}
}

func (g *Generator) fractionSimplification(level int) (*Problem, error) {
	for i := 0; i < g.maxAttempts; i++ {
		divisor := g.src.IntN(level+1) + 2
		reducedNum := g.src.IntN(5) + 1
		reducedDen := reducedNum + g.src.IntN(5) + 1
		if c := GCD(reducedNum, reducedDen); c > 1 {
			reducedNum /= c
			reducedDen /= c
		}
		num, den := reducedNum*divisor, reducedDen*divisor
		if num >= den {
			continue
		}
		return &Problem{
			SkillType: skillgraph.TypeFractionSimplification,
			Operand1:  Fraction(num, den),
			Operator:  OpSimplify,
			Answer:    TextAnswer(fmt.Sprintf("%d/%d", reducedNum, reducedDen)),
			Level:     level,
		}, nil
	}
	return nil, errRetry
}

// fractionAddition draws like fractions whose numerators sum below the
// denominator. A denominator of 2 cannot satisfy that, so d is in [3, 9].
func (g *Generator) fractionAddition() *Problem {
	den := g.src.IntN(7) + 3
	n1 := g.src.IntN(den-2) + 1
	n2 := g.src.IntN(den-1-n1) + 1
	return &Problem{
		SkillType: skillgraph.TypeFractionAddition,
		Operand1:  Fraction(n1, den),
		Operand2:  operandPtr(Fraction(n2, den)),
		Operator:  OpAdd,
		Answer:    TextAnswer(fmt.Sprintf("%d/%d", n1+n2, den)),
	}
}

func (g *Generator) percentage(level int, r skillgraph.Range) *Problem {
	var allowed []int
	for _, p := range percentChoices {
		if p >= r.Min && p <= r.Max {
			allowed = append(allowed, p)
		}
	}
	if len(allowed) == 0 {
		allowed = []int{10}
	}
	pct := mathrand.Pick(g.src, allowed)
	base := g.percentBase(pct, level)
	return &Problem{
		SkillType: skillgraph.TypePercentage,
		Operand1:  Percent(float64(pct)),
		Operand2:  operandPtr(Number(float64(base))),
		Operator:  OpPercent,
		// Multiply first so integer percents of integer bases stay exact.
		Answer: NumberAnswer(float64(pct*base) / 100),
		Level:  level,
	}
}

// percentBase picks a base that keeps pct% of it a clean number.
func (g *Generator) percentBase(pct, level int) int {
	draw := func(k, multiple int) int {
		return (g.src.IntN(k) + 1) * multiple
	}
	switch pct {
	case 10:
		return draw(10*level, 10)
	case 20:
		return draw(10*level, 5)
	case 25, 75:
		return draw(5*level, 4)
	case 50:
		return draw(10*level, 2)
	case 15:
		return draw(2*level, 20)
	case 40:
		return draw(4*level, 5)
	case 27:
		return draw(level, 100)
	default:
		return draw(10*level, 10)
	}
}

func (g *Generator) decimal() *Problem {
	if g.src.Float64() < 0.5 {
		a := float64(g.src.IntN(20)+1) / 10
		b := float64(g.src.IntN(20)+1) / 10
		if g.src.Float64() > 0.5 {
			return &Problem{
				SkillType: skillgraph.TypeAddition,
				Operand1:  Number(a),
				Operand2:  operandPtr(Number(b)),
				Operator:  OpAdd,
				Answer:    NumberAnswer(roundTo(a+b, 1)),
			}
		}
		if b > a {
			a, b = b, a
		}
		return &Problem{
			SkillType: skillgraph.TypeSubtraction,
			Operand1:  Number(a),
			Operand2:  operandPtr(Number(b)),
			Operator:  OpSubtract,
			Answer:    NumberAnswer(roundTo(a-b, 1)),
		}
	}

	a := float64(g.src.IntN(100)+1) / 10
	mult := 100.0
	if g.src.Float64() > 0.5 {
		mult = 10
	}
	return &Problem{
		SkillType: skillgraph.TypeMultiplication,
		Operand1:  Number(a),
		Operand2:  operandPtr(Number(mult)),
		Operator:  OpMultiply,
		Answer:    NumberAnswer(roundTo(a*mult, 1)),
	}
}

func (g *Generator) power() *Problem {
	var base, exp int
	if g.src.Float64() > 0.8 {
		base, exp = g.src.IntN(5)+1, 3
	} else {
		base, exp = g.src.IntN(15)+1, 2
	}
	answer := 1
	for i := 0; i < exp; i++ {
		answer *= base
	}
	return &Problem{
		SkillType: skillgraph.TypePowers,
		Operand1:  Number(float64(base)),
		Operand2:  operandPtr(Number(float64(exp))),
		Operator:  OpPower,
		Answer:    NumberAnswer(float64(answer)),
	}
}

func (g *Generator) root() *Problem {
	root := g.src.IntN(100) + 1
	return &Problem{
		SkillType: skillgraph.TypeRoots,
		Operand1:  Number(float64(root * root)),
		Operator:  OpRoot,
		Answer:    NumberAnswer(float64(root)),
	}
}
