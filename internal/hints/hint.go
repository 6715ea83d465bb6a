// Package hints produces strategy hints for practice problems: numeric
// pattern tricks first, then named strategies from the embedded dataset,
// then a general mental-math tip.
package hints

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

// Hint is a strategy hint. Text uses **bold** spans and newlines.
type Hint struct {
	Text   string
	Visual *Visual
}

// Visual is an ordered breakdown to render alongside the text.
type Visual struct {
	Title string
	Steps []VisualStep
}

// VisualStep is one row of a breakdown.
type VisualStep struct {
	Label     string
	Value     string
	Operation string
	Highlight bool
}

// ObserverFunc is called the first time a Library builds a hint for a
// skill type.
type ObserverFunc func(skillgraph.SkillType)

// Library builds hints. It is safe for concurrent use.
type Library struct {
	dataset  *Dataset
	src      mathrand.Source
	logger   *slog.Logger
	observer ObserverFunc

	mu   sync.Mutex
	seen map[skillgraph.SkillType]bool
}

// Option configures a Library.
type Option func(*libraryConfig)

type libraryConfig struct {
	data     []byte
	src      mathrand.Source
	logger   *slog.Logger
	observer ObserverFunc
}

// WithDataset replaces the embedded strategy dataset.
func WithDataset(data []byte) Option {
	return func(c *libraryConfig) { c.data = data }
}

// WithSource sets the random source used to pick general tips.
func WithSource(src mathrand.Source) Option {
	return func(c *libraryConfig) { c.src = src }
}

// WithLogger sets the logger for first-occurrence events.
func WithLogger(l *slog.Logger) Option {
	return func(c *libraryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers a first-occurrence callback.
func WithObserver(fn ObserverFunc) Option {
	return func(c *libraryConfig) { c.observer = fn }
}

// New loads and validates the strategy dataset.
func New(opts ...Option) (*Library, error) {
	cfg := libraryConfig{
		data:   defaultDataset,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.src == nil {
		cfg.src = mathrand.NewTimeSeeded()
	}

	ds, err := ParseDataset(cfg.data)
	if err != nil {
		return nil, err
	}
	return &Library{
		dataset:  ds,
		src:      cfg.src,
		logger:   cfg.logger,
		observer: cfg.observer,
		seen:     make(map[skillgraph.SkillType]bool),
	}, nil
}

// Dataset returns the loaded strategy dataset.
func (l *Library) Dataset() *Dataset { return l.dataset }

// Hint returns a hint for p. It never returns an empty text.
func (l *Library) Hint(p *problemgen.Problem) Hint {
	l.noteFirst(p.SkillType)

	f := factsOf(p)
	var h *Hint
	switch p.SkillType {
	case skillgraph.TypeAddition:
		h = l.addition(f)
	case skillgraph.TypeSubtraction:
		h = l.subtraction(f)
	case skillgraph.TypeMultiplication:
		h = l.multiplication(f)
	case skillgraph.TypeDivision:
		h = division(f)
	case skillgraph.TypeFractionSimplification:
		h = fractionSimplification(p)
	case skillgraph.TypeFractionAddition:
		h = fractionAddition()
	case skillgraph.TypeDecimal:
		h = decimalAlignment()
	case skillgraph.TypePercentage:
		h = l.percentage(f)
	case skillgraph.TypePowers:
		h = l.power(f)
	case skillgraph.TypeRoots:
		h = root(f)
	}
	if h == nil || h.Text == "" {
		return l.generalTip()
	}
	return *h
}

func (l *Library) noteFirst(t skillgraph.SkillType) {
	l.mu.Lock()
	first := !l.seen[t]
	l.seen[t] = true
	l.mu.Unlock()

	if !first {
		return
	}
	l.logger.Info("hint.first", "skill_type", string(t))
	if l.observer != nil {
		l.observer(t)
	}
}

// generalTip picks a random protocol from the manual.
func (l *Library) generalTip() Hint {
	p := mathrand.Pick(l.src, manual.Protocols)
	return Hint{Text: fmt.Sprintf("**%s**: %s", p.Title, p.Tactic)}
}

// fromDataset renders a named strategy, or nil if the dataset lacks it.
func (l *Library) fromDataset(op, name string) *Hint {
	s, ok := l.dataset.Find(op, name)
	if !ok || len(s.Examples) == 0 {
		return nil
	}
	return renderStrategy(s)
}

func renderStrategy(s Strategy) *Hint {
	ex := s.Examples[0]

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s):\n%s\n\n**Example:** %s\n%s", s.Name, s.Alias, s.BestFor, ex.Problem, strings.Join(ex.Steps, "\n"))
	if s.Caution != "" {
		fmt.Fprintf(&b, "\n\n**Watch out:** %s", s.Caution)
	}
	if s.ProTip != "" {
		fmt.Fprintf(&b, "\n**Pro tip:** %s", s.ProTip)
	}

	steps := make([]VisualStep, len(ex.Steps))
	last := len(ex.Steps) - 1
	for i, line := range ex.Steps {
		if label, value, ok := strings.Cut(line, ":"); ok {
			steps[i] = VisualStep{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value), Highlight: i == last}
			continue
		}
		steps[i] = VisualStep{Label: fmt.Sprintf("Step %d", i+1), Value: line, Highlight: i == last}
	}
	return &Hint{Text: b.String(), Visual: &Visual{Title: s.Alias, Steps: steps}}
}

// facts are the numeric operands of a problem.
type facts struct {
	a, b      float64
	ai, bi    int
	integers  bool
	hasSecond bool
}

func factsOf(p *problemgen.Problem) facts {
	f := facts{a: p.Operand1.Float(), hasSecond: p.Operand2 != nil}
	f.integers = p.Operand1.IsInteger()
	if f.hasSecond {
		f.b = p.Operand2.Float()
		f.integers = f.integers && p.Operand2.IsInteger()
	}
	f.ai, f.bi = int(f.a), int(f.b)
	return f
}

func itoa(n int) string { return fmt.Sprint(n) }

func num(v float64) string { return problemgen.FormatNumber(v) }
