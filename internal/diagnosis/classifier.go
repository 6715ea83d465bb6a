package diagnosis

import (
	"github.com/abhisek/mentalmath/internal/problemgen"
)

// Classifier is a single error-pattern rule.
// Returns the matching kind, or "" if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) Kind
}

// DefaultClassifiers returns the rules in priority order. The first match
// wins, so a one-off slip on an addition is never read as a carry.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&OffByOneClassifier{},
		&CarryingClassifier{},
		&BorrowingClassifier{},
		&SignClassifier{},
	}
}

// RunClassifiers executes classifiers in order.
// Returns the first match and the rule name, or ("", "") if no rule applies.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (Kind, string) {
	for _, c := range classifiers {
		if k := c.Classify(input); k != "" {
			return k, c.Name()
		}
	}
	return "", ""
}

// Classify tags a wrong answer with a best-effort error kind. These are
// numeric-difference patterns, not a trace of the learner's working: a
// difference of ten on an addition is called a carrying error whether or
// not the learner actually dropped a carry.
//
// Input that is not a number (or a fraction) is UNKNOWN.
func Classify(p *problemgen.Problem, raw string) Kind {
	answer, ok := problemgen.ParseValue(raw)
	if !ok {
		return KindUnknown
	}
	correct, ok := p.Answer.Float()
	if !ok {
		return KindCalculation
	}
	return ClassifyValue(p, answer, correct)
}

// ClassifyValue is Classify for an already-parsed answer.
func ClassifyValue(p *problemgen.Problem, answer, correct float64) Kind {
	in := &ClassifyInput{Problem: p, Answer: answer, Correct: correct}
	if k, _ := RunClassifiers(DefaultClassifiers(), in); k != "" {
		return k
	}
	return KindCalculation
}
