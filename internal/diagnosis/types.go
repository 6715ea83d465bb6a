package diagnosis

import "github.com/abhisek/mentalmath/internal/problemgen"

// Kind tags the likely cause of a wrong answer.
type Kind string

const (
	KindCarrying    Kind = "CARRYING_ERROR"
	KindBorrowing   Kind = "BORROWING_ERROR"
	KindSign        Kind = "SIGN_ERROR"
	KindOffByOne    Kind = "OFF_BY_ONE"
	KindCalculation Kind = "CALCULATION_ERROR"
	KindUnknown     Kind = "UNKNOWN"
)

// AllKinds returns every kind in classification priority order.
func AllKinds() []Kind {
	return []Kind{KindUnknown, KindOffByOne, KindCarrying, KindBorrowing, KindSign, KindCalculation}
}

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Problem *problemgen.Problem
	Answer  float64 // learner's parsed answer
	Correct float64 // problem answer as a number
}

// Diff returns the absolute difference between the correct and the
// submitted answer.
func (in *ClassifyInput) Diff() float64 {
	d := in.Correct - in.Answer
	if d < 0 {
		return -d
	}
	return d
}
