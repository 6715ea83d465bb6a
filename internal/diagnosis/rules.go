package diagnosis

import "github.com/abhisek/mentalmath/internal/problemgen"

// OffByOneClassifier flags answers exactly one away from correct.
type OffByOneClassifier struct{}

func (c *OffByOneClassifier) Name() string { return "off-by-one" }

func (c *OffByOneClassifier) Classify(in *ClassifyInput) Kind {
	if in.Diff() == 1 {
		return KindOffByOne
	}
	return ""
}

// CarryingClassifier flags additions that are off by exactly ten, the
// signature of a dropped carry.
type CarryingClassifier struct{}

func (c *CarryingClassifier) Name() string { return "carrying" }

func (c *CarryingClassifier) Classify(in *ClassifyInput) Kind {
	if in.Problem.Operator == problemgen.OpAdd && in.Diff() == 10 {
		return KindCarrying
	}
	return ""
}

// BorrowingClassifier flags subtractions that are off by exactly ten.
// Only the difference is consulted, not the digit columns.
type BorrowingClassifier struct{}

func (c *BorrowingClassifier) Name() string { return "borrowing" }

func (c *BorrowingClassifier) Classify(in *ClassifyInput) Kind {
	if in.Problem.Operator == problemgen.OpSubtract && in.Diff() == 10 {
		return KindBorrowing
	}
	return ""
}

// SignClassifier flags products and quotients with the sign flipped.
type SignClassifier struct{}

func (c *SignClassifier) Name() string { return "sign" }

func (c *SignClassifier) Classify(in *ClassifyInput) Kind {
	switch in.Problem.Operator {
	case problemgen.OpMultiply, problemgen.OpDivide, "x", "*", "/":
		if in.Correct != 0 && in.Answer == -in.Correct {
			return KindSign
		}
	}
	return ""
}
