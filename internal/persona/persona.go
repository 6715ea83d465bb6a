// Package persona phrases answer feedback in a coach's voice.
package persona

import "github.com/abhisek/mentalmath/internal/mathrand"

// Speed thresholds for correct answers, in seconds.
const (
	FastSeconds   = 2.0
	NormalSeconds = 5.0
)

// Bucket classifies an answer for phrasing.
type Bucket string

const (
	CorrectFast    Bucket = "correct_fast"
	CorrectNormal  Bucket = "correct_normal"
	CorrectSlow    Bucket = "correct_slow"
	IncorrectClose Bucket = "incorrect_close"
	IncorrectFar   Bucket = "incorrect_far"
)

var lines = map[Bucket][]string{
	CorrectFast: {
		"Lightning! Can you go even faster?",
		"Quick and clean. Keep that rhythm.",
		"That was instant. Nice work.",
		"Speedy and spot on!",
		"You didn't even blink. Great job.",
	},
	CorrectNormal: {
		"Correct. On to the next one.",
		"Right answer. Now bring a little more pace.",
		"Solid. Let's do another.",
		"Nicely handled.",
		"Yes, that's it.",
	},
	CorrectSlow: {
		"You got there. Next time, trust yourself sooner.",
		"Right answer. Let's work on the speed.",
		"Correct, but take fewer detours.",
		"A win is a win. Now let's make it quicker.",
		"Good persistence. Speed will come with practice.",
	},
	IncorrectClose: {
		"So close! Check that last step.",
		"Almost. A small slip somewhere.",
		"Nearly there. Recheck your ones digit.",
		"Just off. Slow down at the finish.",
		"You know this one. Tighten it up.",
	},
	IncorrectFar: {
		"Not quite. Let's break it down.",
		"That's a long way off. Try a different strategy.",
		"Miss. Take a breath and try the hint.",
		"Not this time. Look at the steps below.",
		"Way off. Start again from the first number.",
	},
}

// BucketFor picks the feedback bucket for an answer.
func BucketFor(correct bool, seconds float64, near bool) Bucket {
	switch {
	case correct && seconds < FastSeconds:
		return CorrectFast
	case correct && seconds < NormalSeconds:
		return CorrectNormal
	case correct:
		return CorrectSlow
	case near:
		return IncorrectClose
	default:
		return IncorrectFar
	}
}

// Coach picks a feedback line for each answer.
type Coach struct {
	src mathrand.Source
}

// New returns a coach drawing lines from src.
func New(src mathrand.Source) *Coach {
	return &Coach{src: src}
}

// Feedback returns a line for the answer's bucket.
func (c *Coach) Feedback(correct bool, seconds float64, near bool) string {
	return mathrand.Pick(c.src, lines[BucketFor(correct, seconds, near)])
}

// Lines returns the phrases for a bucket.
func Lines(b Bucket) []string {
	return append([]string(nil), lines[b]...)
}
