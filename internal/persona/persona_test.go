package persona

import (
	"slices"
	"testing"

	"github.com/abhisek/mentalmath/internal/mathrand"
)

func TestBucketFor(t *testing.T) {
	tests := []struct {
		correct bool
		seconds float64
		near    bool
		want    Bucket
	}{
		{true, 0.5, false, CorrectFast},
		{true, 1.99, true, CorrectFast},
		{true, 2, false, CorrectNormal},
		{true, 4.9, false, CorrectNormal},
		{true, 5, false, CorrectSlow},
		{true, 30, false, CorrectSlow},
		{false, 1, true, IncorrectClose},
		{false, 1, false, IncorrectFar},
		{false, 60, true, IncorrectClose},
	}
	for _, tt := range tests {
		if got := BucketFor(tt.correct, tt.seconds, tt.near); got != tt.want {
			t.Errorf("BucketFor(%v, %v, %v) = %s, want %s", tt.correct, tt.seconds, tt.near, got, tt.want)
		}
	}
}

func TestCoach_FeedbackComesFromBucket(t *testing.T) {
	c := New(mathrand.New(3))
	for i := 0; i < 50; i++ {
		got := c.Feedback(false, 3, true)
		if !slices.Contains(lines[IncorrectClose], got) {
			t.Fatalf("line %q not in %s bucket", got, IncorrectClose)
		}
	}
}

func TestCoach_UsesSource(t *testing.T) {
	c := New(&mathrand.Scripted{Ints: []int{2}})
	if got, want := c.Feedback(true, 1, false), lines[CorrectFast][2]; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLines_EveryBucketPopulated(t *testing.T) {
	for _, b := range []Bucket{CorrectFast, CorrectNormal, CorrectSlow, IncorrectClose, IncorrectFar} {
		if len(Lines(b)) != 5 {
			t.Errorf("%s has %d lines, want 5", b, len(Lines(b)))
		}
	}
}
