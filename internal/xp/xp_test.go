package xp

import (
	"math"
	"testing"
)

func TestForAnswer(t *testing.T) {
	tests := []struct {
		name       string
		correct    bool
		seconds    float64
		difficulty int
		streak     int
		want       int
	}{
		{"wrong", false, 1, 5, 10, 0},
		{"very fast", true, 1.0, 1, 0, 20},
		{"fast", true, 1.7, 1, 0, 15},
		{"normal", true, 3, 1, 0, 12},
		{"slow", true, 9, 1, 0, 10},
		{"difficulty scales", true, 9, 3, 0, 30},
		{"streak bonus", true, 1.0, 2, 3, 52},
		{"streak capped", true, 9, 1, 5000, 1010},
		{"negative streak ignored", true, 9, 1, -4, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForAnswer(tt.correct, tt.seconds, tt.difficulty, tt.streak); got != tt.want {
				t.Errorf("ForAnswer = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct{ xp, want int }{
		{0, 1}, {99, 1}, {100, 2}, {399, 2}, {400, 3}, {900, 4}, {-50, 1},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.xp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelFloor(t *testing.T) {
	for level, want := range map[int]int{0: 0, 1: 0, 2: 100, 3: 400, 7: 3600} {
		if got := LevelFloor(level); got != want {
			t.Errorf("LevelFloor(%d) = %d, want %d", level, got, want)
		}
		if level >= 1 && LevelFor(LevelFloor(level)) != level {
			t.Errorf("LevelFor(LevelFloor(%d)) != %d", level, level)
		}
	}
}

func TestProgress(t *testing.T) {
	p := Progress(150)
	if p.Level != 2 || p.Current != 50 || p.Needed != 300 {
		t.Errorf("Progress(150) = %+v", p)
	}
	if math.Abs(p.Percent-50.0/3) > 1e-9 {
		t.Errorf("Percent = %v", p.Percent)
	}

	if p := Progress(0); p.Level != 1 || p.Current != 0 || p.Needed != 100 || p.Percent != 0 {
		t.Errorf("Progress(0) = %+v", p)
	}
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct{ current, want int }{
		{0, 5}, {4, 5}, {5, 10}, {14, 15}, {19, 20}, {20, 30}, {29, 30}, {30, 40}, {45, 50},
	}
	for _, tt := range tests {
		if got := NextStreakMilestone(tt.current); got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestIsStreakMilestone(t *testing.T) {
	for _, s := range []int{5, 10, 15, 20, 30, 40} {
		if !IsStreakMilestone(s) {
			t.Errorf("IsStreakMilestone(%d) = false", s)
		}
	}
	for _, s := range []int{0, 1, 6, 25, 35} {
		if IsStreakMilestone(s) {
			t.Errorf("IsStreakMilestone(%d) = true", s)
		}
	}
}
