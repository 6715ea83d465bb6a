package skillgraph

import (
	"errors"
	"testing"
)

func TestGetSkill(t *testing.T) {
	s, err := GetSkill("add_carry_20")
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}
	if s.Type != TypeAddition || s.Range != (Range{10, 20}) {
		t.Errorf("unexpected skill: %+v", s)
	}
}

func TestGetSkill_Unknown(t *testing.T) {
	_, err := GetSkill("nope")
	if !errors.Is(err, ErrUnknownSkill) {
		t.Errorf("expected ErrUnknownSkill, got %v", err)
	}
}

func TestEligibleSkills_Level1(t *testing.T) {
	got := EligibleSkills(1)
	if len(got) != 2 || got[0] != "add_basic_10" || got[1] != "sub_basic_10" {
		t.Errorf("level 1 = %v", got)
	}
}

func TestEligibleSkills_ClampsLow(t *testing.T) {
	if got := EligibleSkills(0); len(got) != 2 {
		t.Errorf("level 0 should behave like level 1, got %v", got)
	}
}

func TestEligibleSkills_AllAbove7(t *testing.T) {
	got := EligibleSkills(8)
	if len(got) != len(seedSkills) {
		t.Errorf("level 8 got %d skills, want %d", len(got), len(seedSkills))
	}
}

func TestEligibleSkills_ReturnsCopy(t *testing.T) {
	got := EligibleSkills(1)
	got[0] = "mutated"
	if EligibleSkills(1)[0] != "add_basic_10" {
		t.Error("EligibleSkills leaked internal table")
	}
}

func TestEveryCuratedLevelResolves(t *testing.T) {
	for level := 1; level <= MaxCuratedLevel; level++ {
		for _, key := range EligibleSkills(level) {
			if _, err := GetSkill(key); err != nil {
				t.Errorf("level %d: %v", level, err)
			}
		}
	}
}

func TestScalesWithLevel(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"add_double_100", true},
		{"sub_double_100", true},
		{"mult_double_single", true},
		{"add_tens", false},
	}
	for _, tc := range tests {
		if got := MustSkill(tc.key).ScalesWithLevel(); got != tc.want {
			t.Errorf("%s.ScalesWithLevel() = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestFallbackFor(t *testing.T) {
	for _, typ := range AllTypes() {
		if _, ok := FallbackFor(typ); !ok {
			t.Errorf("no fallback for %s", typ)
		}
	}
	s, _ := FallbackFor(TypeAddition)
	if s.Key != "addition_basic" {
		t.Errorf("addition fallback = %q", s.Key)
	}
}

func TestStageSkills(t *testing.T) {
	if StageCount() != 4 {
		t.Fatalf("StageCount = %d, want 4", StageCount())
	}
	if got := StageSkills(3); got[0] != "fraction_simplification" {
		t.Errorf("stage 3 = %v", got)
	}
	if got := StageSkills(9); got[0] != "add_basic_10" {
		t.Errorf("out-of-range stage should fall back to stage 1, got %v", got)
	}
}

func TestByStrand(t *testing.T) {
	for _, strand := range AllStrands() {
		if len(ByStrand(strand)) == 0 {
			t.Errorf("strand %s empty", strand)
		}
	}
}
