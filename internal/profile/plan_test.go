package profile

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/mentalmath/internal/skillgraph"
)

var planStart = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

func TestNewPlan(t *testing.T) {
	plan, err := NewPlan("  Tables  ", []string{"mult_tables_5", "mult_tables_9", "mult_tables_5"}, planStart)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Name != "Tables" {
		t.Errorf("name = %q", plan.Name)
	}
	if want := []string{"mult_tables_5", "mult_tables_9"}; !reflect.DeepEqual(plan.TargetSkills, want) {
		t.Errorf("skills = %v, want %v", plan.TargetSkills, want)
	}
	if plan.Goal.TargetXP != DefaultTargetXP || plan.Goal.TargetAccuracy != DefaultTargetAccuracy {
		t.Errorf("goal = %+v", plan.Goal)
	}
	if plan.StartDate != "2026-05-01" {
		t.Errorf("start = %q", plan.StartDate)
	}
}

func TestNewPlan_Rejects(t *testing.T) {
	if _, err := NewPlan("x", nil, planStart); !errors.Is(err, ErrEmptyPlan) {
		t.Errorf("empty: err = %v", err)
	}
	if _, err := NewPlan("x", []string{"nope"}, planStart); !errors.Is(err, skillgraph.ErrUnknownSkill) {
		t.Errorf("unknown: err = %v", err)
	}
}

func TestStrandPlan(t *testing.T) {
	plan, err := StrandPlan(skillgraph.StrandPowers, planStart)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.TargetSkills) == 0 {
		t.Fatal("no skills")
	}
	for _, key := range plan.TargetSkills {
		if skillgraph.MustSkill(key).Strand() != skillgraph.StrandPowers {
			t.Errorf("%s is not a powers skill", key)
		}
	}
	if _, err := StrandPlan("bogus", planStart); err == nil {
		t.Error("unknown strand accepted")
	}
}

func TestSetClearPlan(t *testing.T) {
	p := New("ada")
	if p.PlanSkills() != nil {
		t.Error("no plan should yield nil skills")
	}
	plan, _ := NewPlan("", []string{"perc_10"}, planStart)
	p.SetPlan(plan)
	got := p.PlanSkills()
	got[0] = "mutated"
	if p.ActivePlan.TargetSkills[0] != "perc_10" {
		t.Error("PlanSkills must return a copy")
	}
	p.ClearPlan()
	if p.ActivePlan != nil {
		t.Error("plan not cleared")
	}
}
