package skillgraph

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the registry tables.
// Returns a combined error describing all problems found, or nil if valid.
func validate(skills []MicroSkill, levels map[int][]string, stages [][]string) error {
	var errs []string

	keys := make(map[string]bool, len(skills))
	strandSet := make(map[Strand]bool)
	fallbacks := make(map[SkillType]int)

	for _, s := range skills {
		if s.Key == "" {
			errs = append(errs, "skill with empty key")
			continue
		}
		if keys[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate skill key: %q", s.Key))
		}
		keys[s.Key] = true

		if !s.Type.Valid() {
			errs = append(errs, fmt.Sprintf("skill %q has unknown type %q", s.Key, s.Type))
			continue
		}
		strandSet[s.Strand()] = true
		if s.Fallback {
			fallbacks[s.Type]++
		}
		if s.Range.Min < 0 || s.Range.Max < s.Range.Min {
			errs = append(errs, fmt.Sprintf("skill %q has invalid range [%d, %d]", s.Key, s.Range.Min, s.Range.Max))
		}
	}

	// Every type needs exactly one fallback skill for drills by type.
	for _, t := range AllTypes() {
		switch n := fallbacks[t]; {
		case n == 0:
			errs = append(errs, fmt.Sprintf("type %q has no fallback skill", t))
		case n > 1:
			errs = append(errs, fmt.Sprintf("type %q has %d fallback skills", t, n))
		}
	}

	for level := 1; level <= MaxCuratedLevel; level++ {
		list, ok := levels[level]
		if !ok || len(list) == 0 {
			errs = append(errs, fmt.Sprintf("level %d has no eligible skills", level))
			continue
		}
		for _, key := range list {
			if !keys[key] {
				errs = append(errs, fmt.Sprintf("level %d references nonexistent skill %q", level, key))
			}
		}
	}

	for i, stage := range stages {
		if len(stage) == 0 {
			errs = append(errs, fmt.Sprintf("placement stage %d is empty", i+1))
		}
		for _, key := range stage {
			if !keys[key] {
				errs = append(errs, fmt.Sprintf("placement stage %d references nonexistent skill %q", i+1, key))
			}
		}
	}

	for _, strand := range AllStrands() {
		if !strandSet[strand] {
			errs = append(errs, fmt.Sprintf("strand %q has no skills", strand))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill registry validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
