package skillgraph

import "errors"

// ErrUnknownSkill is returned when a skill key is not in the registry.
var ErrUnknownSkill = errors.New("unknown skill")

// SkillType is the operation family a problem is generated from.
type SkillType string

const (
	TypeAddition               SkillType = "addition"
	TypeSubtraction            SkillType = "subtraction"
	TypeMultiplication         SkillType = "multiplication"
	TypeDivision               SkillType = "division"
	TypeFractionSimplification SkillType = "fraction_simplification"
	TypeFractionAddition       SkillType = "fraction_addition"
	TypePercentage             SkillType = "percentage_basic"
	TypeDecimal                SkillType = "decimal_basic"
	TypePowers                 SkillType = "powers_basic"
	TypeRoots                  SkillType = "roots_basic"
)

// AllTypes returns every skill type in display order.
func AllTypes() []SkillType {
	return []SkillType{
		TypeAddition,
		TypeSubtraction,
		TypeMultiplication,
		TypeDivision,
		TypeFractionSimplification,
		TypeFractionAddition,
		TypePercentage,
		TypeDecimal,
		TypePowers,
		TypeRoots,
	}
}

// Valid reports whether t is a known skill type.
func (t SkillType) Valid() bool {
	for _, k := range AllTypes() {
		if k == t {
			return true
		}
	}
	return false
}

// Strand groups skill types for display.
type Strand string

const (
	StrandAddSub      Strand = "addition-and-subtraction"
	StrandMultDiv     Strand = "multiplication-and-division"
	StrandFractions   Strand = "fractions"
	StrandPercentages Strand = "percentages-and-decimals"
	StrandPowers      Strand = "powers-and-roots"
)

// AllStrands returns all strands in display order.
func AllStrands() []Strand {
	return []Strand{
		StrandAddSub,
		StrandMultDiv,
		StrandFractions,
		StrandPercentages,
		StrandPowers,
	}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s Strand) string {
	switch s {
	case StrandAddSub:
		return "Addition & Subtraction"
	case StrandMultDiv:
		return "Multiplication & Division"
	case StrandFractions:
		return "Fractions"
	case StrandPercentages:
		return "Percentages & Decimals"
	case StrandPowers:
		return "Powers & Roots"
	default:
		return string(s)
	}
}

// StrandOf returns the strand a skill type belongs to.
func StrandOf(t SkillType) Strand {
	switch t {
	case TypeAddition, TypeSubtraction:
		return StrandAddSub
	case TypeMultiplication, TypeDivision:
		return StrandMultDiv
	case TypeFractionSimplification, TypeFractionAddition:
		return StrandFractions
	case TypePercentage, TypeDecimal:
		return StrandPercentages
	case TypePowers, TypeRoots:
		return StrandPowers
	default:
		return ""
	}
}

// Range holds inclusive numeric bounds for operand generation.
type Range struct {
	Min int
	Max int
}

// IsZero reports whether no bounds were configured.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// MicroSkill is a named, parameterized drill category.
type MicroSkill struct {
	Key   string
	Name  string
	Type  SkillType
	Range Range

	// Fallback marks generic per-type skills used when a drill asks for
	// a skill by type rather than by curated key.
	Fallback bool
}

// Strand returns the display strand of the skill.
func (s MicroSkill) Strand() Strand { return StrandOf(s.Type) }

// ScalesWithLevel reports whether the skill's upper bound grows with the
// learner's level ("double-digit" skills).
func (s MicroSkill) ScalesWithLevel() bool {
	return containsWord(s.Key, "double")
}
