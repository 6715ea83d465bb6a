package skillgraph

import (
	"fmt"
	"sort"
	"strings"
)

// seedSkills is the static micro-skill registry.
var seedSkills = []MicroSkill{
	// Addition
	{Key: "addition_basic", Name: "Addition within 10", Type: TypeAddition, Range: Range{1, 10}, Fallback: true},
	{Key: "add_basic_10", Name: "Add within 10", Type: TypeAddition, Range: Range{1, 10}},
	{Key: "add_no_carry_20", Name: "Add to 20 without carrying", Type: TypeAddition, Range: Range{10, 20}},
	{Key: "add_carry_20", Name: "Add to 20 with carrying", Type: TypeAddition, Range: Range{10, 20}},
	{Key: "addition_carrying", Name: "Two-digit carrying", Type: TypeAddition, Range: Range{15, 25}},
	{Key: "add_tens", Name: "Add multiples of ten", Type: TypeAddition, Range: Range{10, 90}},
	{Key: "add_near_100", Name: "Add numbers near 100", Type: TypeAddition, Range: Range{90, 99}},
	{Key: "add_double_100", Name: "Add two-digit numbers", Type: TypeAddition, Range: Range{20, 100}},

	// Subtraction
	{Key: "subtraction_basic", Name: "Subtraction within 10", Type: TypeSubtraction, Range: Range{1, 10}, Fallback: true},
	{Key: "sub_basic_10", Name: "Subtract within 10", Type: TypeSubtraction, Range: Range{1, 10}},
	{Key: "sub_no_borrow_20", Name: "Subtract to 20 without borrowing", Type: TypeSubtraction, Range: Range{10, 20}},
	{Key: "sub_borrow_20", Name: "Subtract to 20 with borrowing", Type: TypeSubtraction, Range: Range{10, 20}},
	{Key: "subtraction_borrowing", Name: "Two-digit borrowing", Type: TypeSubtraction, Range: Range{20, 30}},
	{Key: "sub_near_100", Name: "Subtract near 100", Type: TypeSubtraction, Range: Range{90, 100}},
	{Key: "sub_double_100", Name: "Subtract two-digit numbers", Type: TypeSubtraction, Range: Range{20, 100}},

	// Multiplication
	{Key: "multiplication_basic", Name: "Times tables to 10", Type: TypeMultiplication, Range: Range{1, 10}, Fallback: true},
	{Key: "mult_tables_5", Name: "Times tables to 5", Type: TypeMultiplication, Range: Range{1, 5}},
	{Key: "mult_tables_9", Name: "Times tables to 9", Type: TypeMultiplication, Range: Range{2, 9}},
	{Key: "mult_tables_12", Name: "Times tables to 12", Type: TypeMultiplication, Range: Range{2, 12}},
	{Key: "mult_by_11", Name: "Multiply by 11", Type: TypeMultiplication, Range: Range{11, 99}},
	{Key: "mult_double_single", Name: "Teens times teens", Type: TypeMultiplication, Range: Range{10, 20}},

	// Division
	{Key: "division_basic", Name: "Division facts", Type: TypeDivision, Range: Range{1, 10}, Fallback: true},
	{Key: "div_basic_tables", Name: "Division tables", Type: TypeDivision, Range: Range{1, 10}},

	// Fractions
	{Key: "fraction_simplification", Name: "Simplify fractions", Type: TypeFractionSimplification, Range: Range{1, 10}, Fallback: true},
	{Key: "fraction_addition", Name: "Add like fractions", Type: TypeFractionAddition, Range: Range{1, 10}, Fallback: true},
	{Key: "frac_identify", Name: "Spot equivalent fractions", Type: TypeFractionSimplification, Range: Range{1, 50}},
	{Key: "frac_add_common", Name: "Common denominators", Type: TypeFractionAddition, Range: Range{1, 50}},

	// Percentages
	{Key: "percentage_basic", Name: "Percent of a number", Type: TypePercentage, Range: Range{1, 100}, Fallback: true},
	{Key: "perc_10", Name: "Ten percent", Type: TypePercentage, Range: Range{10, 10}},
	{Key: "perc_25", Name: "Twenty-five percent", Type: TypePercentage, Range: Range{25, 25}},
	{Key: "perc_50", Name: "Fifty percent", Type: TypePercentage, Range: Range{50, 50}},
	{Key: "perc_10_50", Name: "Percents from 10 to 50", Type: TypePercentage, Range: Range{10, 50}},

	// Decimals
	{Key: "decimal_basic", Name: "Decimal basics", Type: TypeDecimal, Range: Range{1, 10}, Fallback: true},
	{Key: "dec_add_simple", Name: "Adding tenths", Type: TypeDecimal, Range: Range{10, 100}},

	// Powers & roots
	{Key: "powers_basic", Name: "Squares and cubes", Type: TypePowers, Range: Range{1, 10}, Fallback: true},
	{Key: "pow_squares_10", Name: "Squares to 10", Type: TypePowers, Range: Range{1, 10}},
	{Key: "pow_squares_end5", Name: "Squares ending in 5", Type: TypePowers, Range: Range{15, 95}},
	{Key: "roots_basic", Name: "Square roots", Type: TypeRoots, Range: Range{1, 10}, Fallback: true},
	{Key: "root_perfect_100", Name: "Perfect square roots", Type: TypeRoots, Range: Range{10, 50}},
}

// registry holds the validated skills with a key index.
type registry struct {
	skills []MicroSkill
	byKey  map[string]*MicroSkill
	byType map[SkillType][]MicroSkill
}

// reg is the package-level registry, built and validated in init.
var reg *registry

func init() {
	if err := validate(seedSkills, levelTable, stagedBatches); err != nil {
		panic(err)
	}
	reg = buildRegistry(seedSkills)
}

func buildRegistry(skills []MicroSkill) *registry {
	r := &registry{
		skills: skills,
		byKey:  make(map[string]*MicroSkill, len(skills)),
		byType: make(map[SkillType][]MicroSkill),
	}
	for i := range r.skills {
		s := &r.skills[i]
		r.byKey[s.Key] = s
		r.byType[s.Type] = append(r.byType[s.Type], *s)
	}
	return r
}

// Validate re-runs the registry checks. It exists so callers (and tests)
// can surface configuration problems as an error instead of a panic.
func Validate() error {
	return validate(seedSkills, levelTable, stagedBatches)
}

// GetSkill returns the skill with the given key.
func GetSkill(key string) (MicroSkill, error) {
	s, ok := reg.byKey[key]
	if !ok {
		return MicroSkill{}, fmt.Errorf("%w: %q", ErrUnknownSkill, key)
	}
	return *s, nil
}

// MustSkill is like GetSkill but panics on unknown keys. Only use it with
// keys that are compiled into this package's tables.
func MustSkill(key string) MicroSkill {
	s, err := GetSkill(key)
	if err != nil {
		panic(err)
	}
	return s
}

// AllSkills returns every registered skill in declaration order.
func AllSkills() []MicroSkill {
	out := make([]MicroSkill, len(reg.skills))
	copy(out, reg.skills)
	return out
}

// AllKeys returns every registered key in declaration order.
func AllKeys() []string {
	keys := make([]string, len(reg.skills))
	for i, s := range reg.skills {
		keys[i] = s.Key
	}
	return keys
}

// ByType returns the skills generated from the given type.
func ByType(t SkillType) []MicroSkill {
	return reg.byType[t]
}

// ByStrand returns the skills in the given strand, sorted by key.
func ByStrand(strand Strand) []MicroSkill {
	var out []MicroSkill
	for _, s := range reg.skills {
		if s.Strand() == strand {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// FallbackFor returns the generic skill for a type.
func FallbackFor(t SkillType) (MicroSkill, bool) {
	for _, s := range reg.byType[t] {
		if s.Fallback {
			return s, true
		}
	}
	return MicroSkill{}, false
}

func containsWord(key, word string) bool {
	return strings.Contains(key, word)
}
