package skillgraph

// MaxCuratedLevel is the highest level with a curated skill list.
// Learners above it practice the full registry.
const MaxCuratedLevel = 7

// levelTable lists the skills unlocked at each curated level.
var levelTable = map[int][]string{
	1: {"add_basic_10", "sub_basic_10"},
	2: {"add_basic_10", "sub_basic_10", "add_carry_20", "sub_no_borrow_20", "mult_tables_5"},
	3: {"add_carry_20", "sub_borrow_20", "add_tens", "mult_tables_5", "mult_tables_9", "div_basic_tables"},
	4: {"add_tens", "mult_tables_9", "div_basic_tables", "fraction_simplification", "perc_50"},
	5: {"mult_tables_12", "mult_by_11", "fraction_addition", "perc_10", "perc_25", "decimal_basic"},
	6: {"add_near_100", "sub_near_100", "mult_double_single", "perc_10_50", "dec_add_simple"},
	7: {"add_double_100", "sub_double_100", "pow_squares_end5", "powers_basic", "roots_basic"},
}

// stagedBatches are the quick-placement stages, three skills each.
var stagedBatches = [][]string{
	{"add_basic_10", "sub_basic_10", "add_carry_20"},
	{"mult_tables_5", "mult_tables_9", "div_basic_tables"},
	{"fraction_simplification", "decimal_basic", "percentage_basic"},
	{"powers_basic", "roots_basic", "add_double_100"},
}

// EligibleSkills returns the skill keys unlocked at the given level.
// Levels below 1 are treated as level 1.
func EligibleSkills(level int) []string {
	if level < 1 {
		level = 1
	}
	if level > MaxCuratedLevel {
		return AllKeys()
	}
	keys := levelTable[level]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// StageCount returns the number of quick-placement stages.
func StageCount() int { return len(stagedBatches) }

// StageSkills returns the skill keys of a 1-based placement stage.
// Out-of-range stages return the first stage.
func StageSkills(stage int) []string {
	if stage < 1 || stage > len(stagedBatches) {
		stage = 1
	}
	keys := stagedBatches[stage-1]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
