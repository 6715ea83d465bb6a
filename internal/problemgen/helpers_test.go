package problemgen

import "github.com/abhisek/mentalmath/internal/skillgraph"

func skillType(s string) skillgraph.SkillType { return skillgraph.SkillType(s) }

func rangeOf(min, max int) skillgraph.Range { return skillgraph.Range{Min: min, Max: max} }
