package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentalmath/internal/skillgraph"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill registry",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by strand or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		strand, _ := cmd.Flags().GetString("strand")
		level, _ := cmd.Flags().GetInt("level")

		var skills []skillgraph.MicroSkill

		switch {
		case strand != "" && level != 0:
			return fmt.Errorf("use --strand or --level, not both")
		case strand != "":
			skills = skillgraph.ByStrand(skillgraph.Strand(strand))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for strand %q", strand)
			}
		case level != 0:
			for _, key := range skillgraph.EligibleSkills(level) {
				skills = append(skills, skillgraph.MustSkill(key))
			}
		default:
			skills = skillgraph.AllSkills()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-26s  %-34s  %-22s  %s\n", "Key", "Name", "Type", "Range")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, s := range skills {
			name := s.Name
			if len(name) > 34 {
				name = name[:31] + "..."
			}
			rng := "-"
			if !s.Range.IsZero() {
				rng = fmt.Sprintf("%d..%d", s.Range.Min, s.Range.Max)
			}
			fmt.Fprintf(out, "%-26s  %-34s  %-22s  %s\n", s.Key, name, s.Type, rng)
		}

		fmt.Fprintf(out, "\n%d skills\n", len(skills))
		return nil
	},
}

func init() {
	var strands []string
	for _, s := range skillgraph.AllStrands() {
		strands = append(strands, string(s))
	}
	slices.Sort(strands)

	skillListCmd.Flags().String("strand", "", "Filter by strand ("+strings.Join(strands, ", ")+")")
	skillListCmd.Flags().Int("level", 0, "Only skills eligible at this level")

	skillCmd.AddCommand(skillListCmd)
}
