package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/skillgraph"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Print a printable worksheet of problems",
	Long: `Generate a worksheet for a skill or for every skill eligible at a level.
The same --seed always yields the same worksheet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skillKey, _ := cmd.Flags().GetString("skill")
		level, _ := cmd.Flags().GetInt("level")
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		answers, _ := cmd.Flags().GetBool("answers")
		word, _ := cmd.Flags().GetBool("word")

		if count < 1 {
			return fmt.Errorf("--count must be positive")
		}
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}

		var skills []skillgraph.MicroSkill
		if skillKey != "" {
			s, err := skillgraph.GetSkill(skillKey)
			if err != nil {
				return err
			}
			skills = []skillgraph.MicroSkill{s}
		} else {
			for _, key := range skillgraph.EligibleSkills(level) {
				skills = append(skills, skillgraph.MustSkill(key))
			}
		}

		reqs := make([]problemgen.Request, count)
		for i := range reqs {
			reqs[i] = problemgen.RequestForSkill(skills[i%len(skills)], max(level, 1))
			reqs[i].Word = word
		}
		problems, err := problemgen.GenerateBatch(cmd.Context(), seed, reqs)
		if err != nil {
			return fmt.Errorf("generate worksheet: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Worksheet (seed %d)\n\n", seed)
		for i, p := range problems {
			fmt.Fprintf(out, "%3d. %s\n", i+1, p.Prompt())
		}
		if answers {
			fmt.Fprintln(out, "\nAnswers")
			for i, p := range problems {
				fmt.Fprintf(out, "%3d. %s\n", i+1, p.Answer)
			}
		}
		return nil
	},
}

func init() {
	worksheetCmd.Flags().String("skill", "", "Skill key (see `skill list`)")
	worksheetCmd.Flags().Int("level", 1, "Level whose eligible skills are mixed when no --skill is given")
	worksheetCmd.Flags().Int("count", 20, "Number of problems")
	worksheetCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
	worksheetCmd.Flags().Bool("answers", false, "Append an answer key")
	worksheetCmd.Flags().Bool("word", false, "Phrase problems as word problems")
}
