package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avalder/pathwise/internal/path"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <user> <subject>",
	Short: "Generate or show a learning path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Paths.GeneratePath(cmd.Context(), args[0], args[1], time.Now().UTC())
		if err != nil {
			return err
		}
		printPath(p)
		return nil
	},
}

var pathCompleteCmd = &cobra.Command{
	Use:   "complete <user> <subject> <index>",
	Short: "Mark a path node completed, optionally with a quiz score",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid node index %q", args[2])
		}

		var score *int
		if cmd.Flags().Changed("score") {
			s, _ := cmd.Flags().GetInt("score")
			score = &s
		}

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Paths.CompleteNode(cmd.Context(), args[0], args[1], idx, score, time.Now().UTC())
		if err != nil {
			return err
		}
		printPath(p)
		return nil
	},
}

func printPath(p *path.LearningPath) {
	fmt.Printf("Subject:     %s (%s)\n", p.SubjectID, p.State())
	fmt.Printf("Completion:  %.0f%%", p.CompletionRate*100)
	if p.AverageScore > 0 {
		fmt.Printf("   Avg score: %.1f", p.AverageScore)
	}
	fmt.Println()
	fmt.Println()

	for i, n := range p.Nodes {
		marker := " "
		switch {
		case n.Completed:
			marker = "x"
		case i == p.CurrentNodeIndex:
			marker = ">"
		}
		fmt.Printf("[%s] %2d. %-10s %-36s", marker, i, n.Type, n.Title)
		if n.Score != nil {
			fmt.Printf("  score %d", *n.Score)
		}
		fmt.Println()
	}
}

func init() {
	pathCompleteCmd.Flags().Int("score", 0, "Quiz score 0-100 for scored nodes")
	pathCmd.AddCommand(pathCompleteCmd)
}
