package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <user> <subject>",
	Short: "Show a subject progress summary",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		sum, err := a.Progress.Summarize(cmd.Context(), args[0], args[1], time.Now().UTC())
		if err != nil {
			return err
		}

		sp := sum.Progress
		fmt.Printf("Subject:        %s\n", sp.SubjectID)
		fmt.Printf("Progress:       %.2f%%\n", sp.ProgressPercentage)
		fmt.Printf("Path:           %s (%.0f%% complete)\n", sum.PathState, sum.CompletionRate*100)
		fmt.Printf("Nodes done:     %d\n", sum.CompletedNodes)
		if sum.MinutesRemaining > 0 {
			fmt.Printf("Remaining:      ~%d min\n", sum.MinutesRemaining)
		}
		if sum.AverageScore > 0 {
			fmt.Printf("Average score:  %.1f\n", sum.AverageScore)
		}
		fmt.Printf("Due reviews:    %d\n", sum.DueReviewCount)
		fmt.Printf("Study streak:   %d day(s)\n", sp.StudyStreakDays)
		if sum.StreakMilestone {
			fmt.Printf("Milestone:      %d-day streak! Next at %d days\n", sp.StudyStreakDays, sum.NextMilestone)
		}
		fmt.Printf("Study time:     %d min\n", sp.StudyMinutes)
		if !sp.LastActivityAt.IsZero() {
			fmt.Printf("Last activity:  %s\n", sp.LastActivityAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}
