package cmd

import (
	"fmt"
	"time"

	"github.com/avalder/pathwise/internal/srs"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <user> <concept> <rating>",
	Short: "Record a self-reported review outcome (hard, medium, easy)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := srs.ParseRating(args[2])
		if err != nil {
			return err
		}

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		rec, err := a.Scheduler.RecordReviewOutcome(cmd.Context(), args[0], args[1], rating, time.Now().UTC())
		if err != nil {
			return err
		}

		fmt.Printf("Concept:      %s\n", rec.ConceptID)
		fmt.Printf("Mastery:      %d\n", rec.Level)
		fmt.Printf("Streak:       %d\n", rec.RetentionStreak)
		if rec.NextReviewAt != nil {
			fmt.Printf("Next review:  %s\n", rec.NextReviewAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var reviewHistoryCmd = &cobra.Command{
	Use:   "history <user> <concept>",
	Short: "Show the most recent review outcomes for a concept",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		events, err := a.Store.EventRepo().RecentReviews(cmd.Context(), args[0], args[1], limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No reviews recorded.")
			return nil
		}

		fmt.Printf("%-8s %-8s %-8s %-10s %s\n", "RATING", "LEVEL", "STREAK", "INTERVAL", "SOURCE")
		for _, ev := range events {
			source := "self-report"
			if ev.ScoreDerived {
				source = "quiz score"
			}
			fmt.Printf("%-8s %-8d %-8d %-10s %s\n", ev.Rating, ev.LevelAfter, ev.StreakAfter, fmt.Sprintf("%dh", ev.IntervalHours), source)
		}
		return nil
	},
}

func init() {
	reviewHistoryCmd.Flags().IntP("limit", "n", 10, "Number of events to show")
	reviewCmd.AddCommand(reviewHistoryCmd)
}
