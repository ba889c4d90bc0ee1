package cmd

import (
	"fmt"
	"time"

	"github.com/avalder/pathwise/internal/srs"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due <user>",
	Short: "List concepts due for review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.Close()

		due, err := a.Scheduler.DueReviews(cmd.Context(), args[0], time.Now().UTC(), srs.DueOpts{Limit: limit})
		if err != nil {
			return err
		}

		if len(due) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}

		fmt.Printf("%-28s  %-16s  %s\n", "Concept", "Due", "Mastery")
		for _, d := range due {
			fmt.Printf("%-28s  %-16s  %d\n",
				d.ConceptID,
				d.NextReviewAt.Local().Format("2006-01-02 15:04"),
				d.Level,
			)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().IntP("limit", "n", 20, "Maximum number of concepts to list")
}
