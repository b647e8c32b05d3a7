package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kidskills/kidskills/internal/question"
	"github.com/kidskills/kidskills/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress per subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		tracker := app.engine.Progress()
		subjects := []question.Subject{
			question.SubjectMath,
			question.SubjectEnglish,
			question.SubjectLeadership,
		}

		any := false
		for _, s := range subjects {
			total, correct := tracker.Attempts(s)
			if total == 0 {
				continue
			}
			any = true

			fmt.Println(theme.Title.Render(string(s)))
			fmt.Printf("  Answered:   %d (%d correct, %d%%)\n",
				total, correct, correct*100/total)
			fmt.Printf("  Difficulty: %s\n", tracker.NextDifficulty(s))
			if avg := tracker.AverageResponseTime(s); avg > 0 {
				fmt.Printf("  Avg time:   %s\n", avg.Round(100*time.Millisecond))
			}
			if focus := tracker.FocusAreas(s); len(focus) > 0 {
				fmt.Print("  Focus on:   ")
				for i, f := range focus {
					if i > 0 {
						fmt.Print(", ")
					}
					fmt.Print(theme.Wrong.Render(string(f)))
				}
				fmt.Println()
			}
			fmt.Println()
		}

		if !any {
			fmt.Println(theme.Subtitle.Render("No questions answered yet. Try 'kidskills ask' to get started!"))
		}
		return nil
	},
}
