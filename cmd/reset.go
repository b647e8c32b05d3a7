package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase learning progress and question history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This erases all progress and history. Type 'yes' to confirm: ")
			reader := bufio.NewScanner(os.Stdin)
			if !reader.Scan() || strings.TrimSpace(reader.Text()) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		app, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.engine.Reset(); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Println("Progress cleared. Fresh start!")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
