package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kidskills/kidskills/internal/llm"
	"github.com/kidskills/kidskills/internal/store"
	"github.com/kidskills/kidskills/internal/ui/theme"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage the AI API credential",
}

var credentialSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store and verify an API credential",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			fmt.Print("Paste your API key: ")
			reader := bufio.NewScanner(os.Stdin)
			if !reader.Scan() {
				return reader.Err()
			}
			key = strings.TrimSpace(reader.Text())
		}
		if key == "" {
			return fmt.Errorf("empty credential")
		}

		// Verify with a models listing before storing. A bad key
		// fails here instead of on the child's first question.
		client, err := llm.NewOpenRouterClient(llm.OpenRouterConfig{
			APIKey: key,
			Model:  llm.DefaultModel().ID,
		})
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()
		if _, err := client.Models(ctx); err != nil {
			return fmt.Errorf("credential check failed: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		kv, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer kv.Close()

		if err := kv.Set(credentialKey, []byte(key)); err != nil {
			return err
		}
		fmt.Println(theme.Correct.Render("Credential verified and saved. ✓"))
		return nil
	},
}

var credentialClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		kv, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer kv.Close()

		if err := kv.Delete(credentialKey); err != nil {
			return err
		}
		fmt.Println("Credential removed. Questions will come from the local generators.")
		return nil
	},
}

func init() {
	credentialCmd.AddCommand(credentialSetCmd)
	credentialCmd.AddCommand(credentialClearCmd)
}
