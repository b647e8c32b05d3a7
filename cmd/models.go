package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kidskills/kidskills/internal/llm"
	"github.com/kidskills/kidskills/internal/store"
	"github.com/kidskills/kidskills/internal/ui/theme"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List and select AI models",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		selected := llm.DefaultModel().ID
		if v, err := app.kv.Get(modelKey); err == nil {
			selected = string(v)
		}
		if app.cfg.Model != "" {
			selected = app.cfg.Model
		}

		fmt.Println(theme.Title.Render("Available models"))
		for _, m := range llm.PredefinedModels() {
			marker := "  "
			if m.ID == selected {
				marker = theme.Correct.Render("→ ")
			}
			fmt.Printf("%s%s  %s\n", marker, m.ID, theme.Subtitle.Render(m.Name))
		}

		// A credential lets us also show what the endpoint actually
		// serves.
		discovered, _ := cmd.Flags().GetBool("discover")
		if discovered {
			return discoverModels(cmd.Context(), app)
		}
		return nil
	},
}

var modelsUseCmd = &cobra.Command{
	Use:   "use <model-id>",
	Short: "Select the model for question generation",
	Args:  cobra.ExactArgs(1),
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

		m := llm.ResolveModel(args[0], nil)
		if err := kv.Set(modelKey, []byte(m.ID)); err != nil {
			return err
		}
		if m.Kind == llm.KindDynamic {
			fmt.Println(theme.Subtitle.Render("Model is not in the built-in list; it will be used as-is."))
		}
		fmt.Printf("Now using %s\n", theme.Title.Render(m.ID))
		return nil
	},
}

func discoverModels(ctx context.Context, app *appContext) error {
	apiKey := app.cfg.APIKey
	if apiKey == "" {
		if v, err := app.kv.Get(credentialKey); err == nil {
			apiKey = string(v)
		}
	}
	if apiKey == "" {
		return fmt.Errorf("discovery needs a credential; run 'kidskills credential set' first")
	}

	client, err := llm.NewOpenRouterClient(llm.OpenRouterConfig{
		APIKey:  apiKey,
		Model:   llm.DefaultModel().ID,
		BaseURL: app.cfg.BaseURL,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	models, err := client.Models(ctx)
	if err != nil {
		return fmt.Errorf("list models: %w", err)
	}

	fmt.Println()
	fmt.Println(theme.Title.Render(fmt.Sprintf("Endpoint serves %d models", len(models))))
	for i, m := range models {
		if i >= 25 {
			fmt.Println(theme.Subtitle.Render(fmt.Sprintf("  … and %d more", len(models)-i)))
			break
		}
		fmt.Printf("  %s\n", m.ID)
	}
	return nil
}

func init() {
	modelsCmd.Flags().Bool("discover", false, "Query the endpoint for its full model list")
	modelsCmd.AddCommand(modelsUseCmd)
}
