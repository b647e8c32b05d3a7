package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kidskills/kidskills/internal/aigen"
	"github.com/kidskills/kidskills/internal/config"
	"github.com/kidskills/kidskills/internal/engine"
	"github.com/kidskills/kidskills/internal/llm"
	"github.com/kidskills/kidskills/internal/store"
)

// Stored settings live in the KV alongside learner state.
const (
	credentialKey = "credential"
	modelKey      = "model"
)

// appContext bundles what every command needs.
type appContext struct {
	cfg    config.Config
	kv     store.KV
	log    *logrus.Logger
	engine *engine.Engine
}

func (a *appContext) Close() {
	if a.kv != nil {
		a.kv.Close()
	}
}

// buildApp loads config, opens the store, and wires the engine. The
// credential resolves from the environment first, then the store.
func buildApp(cmd *cobra.Command) (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.LogLevel)

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	kv, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		if v, err := kv.Get(credentialKey); err == nil {
			apiKey = string(v)
		}
	}
	model := cfg.Model
	if model == "" {
		if v, err := kv.Get(modelKey); err == nil {
			model = string(v)
		}
	}
	if model == "" {
		model = llm.DefaultModel().ID
	}

	var gen *aigen.Generator
	if apiKey != "" {
		client, err := llm.NewOpenRouterClient(llm.OpenRouterConfig{
			APIKey:  apiKey,
			Model:   model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			kv.Close()
			return nil, fmt.Errorf("build AI client: %w", err)
		}
		wrapped := llm.WithLogging(llm.WithRetry(client, llm.DefaultRetryConfig()), log)
		gen = aigen.New(wrapped, aigen.DefaultConfig())
	}

	engCfg := engine.DefaultConfig()
	if cfg.PacingDelay > 0 {
		engCfg.PacingDelay = cfg.PacingDelay
	}

	return &appContext{
		cfg:    cfg,
		kv:     kv,
		log:    log,
		engine: engine.New(gen, kv, log, engCfg),
	}, nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	return log
}
