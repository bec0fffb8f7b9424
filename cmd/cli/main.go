package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/de-tools/leak-finder/pkg/runtime/terminal"
	"github.com/de-tools/leak-finder/pkg/services/activity"
	"github.com/de-tools/leak-finder/pkg/services/audit"
	"github.com/de-tools/leak-finder/pkg/services/audit/gemini"
	"github.com/de-tools/leak-finder/pkg/services/audit/ollama"
	"github.com/de-tools/leak-finder/pkg/services/config"
	"github.com/de-tools/leak-finder/pkg/services/state"
	"github.com/de-tools/leak-finder/pkg/store/document"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfgPath := os.Getenv("LEAK_FINDER_CONFIG")
	if cfgPath == "" {
		cfgPath = "leak-finder.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := document.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer store.Close()

	stateSvc := state.New(store, activity.NewFeed(), nil, nil)
	if err := stateSvc.Initialize(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize state: %w", err)
	}

	var provider audit.Provider
	switch cfg.Analyzer.Provider {
	case "gemini":
		provider, err = gemini.NewClient(gemini.Config{
			APIKey:  cfg.Analyzer.APIKey(),
			BaseURL: cfg.Analyzer.BaseURL,
			Model:   cfg.Analyzer.Model,
			Timeout: cfg.Analyzer.Timeout,
		})
		if err != nil {
			return err
		}
	case "ollama":
		provider = ollama.NewClient(ollama.Config{
			BaseURL: cfg.Analyzer.BaseURL,
			Model:   cfg.Analyzer.Model,
			Token:   cfg.Analyzer.APIKey(),
			Timeout: cfg.Analyzer.Timeout,
		})
	default:
		return fmt.Errorf("unknown analyzer provider: %q", cfg.Analyzer.Provider)
	}

	cli := terminal.NewCLI(terminal.Options{
		State:   stateSvc,
		Auditor: audit.NewService(provider, stateSvc),
		Output:  os.Stdout,
	})

	return cli.Execute()
}
