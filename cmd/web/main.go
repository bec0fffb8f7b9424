package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/leak-finder/pkg/server"
	"github.com/de-tools/leak-finder/pkg/services/activity"
	"github.com/de-tools/leak-finder/pkg/services/audit"
	"github.com/de-tools/leak-finder/pkg/services/audit/gemini"
	"github.com/de-tools/leak-finder/pkg/services/audit/ollama"
	"github.com/de-tools/leak-finder/pkg/services/config"
	"github.com/de-tools/leak-finder/pkg/services/state"
	"github.com/de-tools/leak-finder/pkg/store/document"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Leak Finder",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "leak-finder.yaml",
		"Path to the configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func buildProvider(cfg config.AnalyzerConfig) (audit.Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewClient(gemini.Config{
			APIKey:  cfg.APIKey(),
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	case "ollama":
		return ollama.NewClient(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Token:   cfg.APIKey(),
			Timeout: cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown analyzer provider: %q", cfg.Provider)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := document.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer store.Close()

	feed := activity.NewFeed()
	stateSvc := state.New(store, feed, nil, nil)
	if err := stateSvc.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize state: %w", err)
	}

	provider, err := buildProvider(cfg.Analyzer)
	if err != nil {
		return err
	}
	auditor := audit.NewService(provider, stateSvc)

	logger.Info().
		Str("storage", cfg.Storage.Path).
		Str("provider", cfg.Analyzer.Provider).
		Str("model", provider.ModelName()).
		Msg("configuration loaded")

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			State:   stateSvc,
			Auditor: auditor,
			Feed:    feed,
		},
	})

	return api.Start()
}
