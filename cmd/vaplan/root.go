package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/vaplan/internal/ai"
	"github.com/amishk599/vaplan/internal/config"
	"github.com/amishk599/vaplan/internal/export"
	"github.com/amishk599/vaplan/internal/jobsource"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "vaplan",
	Short: "VA Job Analyzer: a 14-day learning plan from a job post",
	Long:  "vaplan turns a Virtual Assistant job description into a personalized 14-day learning plan with a printable checklist and portfolio template.",
	// Default to `serve` so that `vaplan` with no args starts the web page.
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(loadDotEnv)
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: VAPLAN_CONFIG env var or ./vaplan.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadDotEnv loads ./.env if present. Variables already set win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > VAPLAN_CONFIG env var > "./vaplan.yaml"
// Only the implicit default may be missing.
func loadConfig(path string) (*config.Config, error) {
	explicit := true
	if path == "" {
		if env := os.Getenv("VAPLAN_CONFIG"); env != "" {
			path = env
		} else {
			path = config.DefaultPath
			explicit = false
		}
	}
	return config.LoadOrDefault(path, explicit)
}

// setupLogger logs to stderr; stdout carries the plan.
func setupLogger(dbg bool) *slog.Logger {
	return newLogger(os.Stderr, dbg)
}

func newLogger(w io.Writer, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

func setupProvider(cfg *config.Config, replayPath string, logger *slog.Logger) (ai.LLMProvider, error) {
	if replayPath != "" {
		logger.Info("using replay provider", "path", replayPath)
		return ai.NewReplayProvider(replayPath), nil
	}
	if err := cfg.AI.RequireCredentials(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.AI.Timeout}
	logger.Debug("using provider", "provider", cfg.AI.Provider, "model", cfg.AI.Model)
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		return ai.NewOpenAIProvider(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.MaxTokens, httpClient), nil
	default:
		return ai.NewAnthropicProvider(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.MaxTokens, httpClient), nil
	}
}

func setupAnalyzer(cfg *config.Config, provider ai.LLMProvider, logger *slog.Logger) *ai.PlanAnalyzer {
	source := jobsource.New(
		jobsource.NewHTTPClient(cfg.Fetch.Timeout, cfg.Fetch.AllowPrivate),
		cfg.Fetch.Enabled,
		cfg.Fetch.MaxChars,
		logger,
	)
	return ai.NewPlanAnalyzer(provider, ai.LearningPlanUserTemplate, source, logger)
}

// exportStrategies returns the terminal tiers: save to dir, then clipboard.
func exportStrategies(dir string) []export.Strategy {
	return []export.Strategy{
		export.NewFileStrategy(dir),
		export.NewClipboardStrategy(os.Stdout),
	}
}

// exportChain adds the printed-text last tier.
func exportChain(dir string, logger *slog.Logger) *export.Chain {
	strategies := append(exportStrategies(dir), export.NewDisplayStrategy(os.Stdout))
	return export.NewChain(logger, strategies...)
}
