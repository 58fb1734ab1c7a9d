package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/amishk599/vaplan/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer web page",
	Long:  "Serve the job form, result page and document downloads; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	provider, err := setupProvider(cfg, "", logger)
	if err != nil {
		logger.Error("failed to set up model provider", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"provider", cfg.AI.Provider,
		"model", cfg.AI.Model,
		"addr", cfg.Server.Addr,
		"fetch_enabled", cfg.Fetch.Enabled,
	)

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(setupAnalyzer(cfg, provider, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, cfg.Server.Addr, router, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
