package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/vaplan/internal/artifact"
	"github.com/amishk599/vaplan/internal/export"
	"github.com/amishk599/vaplan/internal/model"
)

var portfolioDir string

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Export the portfolio template",
	Long:  "Save VA-Portfolio-Template.txt; falls back to the clipboard, then prints the template.",
	RunE:  runPortfolio,
}

func init() {
	portfolioCmd.Flags().StringVar(&portfolioDir, "dir", "", "directory to save into (default: export.dir from config)")
	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	dir := cfg.Export.Dir
	if portfolioDir != "" {
		dir = portfolioDir
	}

	doc := export.Document{Name: artifact.PortfolioFileName, Text: artifact.Portfolio()}
	strategy, err := exportChain(dir, logger).Run(doc)
	if err != nil {
		return err
	}
	reportExport(doc, strategy, dir)
	return nil
}

// reportExport tells the user where a document went. The display tier has
// already printed it.
func reportExport(doc export.Document, strategy, dir string) {
	switch strategy {
	case "file":
		fmt.Fprintf(os.Stderr, "Saved %s to %s\n", doc.Name, dir)
	case "clipboard":
		fmt.Fprintf(os.Stderr, "Download blocked. %s copied to clipboard! Paste it into a text file.\n", doc.Name)
	}
}

// exitWithUserMessage prints the user-facing message for err and exits.
func exitWithUserMessage(err error) {
	fmt.Fprintln(os.Stderr, model.UserMessage(err))
	os.Exit(1)
}
