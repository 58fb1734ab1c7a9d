package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/amishk599/vaplan/internal/ai"
	"github.com/amishk599/vaplan/internal/artifact"
	"github.com/amishk599/vaplan/internal/export"
	"github.com/amishk599/vaplan/internal/model"
	"github.com/amishk599/vaplan/internal/tui"
	"github.com/amishk599/vaplan/internal/view"
)

const (
	defaultWidth = 100
	// exitInterrupted is the shell convention for SIGINT (128 + 2).
	exitInterrupted = 130
)

var (
	jobText    string
	jobFile    string
	skillsText string
	replayPath string
	useTUI     bool
	jsonOutput bool
	noExport   bool
	exportDir  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and print the 14-day plan",
	Long: `Analyze a job description (or job URL) and print the learning plan.

Job text comes from --job, --job-file (use - for stdin), or piped stdin.
The checklist is then saved to export.dir, copied to the clipboard if
saving fails, or printed as a last resort.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&jobText, "job", "j", "", "job description or job URL")
	analyzeCmd.Flags().StringVarP(&jobFile, "job-file", "f", "", "read the job description from a file (- for stdin)")
	analyzeCmd.Flags().StringVarP(&skillsText, "skills", "s", "", "your current skills (optional)")
	analyzeCmd.Flags().StringVar(&replayPath, "replay", "", "parse a saved raw model response instead of calling the model")
	analyzeCmd.Flags().BoolVar(&useTUI, "tui", false, "open the interactive plan viewer")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the parsed plan as JSON")
	analyzeCmd.Flags().BoolVar(&noExport, "no-export", false, "do not export the checklist")
	analyzeCmd.Flags().StringVar(&exportDir, "dir", "", "directory to save into (default: export.dir from config)")
	analyzeCmd.MarkFlagsMutuallyExclusive("job", "job-file")
	analyzeCmd.MarkFlagsMutuallyExclusive("tui", "json")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	interactive := isatty.IsTerminal(os.Stdout.Fd())

	logger := setupLogger(debug)
	if useTUI && !debug {
		// Log lines would tear the full-screen viewer.
		logger = newLogger(io.Discard, false)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if exportDir != "" {
		cfg.Export.Dir = exportDir
	}

	provider, err := setupProvider(cfg, replayPath, logger)
	if err != nil {
		logger.Error("failed to set up model provider", "error", err)
		os.Exit(1)
	}
	analyzer := setupAnalyzer(cfg, provider, logger)

	input, err := readJobInput(cmd.InOrStdin())
	if err != nil {
		logger.Error("failed to read job input", "error", err)
		os.Exit(1)
	}
	if input == "" && replayPath != "" {
		// A replayed response needs no real job text.
		input = replayPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	req := ai.Request{JobText: input, SkillsText: skillsText}
	analyze := func(ctx context.Context) (*model.AnalysisResult, error) {
		return analyzer.Analyze(ctx, req)
	}

	var result *model.AnalysisResult
	if interactive && !jsonOutput {
		result, err = tui.RunLoader(ctx, "Creating Your Plan... This takes 30-60 seconds...", analyze)
	} else {
		result, err = analyze(ctx)
	}
	if err != nil {
		if interrupted(err) {
			os.Exit(exitInterrupted)
		}
		exitWithUserMessage(err)
	}

	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
	case useTUI:
		return tui.Run(result, exportStrategies(cfg.Export.Dir), logger)
	default:
		fmt.Fprint(os.Stdout, view.Text(view.Page{Result: result}, terminalWidth()))
	}

	// JSON output stays machine-readable.
	if noExport || jsonOutput {
		return nil
	}
	return exportChecklist(result, cfg.Export.Dir, logger)
}

func exportChecklist(result *model.AnalysisResult, dir string, logger *slog.Logger) error {
	doc := export.Document{Name: artifact.ChecklistFileName, Text: artifact.Checklist(result)}
	strategy, err := exportChain(dir, logger).Run(doc)
	if err != nil {
		return err
	}
	reportExport(doc, strategy, dir)
	return nil
}

// interrupted reports whether err comes from the user stopping the run,
// either with ctrl+c in the loader or a signal.
func interrupted(err error) bool {
	return errors.Is(err, tui.ErrCancelled) || errors.Is(err, context.Canceled)
}

// readJobInput returns the job text from flags, or from stdin when it is
// piped. It returns "" when there is nothing to read; the analyzer rejects
// that.
func readJobInput(stdin io.Reader) (string, error) {
	switch {
	case jobText != "":
		return jobText, nil
	case jobFile == "-":
		return readAll(stdin)
	case jobFile != "":
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("read job file: %w", err)
		}
		return string(data), nil
	case !isatty.IsTerminal(os.Stdin.Fd()):
		return readAll(stdin)
	default:
		return "", nil
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func terminalWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return defaultWidth
}
