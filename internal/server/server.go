// Package server is the web front end: one HTML page plus the two document
// downloads.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amishk599/vaplan/internal/ai"
	"github.com/amishk599/vaplan/internal/artifact"
	"github.com/amishk599/vaplan/internal/model"
	"github.com/amishk599/vaplan/internal/view"
)

// Analyzer runs one analysis. *ai.PlanAnalyzer satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, req ai.Request) (*model.AnalysisResult, error)
}

const (
	maxFormBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

type handler struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(analyzer Analyzer, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		RequestID(),
		Logging(logger),
		Recovery(logger),
	)

	h := &handler{analyzer: analyzer, logger: logger}
	r.GET("/", h.index)
	r.POST("/analyze", h.analyze)
	r.POST("/download/checklist", h.downloadChecklist)
	r.GET("/download/portfolio", h.downloadPortfolio)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func (h *handler) index(c *gin.Context) {
	h.renderPage(c, http.StatusOK, view.Page{})
}

func (h *handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormBytes)
	page := view.Page{
		JobText:    c.PostForm("job"),
		SkillsText: c.PostForm("skills"),
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), ai.Request{
		JobText:    page.JobText,
		SkillsText: page.SkillsText,
	})
	if err != nil {
		_ = c.Error(err)
		page.Error = model.UserMessage(err)
		status := http.StatusBadGateway
		if errors.Is(err, model.ErrInputValidation) {
			status = http.StatusUnprocessableEntity
		}
		h.renderPage(c, status, page)
		return
	}

	page.Result = result
	h.renderPage(c, http.StatusOK, page)
}

func (h *handler) downloadChecklist(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormBytes)

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(c.PostForm("analysis")), &result); err != nil {
		_ = c.Error(fmt.Errorf("decode analysis field: %w", err))
		c.String(http.StatusBadRequest, "Analyze a job before downloading the checklist.")
		return
	}
	if err := result.Validate(); err != nil {
		_ = c.Error(err)
		c.String(http.StatusBadRequest, "Analyze a job before downloading the checklist.")
		return
	}

	attachment(c, artifact.ChecklistFileName, artifact.Checklist(&result))
}

func (h *handler) downloadPortfolio(c *gin.Context) {
	attachment(c, artifact.PortfolioFileName, artifact.Portfolio())
}

func attachment(c *gin.Context, name, text string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func (h *handler) renderPage(c *gin.Context, status int, page view.Page) {
	var buf bytes.Buffer
	if err := view.HTML(&buf, page); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "could not render page")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
