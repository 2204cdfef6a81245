package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/metrics"
	"github.com/spacesedan/emotion-detector/internal/models"
	"github.com/spacesedan/emotion-detector/web"
)

const pageTitle = "Emotion Detector"

type emotionAnalyzer interface {
	Analyze(ctx context.Context, text string) (emotion.Result, error)
}

type analysisPublisher interface {
	PublishAnalysis(ctx context.Context, event models.AnalysisEvent) error
}

type Server struct {
	echo    *echo.Echo
	config  config.Config
	metrics *metrics.Metrics

	analyzer  emotionAnalyzer
	publisher analysisPublisher

	templates *template.Template
	intro     template.HTML
	startTime time.Time
	now       func() time.Time
}

// NewServer wires the HTTP surface. publisher may be nil, in which case no
// analysis events are emitted.
func NewServer(cfg config.Config, analyzer emotionAnalyzer, publisher analysisPublisher, m *metrics.Metrics) (*Server, error) {
	templates, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	introMarkdown, err := web.ContentFiles.ReadFile("content/intro.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read intro content: %w", err)
	}

	if m == nil {
		m = metrics.New()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:      e,
		config:    cfg,
		metrics:   m,
		analyzer:  analyzer,
		publisher: publisher,
		templates: templates,
		// intro.md is embedded and trusted
		intro:     template.HTML(blackfriday.Run(introMarkdown)),
		startTime: time.Now(),
		now:       time.Now,
	}

	srv.registerRoutes()

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	addr := net.JoinHostPort("0.0.0.0", s.config.Port)
	slog.Info("Starting server", "addr", addr, "env", s.config.AppEnv)
	if err := s.echo.Start(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(c.Request().Context(), "Template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}
