package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spacesedan/emotion-detector/internal/logging"
)

const requestIDHeader = "X-Request-ID"

type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
}

func (s *Server) routes() []route {
	return []route{
		{http.MethodGet, "/", s.handleIndex},
		{http.MethodGet, "/emotionDetector", s.handleEmotionDetector},
		{http.MethodGet, "/api/emotions", s.handleEmotionsAPI},
		{http.MethodGet, "/health/live", s.handleLiveness},
		{http.MethodGet, "/metrics", echo.WrapHandler(s.metrics.Handler())},
	}
}

func (s *Server) registerRoutes() {
	s.echo.Use(correlationMiddleware)
	s.echo.Use(setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(s.metrics.Middleware())

	for _, r := range s.routes() {
		s.echo.Add(r.method, r.path, r.handler)
	}
}

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(requestIDHeader)
		if id == "" {
			id = logging.NewCorrelationID()
		}
		c.Response().Header().Set(requestIDHeader, id)
		ctx := logging.WithCorrelationID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
				slog.ErrorContext(c.Request().Context(), "Request", attrs...)
				return nil
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}
