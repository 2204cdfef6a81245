package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spacesedan/emotion-detector/internal/clients"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/logging"
	"github.com/spacesedan/emotion-detector/internal/models"
	"github.com/spacesedan/emotion-detector/internal/sentiment"
)

const textParam = "textToAnalyze"

type analysisResponse struct {
	Anger           *float64            `json:"anger"`
	Disgust         *float64            `json:"disgust"`
	Fear            *float64            `json:"fear"`
	Joy             *float64            `json:"joy"`
	Sadness         *float64            `json:"sadness"`
	DominantEmotion *string             `json:"dominant_emotion"`
	Sentiment       *sentiment.Polarity `json:"sentiment,omitempty"`
}

func (s *Server) handleIndex(c echo.Context) error {
	return s.renderTemplate(c, "index.html", map[string]any{
		"Title": pageTitle,
		"Intro": s.intro,
	})
}

// handleEmotionDetector leaves service failures to echo's error handler,
// which answers with a generic 500.
func (s *Server) handleEmotionDetector(c echo.Context) error {
	text := c.QueryParam(textParam)

	result, err := s.analyze(c, text)
	if err != nil {
		return err
	}

	if err := c.String(http.StatusOK, result.Summary()); err != nil {
		return fmt.Errorf("failed to write summary response: %w", err)
	}
	return nil
}

func (s *Server) handleEmotionsAPI(c echo.Context) error {
	text := c.QueryParam(textParam)

	result, err := s.analyze(c, text)
	if err != nil {
		if clients.IsServiceError(err) {
			return echo.NewHTTPError(http.StatusBadGateway, "emotion service unavailable").SetInternal(err)
		}
		return err
	}

	resp := analysisResponse{}
	if scores := result.Scores(); scores != nil {
		dominant, _ := result.Dominant()
		d := string(dominant)
		polarity := sentiment.AnalyzeWithVADER(text)
		resp = analysisResponse{
			Anger:           &scores.Anger,
			Disgust:         &scores.Disgust,
			Fear:            &scores.Fear,
			Joy:             &scores.Joy,
			Sadness:         &scores.Sadness,
			DominantEmotion: &d,
			Sentiment:       &polarity,
		}
	}

	if err := c.JSON(http.StatusOK, resp); err != nil {
		return fmt.Errorf("failed to write analysis response: %w", err)
	}
	return nil
}

func (s *Server) handleLiveness(c echo.Context) error {
	response := map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write liveness response: %w", err)
	}
	return nil
}

func (s *Server) analyze(c echo.Context, text string) (emotion.Result, error) {
	ctx := c.Request().Context()

	result, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		return emotion.Result{}, fmt.Errorf("emotion analysis failed: %w", err)
	}

	s.publish(c, text, result)
	return result, nil
}

func (s *Server) publish(c echo.Context, text string, result emotion.Result) {
	if s.publisher == nil {
		return
	}

	ctx := c.Request().Context()
	requestID, _ := logging.CorrelationID(ctx)
	event, ok := models.NewAnalysisEvent(requestID, text, result, s.now())
	if !ok {
		return
	}

	err := s.publisher.PublishAnalysis(ctx, event)
	s.metrics.ObservePublish(err)
	if err != nil {
		slog.WarnContext(ctx, "Failed to publish analysis event", "error", err)
	}
}
