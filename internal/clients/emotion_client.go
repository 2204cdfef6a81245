package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/models"
)

const (
	OutcomeOK    = "ok"
	OutcomeBlank = "blank"
	OutcomeError = "error"
)

// Observer receives the outcome and latency of every outbound prediction call.
type Observer interface {
	ObserveEmotionRequest(outcome string, elapsed time.Duration)
}

type EmotionClient struct {
	client   *http.Client
	endpoint string
	observer Observer
}

type Option func(*EmotionClient)

func WithObserver(o Observer) Option {
	return func(c *EmotionClient) { c.observer = o }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *EmotionClient) { c.client = hc }
}

func NewEmotionClient(endpoint string, timeout time.Duration, opts ...Option) *EmotionClient {
	if endpoint == "" {
		endpoint = EMOTION_PREDICT_ENDPOINT
	}
	if timeout <= 0 {
		timeout = EMOTION_TIMEOUT
	}

	slog.Info("[EmotionClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", timeout))

	c := &EmotionClient{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze sends text to the prediction service exactly once. A 400 from the
// service yields a blank result rather than an error.
func (c *EmotionClient) Analyze(ctx context.Context, text string) (emotion.Result, error) {
	start := time.Now()
	result, err := c.analyze(ctx, text)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		c.observe(OutcomeError, elapsed)
		slog.ErrorContext(ctx, "[EmotionClient] Emotion prediction failed",
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
	case result.IsBlank():
		c.observe(OutcomeBlank, elapsed)
		slog.InfoContext(ctx, "[EmotionClient] Service rejected input as blank",
			slog.Duration("elapsed", elapsed))
	default:
		c.observe(OutcomeOK, elapsed)
		dominant, _ := result.Dominant()
		slog.InfoContext(ctx, "[EmotionClient] Emotion prediction successful",
			slog.Duration("elapsed", elapsed),
			slog.String("dominant_emotion", string(dominant)))
	}

	return result, err
}

func (c *EmotionClient) analyze(ctx context.Context, text string) (emotion.Result, error) {
	body, err := json.Marshal(models.EmotionPredictRequest{
		RawDocument: models.RawDocument{Text: text},
	})
	if err != nil {
		return emotion.Result{}, &ServiceError{Op: "marshal", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return emotion.Result{}, &ServiceError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	req.Header.Set(EMOTION_MODEL_HEADER, EMOTION_MODEL_ID)

	resp, err := c.client.Do(req)
	if err != nil {
		return emotion.Result{}, &ServiceError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return emotion.BlankResult(), nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return emotion.Result{}, &ServiceError{Op: "read", StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.WarnContext(ctx, "[EmotionClient] Unexpected status from prediction service",
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return emotion.Result{}, &ServiceError{
			Op:         "status",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	scores, err := decodeScores(respBody)
	if err != nil {
		slog.WarnContext(ctx, "[EmotionClient] Failed to decode prediction response",
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return emotion.Result{}, &ServiceError{Op: "decode", StatusCode: resp.StatusCode, Err: err}
	}

	return emotion.NewResult(scores), nil
}

var errNoPredictions = errors.New("response contains no emotion predictions")

func decodeScores(body []byte) (emotion.Scores, error) {
	var out models.EmotionPredictResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return emotion.Scores{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(out.EmotionPredictions) == 0 {
		return emotion.Scores{}, errNoPredictions
	}

	raw := out.EmotionPredictions[0].Emotion
	fields := []struct {
		name  emotion.Emotion
		value *float64
	}{
		{emotion.Anger, raw.Anger},
		{emotion.Disgust, raw.Disgust},
		{emotion.Fear, raw.Fear},
		{emotion.Joy, raw.Joy},
		{emotion.Sadness, raw.Sadness},
	}
	for _, f := range fields {
		if f.value == nil {
			return emotion.Scores{}, fmt.Errorf("prediction is missing %q score", f.name)
		}
	}

	return emotion.Scores{
		Anger:   *raw.Anger,
		Disgust: *raw.Disgust,
		Fear:    *raw.Fear,
		Joy:     *raw.Joy,
		Sadness: *raw.Sadness,
	}, nil
}

func (c *EmotionClient) observe(outcome string, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveEmotionRequest(outcome, elapsed)
	}
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
