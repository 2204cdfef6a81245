package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/clients"
	"github.com/spacesedan/emotion-detector/internal/clients/kafka_client"
	"github.com/spacesedan/emotion-detector/internal/logging"
	"github.com/spacesedan/emotion-detector/internal/metrics"
	"github.com/spacesedan/emotion-detector/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	cfg := config.Load(env)
	logging.InitLogger(cfg.LogLevel)

	m := metrics.New()
	emotionClient := clients.NewEmotionClient(cfg.EmotionEndpoint, cfg.EmotionTimeout,
		clients.WithObserver(m))

	srv, closePublisher, err := newServer(cfg, emotionClient, m)
	if err != nil {
		slog.Error("[Main] Failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closePublisher()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped unexpectedly", slog.String("error", err.Error()))
		}
	case <-stopChan:
		slog.Info("Shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
		}
	}
}

// newServer attaches the Kafka publisher only when a broker is configured.
// The returned func closes the publisher and is always safe to call.
func newServer(cfg config.Config, emotionClient *clients.EmotionClient, m *metrics.Metrics) (*server.Server, func(), error) {
	noop := func() {}

	kafkaCfg := kafka_client.KafkaConfig{Broker: cfg.KafkaBroker, Topic: cfg.AnalysisTopic}
	if !kafkaCfg.Enabled() {
		slog.Info("[Main] KAFKA_BROKER not set, analysis events disabled")
		srv, err := server.NewServer(cfg, emotionClient, nil, m)
		return srv, noop, err
	}

	producer, err := kafka_client.NewProducer(kafkaCfg)
	if err != nil {
		slog.Warn("[Main] Kafka producer unavailable, analysis events disabled",
			slog.String("error", err.Error()))
		srv, err := server.NewServer(cfg, emotionClient, nil, m)
		return srv, noop, err
	}

	srv, err := server.NewServer(cfg, emotionClient, producer, m)
	if err != nil {
		producer.Close()
		return nil, noop, err
	}
	return srv, producer.Close, nil
}
