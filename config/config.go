package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	DEFAULT_PORT           = "5000"
	DEFAULT_ANALYSIS_TOPIC = "emotion.analyses"
	DEFAULT_TIMEOUT        = 10 * time.Second
)

type Config struct {
	AppEnv          string
	Port            string
	LogLevel        string
	EmotionEndpoint string
	EmotionTimeout  time.Duration
	KafkaBroker     string
	AnalysisTopic   string
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// Load reads configuration from the environment. An empty EmotionEndpoint
// selects the client's built-in endpoint.
func Load(env string) Config {
	timeout := DEFAULT_TIMEOUT
	if raw := os.Getenv("EMOTION_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			slog.Warn("Invalid EMOTION_TIMEOUT, using default",
				slog.String("value", raw),
				slog.Duration("default", DEFAULT_TIMEOUT))
		} else {
			timeout = parsed
		}
	}

	return Config{
		AppEnv:          env,
		Port:            getEnv("PORT", DEFAULT_PORT),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		EmotionEndpoint: os.Getenv("EMOTION_ENDPOINT"),
		EmotionTimeout:  timeout,
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		AnalysisTopic:   getEnv("KAFKA_ANALYSIS_TOPIC", DEFAULT_ANALYSIS_TOPIC),
	}
}
