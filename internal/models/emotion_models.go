package models

import "time"

type (
	EmotionPredictRequest struct {
		RawDocument RawDocument `json:"raw_document"`
	}
	RawDocument struct {
		Text string `json:"text"`
	}
)

type (
	EmotionPredictResponse struct {
		EmotionPredictions []EmotionPrediction `json:"emotionPredictions"`
	}
	EmotionPrediction struct {
		Emotion EmotionScores `json:"emotion"`
	}
	EmotionScores struct {
		Anger   *float64 `json:"anger"`
		Disgust *float64 `json:"disgust"`
		Fear    *float64 `json:"fear"`
		Joy     *float64 `json:"joy"`
		Sadness *float64 `json:"sadness"`
	}
)

// AnalysisEvent is published once per successful analysis.
type AnalysisEvent struct {
	RequestID       string             `json:"request_id"`
	Text            string             `json:"text"`
	DominantEmotion string             `json:"dominant_emotion"`
	Scores          map[string]float64 `json:"scores"`
	AnalyzedAt      time.Time          `json:"analyzed_at"`
}
