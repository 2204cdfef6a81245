package models

import (
	"time"

	"github.com/spacesedan/emotion-detector/internal/emotion"
)

// NewAnalysisEvent builds the event for a completed analysis. Blank results
// produce no event.
func NewAnalysisEvent(requestID, text string, result emotion.Result, at time.Time) (AnalysisEvent, bool) {
	dominant, ok := result.Dominant()
	if !ok {
		return AnalysisEvent{}, false
	}

	s := result.Scores()
	scores := make(map[string]float64, len(emotion.All))
	for _, e := range emotion.All {
		scores[string(e)] = s.Get(e)
	}

	return AnalysisEvent{
		RequestID:       requestID,
		Text:            text,
		DominantEmotion: string(dominant),
		Scores:          scores,
		AnalyzedAt:      at.UTC(),
	}, true
}
