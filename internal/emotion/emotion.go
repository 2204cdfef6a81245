package emotion

import (
	"fmt"
	"strconv"
)

type Emotion string

const (
	Anger   Emotion = "anger"
	Disgust Emotion = "disgust"
	Fear    Emotion = "fear"
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
)

// All lists the emotions in canonical order. Dominant-emotion ties resolve
// to whichever comes first here.
var All = [...]Emotion{Anger, Disgust, Fear, Joy, Sadness}

const BlankInputMessage = "Input text cannot be blank. Please provide valid text."

type Scores struct {
	Anger   float64 `json:"anger"`
	Disgust float64 `json:"disgust"`
	Fear    float64 `json:"fear"`
	Joy     float64 `json:"joy"`
	Sadness float64 `json:"sadness"`
}

func (s Scores) Get(e Emotion) float64 {
	switch e {
	case Anger:
		return s.Anger
	case Disgust:
		return s.Disgust
	case Fear:
		return s.Fear
	case Joy:
		return s.Joy
	case Sadness:
		return s.Sadness
	default:
		return 0
	}
}

// Dominant returns the emotion with the highest score. Only a strictly
// greater score displaces an earlier emotion in All.
func (s Scores) Dominant() Emotion {
	dominant := All[0]
	best := s.Get(dominant)
	for _, e := range All[1:] {
		if v := s.Get(e); v > best {
			dominant, best = e, v
		}
	}
	return dominant
}

// Result is the outcome of one analysis. A blank result (the service
// rejected the input) has neither scores nor a dominant emotion.
type Result struct {
	scores   *Scores
	dominant *Emotion
}

func NewResult(scores Scores) Result {
	dominant := scores.Dominant()
	return Result{scores: &scores, dominant: &dominant}
}

func BlankResult() Result {
	return Result{}
}

func (r Result) IsBlank() bool {
	return r.dominant == nil
}

// Scores returns a copy of the scores, or nil for a blank result.
func (r Result) Scores() *Scores {
	if r.scores == nil {
		return nil
	}
	s := *r.scores
	return &s
}

func (r Result) Dominant() (Emotion, bool) {
	if r.dominant == nil {
		return "", false
	}
	return *r.dominant, true
}

// Equal reports whether both results carry the same scores and dominant emotion.
func (r Result) Equal(other Result) bool {
	if r.IsBlank() || other.IsBlank() {
		return r.IsBlank() == other.IsBlank()
	}
	return *r.scores == *other.scores && *r.dominant == *other.dominant
}

// Summary renders the single-line human readable report. Scores are printed
// with the shortest representation that round-trips, so nothing is rounded.
func (r Result) Summary() string {
	if r.IsBlank() {
		return BlankInputMessage
	}
	s := r.scores
	return fmt.Sprintf(
		"For the given statement, the system response is 'anger': %s, 'disgust': %s, 'fear': %s, 'joy': %s and 'sadness': %s. The dominant emotion is %s.",
		formatScore(s.Anger), formatScore(s.Disgust), formatScore(s.Fear),
		formatScore(s.Joy), formatScore(s.Sadness), *r.dominant)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
