package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScores_Dominant(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   Emotion
	}{
		{"joy", Scores{Anger: 0.01, Disgust: 0.01, Fear: 0.01, Joy: 0.95, Sadness: 0.02}, Joy},
		{"sadness last", Scores{Anger: 0.1, Disgust: 0.2, Fear: 0.3, Joy: 0.1, Sadness: 0.9}, Sadness},
		{"anger first", Scores{Anger: 0.7, Disgust: 0.2, Fear: 0.3, Joy: 0.1, Sadness: 0.2}, Anger},
		{"tie anger disgust", Scores{Anger: 0.5, Disgust: 0.5}, Anger},
		{"tie fear sadness", Scores{Fear: 0.4, Sadness: 0.4, Joy: 0.1}, Fear},
		{"all zero", Scores{}, Anger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scores.Dominant())
		})
	}
}

func TestNewResult(t *testing.T) {
	scores := Scores{Anger: 0.2, Disgust: 0.1, Fear: 0.6, Joy: 0.05, Sadness: 0.05}
	r := NewResult(scores)

	require.False(t, r.IsBlank())
	dominant, ok := r.Dominant()
	require.True(t, ok)
	assert.Equal(t, Fear, dominant)
	require.NotNil(t, r.Scores())
	assert.Equal(t, scores, *r.Scores())
}

func TestResult_ScoresIsACopy(t *testing.T) {
	r := NewResult(Scores{Joy: 0.9})

	s := r.Scores()
	s.Joy = 0

	assert.Equal(t, 0.9, r.Scores().Joy)
}

func TestBlankResult(t *testing.T) {
	r := BlankResult()

	assert.True(t, r.IsBlank())
	assert.Nil(t, r.Scores())
	_, ok := r.Dominant()
	assert.False(t, ok)
	assert.Equal(t, BlankInputMessage, r.Summary())
}

func TestResult_Equal(t *testing.T) {
	a := NewResult(Scores{Joy: 0.9, Fear: 0.1})
	b := NewResult(Scores{Joy: 0.9, Fear: 0.1})
	c := NewResult(Scores{Joy: 0.8, Fear: 0.1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(BlankResult()))
	assert.True(t, BlankResult().Equal(BlankResult()))
}

func TestResult_Summary(t *testing.T) {
	r := NewResult(Scores{Anger: 0.01, Disgust: 0.01, Fear: 0.01, Joy: 0.95, Sadness: 0.02})

	assert.Equal(t,
		"For the given statement, the system response is 'anger': 0.01, 'disgust': 0.01, 'fear': 0.01, 'joy': 0.95 and 'sadness': 0.02. The dominant emotion is joy.",
		r.Summary())
}

func TestResult_SummaryKeepsFullPrecision(t *testing.T) {
	r := NewResult(Scores{Anger: 0.01364663, Disgust: 0.0017160787, Fear: 0.008986978, Joy: 0.9719017, Sadness: 0.055187024})

	summary := r.Summary()
	assert.Contains(t, summary, "'anger': 0.01364663,")
	assert.Contains(t, summary, "'disgust': 0.0017160787,")
	assert.Contains(t, summary, "'joy': 0.9719017 and")
	assert.Contains(t, summary, "The dominant emotion is joy.")
}
