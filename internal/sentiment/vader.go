package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"

	polarityThreshold = 0.20
)

var (
	analyzer    = govader.NewSentimentIntensityAnalyzer()
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

type Polarity struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and strips the resulting markup,
// leaving whitespace-normalized prose.
func ConvertMarkdownToText(input string) string {
	withoutLinks := RemoveLinks(input)
	output := blackfriday.Run([]byte(withoutLinks),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainRenderer()))
	plain := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))
	return strings.Join(strings.Fields(plain), " ")
}

// smartypants would curl apostrophes and break VADER's negation lookups.
func plainRenderer() blackfriday.Renderer {
	return blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: blackfriday.HTMLFlagsNone})
}

func AnalyzeWithVADER(text string) Polarity {
	plainText := ConvertMarkdownToText(text)
	score := analyzer.PolarityScores(plainText).Compound

	var label string
	if score >= polarityThreshold {
		label = LabelPositive
	} else if score <= -polarityThreshold {
		label = LabelNegative
	} else {
		label = LabelNeutral
	}

	return Polarity{Score: score, Label: label}
}
