package sentiment

import (
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

const (
	POSITIVE = "Positive"
	NEGATIVE = "Negative"
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()

	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern          = regexp.MustCompile(`<[^>]+>`)

	plainRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
)

// Prediction has the same shape the inference backend answers with.
type Prediction struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertToText turns markdown or HTML-ish review text into plain words.
func ConvertToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainRenderer))

	text := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))
	return strings.Join(strings.Fields(RemoveLinks(text)), " ")
}

// Predict scores text with VADER and reports it as a two-class label with a
// percentage confidence rounded to two decimals.
func Predict(text string) Prediction {
	compound := analyzer.PolarityScores(ConvertToText(text)).Compound
	probability := (compound + 1) / 2

	if probability >= 0.5 {
		return Prediction{Sentiment: POSITIVE, Confidence: roundPercent(probability)}
	}
	return Prediction{Sentiment: NEGATIVE, Confidence: roundPercent(1 - probability)}
}

func roundPercent(p float64) float64 {
	return math.Round(p*100*100) / 100
}
