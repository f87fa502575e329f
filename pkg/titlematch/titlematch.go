// Package titlematch normalizes movie titles and finds the closest candidate
// for a free-text title lookup.
package titlematch

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Confidence is the confidence level of a title match.
type Confidence int

// Confidence levels by similarity score.
const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the best candidate for a query title.
type Match struct {
	Index      int     // index into the candidates slice, -1 when empty
	Score      float64 // Jaro-Winkler similarity, 0.0-1.0
	Confidence Confidence
}

// Best finds the candidate title closest to the query. Jaro-Winkler
// similarity favors prefix matches, which suits movie titles where subtitles
// diverge after a shared prefix.
func Best(query string, candidates []string) Match {
	if len(candidates) == 0 {
		return Match{Index: -1}
	}

	normalized := Normalize(query)
	best := Match{Index: -1}

	for i, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(normalized, Normalize(candidate)))
		if score > best.Score || best.Index == -1 {
			best.Index = i
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	}
	return best
}

// Normalize lowercases a title and strips accents, punctuation, and leading
// articles so spelling variants compare equal.
func Normalize(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, ":", " ")

	s = stripLeadingArticle(s)

	return strings.Join(strings.Fields(s), " ")
}

var articles = []string{"the ", "a ", "an "}

func stripLeadingArticle(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, article := range articles {
		if strings.HasPrefix(trimmed, article) {
			return trimmed[len(article):]
		}
	}
	return trimmed
}

// removeAccents decomposes characters and drops combining marks, so "Léon"
// matches "Leon".
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
