package snippet

import "strings"

// EmptyPlaceholder is returned when there is nothing to summarize.
const EmptyPlaceholder = "(요약할 내용이 없습니다.)"

const defaultMaxSentences = 2

// DefaultBoundaries are the sentence-ending runes used for Korean news
// snippets. '다' and '요' are common Korean clause endings, not
// punctuation; treating them as boundaries occasionally cuts mid-thought,
// which is accepted.
var DefaultBoundaries = []rune{'.', '?', '!', '？', '！', '다', '요'}

// brReplacer normalizes the HTML fragments that show up in RSS snippets.
// This is a closed substitution list, not general HTML stripping.
var brReplacer = strings.NewReplacer(
	"<br>", ". ",
	"<br/>", ". ",
	"<br />", ". ",
	"&nbsp;", " ",
)

// ShortSummary returns the first maxSentences heuristically detected
// sentences of text, joined by single spaces. A maxSentences of zero or
// less means the default of 2.
func ShortSummary(text string, maxSentences int) string {
	return ShortSummaryWith(text, maxSentences, DefaultBoundaries)
}

// ShortSummaryWith is ShortSummary with a caller-supplied boundary set, so
// the Korean clause endings can be swapped out or disabled for other
// languages.
func ShortSummaryWith(text string, maxSentences int, boundaries []rune) string {
	if strings.TrimSpace(text) == "" {
		return EmptyPlaceholder
	}
	if maxSentences <= 0 {
		maxSentences = defaultMaxSentences
	}

	cleaned := brReplacer.Replace(text)
	if strings.TrimSpace(cleaned) == "" {
		// Inputs like a lone "&nbsp;" normalize to whitespace.
		return EmptyPlaceholder
	}

	var sentences []string
	var current strings.Builder
	for _, r := range cleaned {
		current.WriteRune(r)
		if !isBoundary(r, boundaries) {
			continue
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		return strings.TrimSpace(cleaned)
	}
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	return strings.TrimSpace(strings.Join(sentences, " "))
}

func isBoundary(r rune, boundaries []rune) bool {
	for _, b := range boundaries {
		if r == b {
			return true
		}
	}
	return false
}
