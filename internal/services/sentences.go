package services

import (
	"strings"
	"unicode"
)

// Segmenter splits text into sentence spans.
type Segmenter interface {
	Sentences(text string) []string
}

type ruleSegmenter struct{}

func NewRuleSegmenter() Segmenter {
	return &ruleSegmenter{}
}

// Sentences breaks at line ends and at '.', '!' or '?' followed by whitespace
// or the end of the text. Spans are trimmed and empty spans are dropped.
func (s *ruleSegmenter) Sentences(text string) []string {
	var (
		sentences []string
		current   strings.Builder
	)

	flush := func() {
		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' || r == '\r' {
			flush()
			continue
		}

		current.WriteRune(r)

		if isTerminator(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			flush()
		}
	}
	flush()

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
