// Package textcleaner provides sentence segmentation and token normalization
// for the summarization pipeline. Segmentation is newline-sensitive: a line
// break always terminates a sentence, and sentences within a line are split
// on terminal punctuation. Normalization lowercases tokens, strips
// punctuation and filters stopwords so that similarity scoring operates on
// comparable token strings.
package textcleaner

import (
	"strings"
	"unicode"

	"textrank/internal/domain/entity"
)

// Cleaner segments text into sentences and normalizes their tokens.
// The zero value is not usable; construct with New or NewWithStopwords.
type Cleaner struct {
	stopwords map[string]struct{}
}

// New creates a Cleaner with the default English stopword list.
func New() *Cleaner {
	return NewWithStopwords(defaultStopwords)
}

// NewWithStopwords creates a Cleaner with a custom stopword list.
// Stopwords are matched against lowercased tokens.
func NewWithStopwords(stopwords []string) *Cleaner {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Cleaner{stopwords: set}
}

// SplitSentences segments text into sentences and returns them with their
// normalized token strings and original positions. No sentence is dropped:
// a sentence whose tokens are all filtered out is returned with an empty
// Token field so that positions stay aligned with the source text.
func (c *Cleaner) SplitSentences(text string) []entity.Sentence {
	raw := segment(text)

	sentences := make([]entity.Sentence, 0, len(raw))
	for i, s := range raw {
		sentences = append(sentences, entity.Sentence{
			Text:  s,
			Token: c.normalize(s),
			Index: i,
		})
	}
	return sentences
}

// segment splits text into sentence strings. Newlines are hard boundaries;
// within a line, a sentence ends at terminal punctuation followed by a space
// or the end of the line. Empty segments are discarded.
func segment(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		start := 0
		runes := []rune(line)
		for i := 0; i < len(runes); i++ {
			if !isTerminal(runes[i]) {
				continue
			}
			// Consume runs of terminal punctuation ("?!", "...").
			for i+1 < len(runes) && isTerminal(runes[i+1]) {
				i++
			}
			if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
				continue
			}
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// isTerminal reports whether r ends a sentence within a line.
func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…':
		return true
	}
	return false
}

// normalize converts a sentence into its whitespace-separated token string.
// Tokens are lowercased, punctuation and symbols are treated as separators,
// and stopwords and single-rune tokens are dropped.
func (c *Cleaner) normalize(sentence string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, sentence)

	var b strings.Builder
	for _, tok := range strings.Fields(mapped) {
		if len([]rune(tok)) < 2 {
			continue
		}
		if _, ok := c.stopwords[tok]; ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}
