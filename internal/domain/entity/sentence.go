// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Sentence, along with
// their validation rules and domain-specific errors.
package entity

import "strings"

// Sentence represents a single sentence extracted from the input text.
// It pairs the original display text with its normalized token form and
// remembers the sentence's position in the source. Sentences are created
// once by segmentation and never mutated afterwards.
type Sentence struct {
	// Text is the original sentence as it appeared in the input,
	// used for display in the final summary.
	Text string

	// Token is the normalized whitespace-separated token string used
	// for similarity scoring. It may be empty if every token of the
	// sentence was filtered out during normalization.
	Token string

	// Index is the zero-based position of the sentence in the source text.
	Index int
}

// WordCount returns the number of words in the original sentence text.
// It is used by the word-count selection policy.
func (s Sentence) WordCount() int {
	return len(strings.Fields(s.Text))
}

// Tokens returns the normalized tokens of the sentence.
// Returns an empty slice when no tokens survived normalization.
func (s Sentence) Tokens() []string {
	return strings.Fields(s.Token)
}
