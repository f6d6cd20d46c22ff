// Package corpus converts segmented sentences into bag-of-words documents
// over a shared vocabulary, and provides the canonical hashable form used
// as graph node identity during ranking.
package corpus

import (
	"strconv"
	"strings"
)

// TermCount is a single (term id, term frequency) entry of a document.
type TermCount struct {
	ID    int
	Count int
}

// Document is the bag-of-words representation of one sentence: an ordered
// sequence of (term id, frequency) pairs sorted by term id. Two sentences
// with identical token multisets produce value-identical documents.
type Document []TermCount

// Len returns the total number of token occurrences in the document.
func (d Document) Len() int {
	total := 0
	for _, tc := range d {
		total += tc.Count
	}
	return total
}

// Key is the canonical, order-fixed form of a document. It is comparable,
// so it can serve as a graph node and as a map key back to the originating
// sentence. Distinct sentences with identical token multisets collapse to
// the same key; the pipeline keeps that lossy behavior and resolves the
// collision first-writer-wins when mapping keys back to sentences.
type Key string

// Key returns the canonical key of the document. The encoding fixes the
// term order (ascending id, as built by the Dictionary), so equal documents
// always produce equal keys and the key round-trips via ParseKey.
func (d Document) Key() Key {
	if len(d) == 0 {
		return ""
	}
	var b strings.Builder
	for i, tc := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(tc.ID))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(tc.Count))
	}
	return Key(b.String())
}

// ParseKey restores the document encoded by Key. Returns nil for the empty
// key. The input is trusted: keys are only produced by Document.Key.
func ParseKey(k Key) Document {
	if k == "" {
		return nil
	}
	fields := strings.Fields(string(k))
	doc := make(Document, 0, len(fields))
	for _, f := range fields {
		id, count, ok := strings.Cut(f, ":")
		if !ok {
			continue
		}
		termID, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		freq, err := strconv.Atoi(count)
		if err != nil {
			continue
		}
		doc = append(doc, TermCount{ID: termID, Count: freq})
	}
	return doc
}
