// Package bm25 implements Okapi BM25 relevance scoring over bag-of-words
// corpora. It produces the pairwise weights used to fill the similarity
// graph: every document in turn acts as a query against all documents of
// the corpus, yielding a sparse row of (candidate index, weight) pairs.
package bm25

import (
	"math"
	"sort"

	"textrank/internal/corpus"
)

// Default free parameters of the scoring function. K1 and B are the usual
// Okapi constants; Epsilon floors negative IDF values at a fraction of the
// average IDF so that very common terms do not push scores below zero.
const (
	DefaultK1      = 1.5
	DefaultB       = 0.75
	DefaultEpsilon = 0.25
)

// Weight is one sparse entry of a score row: the candidate document index
// and its relevance to the query document.
type Weight struct {
	Index int
	Value float64
}

// Scorer holds the per-corpus statistics needed to score queries. Build it
// once per ranking call with New; it keeps no state beyond the corpus it
// was constructed from.
type Scorer struct {
	k1, b float64

	corpus    []corpus.Document
	docLens   []int
	avgDocLen float64
	idf       map[int]float64
}

// New builds a Scorer over the given corpus using parameters k1, b and
// epsilon. Pass the Default constants unless the caller has tuned values.
func New(docs []corpus.Document, k1, b, epsilon float64) *Scorer {
	s := &Scorer{
		k1:      k1,
		b:       b,
		corpus:  docs,
		docLens: make([]int, len(docs)),
		idf:     make(map[int]float64),
	}

	docFreqs := make(map[int]int)
	totalLen := 0
	for i, doc := range docs {
		s.docLens[i] = doc.Len()
		totalLen += s.docLens[i]
		for _, tc := range doc {
			docFreqs[tc.ID]++
		}
	}
	if len(docs) > 0 {
		s.avgDocLen = float64(totalLen) / float64(len(docs))
	}

	// IDF per term; negative values (terms in more than half the corpus)
	// are floored at epsilon times the average positive-sum IDF. The sum is
	// accumulated over terms in ID order so the floor is bit-for-bit
	// reproducible regardless of map iteration order.
	terms := make([]int, 0, len(docFreqs))
	for term := range docFreqs {
		terms = append(terms, term)
	}
	sort.Ints(terms)

	n := float64(len(docs))
	idfSum := 0.0
	var negative []int
	for _, term := range terms {
		df := docFreqs[term]
		idf := math.Log(n-float64(df)+0.5) - math.Log(float64(df)+0.5)
		s.idf[term] = idf
		idfSum += idf
		if idf < 0 {
			negative = append(negative, term)
		}
	}
	if len(docFreqs) > 0 {
		averageIDF := idfSum / float64(len(docFreqs))
		floor := epsilon * averageIDF
		for _, term := range negative {
			s.idf[term] = floor
		}
	}
	return s
}

// Row scores document i as a query against every document of the corpus and
// returns the sparse result: only candidates with a non-zero weight appear.
// Rows are computed on demand, one query at a time.
func (s *Scorer) Row(i int) []Weight {
	query := s.corpus[i]

	row := make([]Weight, 0, len(s.corpus))
	for j := range s.corpus {
		if score := s.score(query, j); score != 0 {
			row = append(row, Weight{Index: j, Value: score})
		}
	}
	return row
}

// score computes the BM25 relevance of candidate document j to the query.
// Only distinct query terms contribute; query-side frequency is ignored,
// matching the classic formulation.
func (s *Scorer) score(query corpus.Document, j int) float64 {
	candidate := s.corpus[j]

	freq := make(map[int]int, len(candidate))
	for _, tc := range candidate {
		freq[tc.ID] = tc.Count
	}

	norm := 1 - s.b + s.b*float64(s.docLens[j])/s.avgDocLen
	total := 0.0
	for _, tc := range query {
		f := float64(freq[tc.ID])
		if f == 0 {
			continue
		}
		total += s.idf[tc.ID] * f * (s.k1 + 1) / (f + s.k1*norm)
	}
	return total
}
