package corpus

import "sort"

// Dictionary maps vocabulary terms to integer ids. Ids are assigned in
// first-seen order and are stable only within the corpus they were built
// for; no cross-call state is kept.
type Dictionary struct {
	tokenID map[string]int
}

// NewDictionary builds a vocabulary jointly across all token lists.
func NewDictionary(tokenLists [][]string) *Dictionary {
	d := &Dictionary{tokenID: make(map[string]int)}
	for _, tokens := range tokenLists {
		for _, tok := range tokens {
			if _, ok := d.tokenID[tok]; !ok {
				d.tokenID[tok] = len(d.tokenID)
			}
		}
	}
	return d
}

// Size returns the number of distinct terms in the vocabulary.
func (d *Dictionary) Size() int {
	return len(d.tokenID)
}

// ID returns the id assigned to a term, or -1 if the term is unknown.
func (d *Dictionary) ID(term string) int {
	if id, ok := d.tokenID[term]; ok {
		return id
	}
	return -1
}

// DocBow converts a token list into its bag-of-words document, sorted by
// term id. Tokens missing from the vocabulary are ignored; an empty token
// list produces an empty document.
func (d *Dictionary) DocBow(tokens []string) Document {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		if id, ok := d.tokenID[tok]; ok {
			counts[id]++
		}
	}

	doc := make(Document, 0, len(counts))
	for id, count := range counts {
		doc = append(doc, TermCount{ID: id, Count: count})
	}
	sort.Slice(doc, func(i, j int) bool { return doc[i].ID < doc[j].ID })
	return doc
}
