package corpus

import (
	"strings"

	"textrank/internal/domain/entity"
)

// Build converts an ordered sequence of sentences into bag-of-words
// documents over a vocabulary built jointly across all of them. The result
// preserves input order and length: no sentence is dropped, and a sentence
// without tokens yields an empty document.
func Build(sentences []entity.Sentence) []Document {
	tokenLists := make([][]string, len(sentences))
	for i, s := range sentences {
		tokenLists[i] = strings.Fields(s.Token)
	}

	dictionary := NewDictionary(tokenLists)

	docs := make([]Document, len(sentences))
	for i, tokens := range tokenLists {
		docs[i] = dictionary.DocBow(tokens)
	}
	return docs
}

// Keys canonicalizes every document of a corpus, preserving order.
func Keys(docs []Document) []Key {
	keys := make([]Key, len(docs))
	for i, doc := range docs {
		keys[i] = doc.Key()
	}
	return keys
}
