package corpus_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textrank/internal/corpus"
	"textrank/internal/domain/entity"
)

func sentences(tokens ...string) []entity.Sentence {
	out := make([]entity.Sentence, len(tokens))
	for i, tok := range tokens {
		out[i] = entity.Sentence{Text: tok, Token: tok, Index: i}
	}
	return out
}

func TestBuildSharedVocabulary(t *testing.T) {
	docs := corpus.Build(sentences("rice pudding", "pudding again", "rice rice"))

	require.Len(t, docs, 3)

	// Ids are assigned in first-seen order: rice=0, pudding=1, again=2.
	want := []corpus.Document{
		{{ID: 0, Count: 1}, {ID: 1, Count: 1}},
		{{ID: 1, Count: 1}, {ID: 2, Count: 1}},
		{{ID: 0, Count: 2}},
	}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildKeepsEmptyDocuments(t *testing.T) {
	docs := corpus.Build(sentences("rice", "", "pudding"))

	require.Len(t, docs, 3)
	assert.Empty(t, docs[1])
	assert.Equal(t, 0, docs[1].Len())
}

func TestIdenticalTokenMultisetsProduceEqualDocuments(t *testing.T) {
	docs := corpus.Build(sentences("rice pudding", "pudding rice"))

	require.Len(t, docs, 2)
	assert.Equal(t, docs[0], docs[1])
	assert.Equal(t, docs[0].Key(), docs[1].Key())
}

func TestKeyRoundTrip(t *testing.T) {
	docs := corpus.Build(sentences("rice pudding rice", "pudding again"))

	for _, doc := range docs {
		assert.Equal(t, doc, corpus.ParseKey(doc.Key()))
	}

	assert.Equal(t, corpus.Key(""), corpus.Document(nil).Key())
	assert.Nil(t, corpus.ParseKey(""))
}

func TestKeysPreserveOrder(t *testing.T) {
	docs := corpus.Build(sentences("rice", "pudding", "again"))
	keys := corpus.Keys(docs)

	require.Len(t, keys, 3)
	for i, doc := range docs {
		assert.Equal(t, doc.Key(), keys[i])
	}
}

func TestDictionaryID(t *testing.T) {
	d := corpus.NewDictionary([][]string{{"rice", "pudding"}})

	assert.Equal(t, 2, d.Size())
	assert.Equal(t, 0, d.ID("rice"))
	assert.Equal(t, -1, d.ID("unknown"))
}
