package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textrank/internal/corpus"
	"textrank/internal/domain/entity"
)

func sentence(text, token string, index int) entity.Sentence {
	return entity.Sentence{Text: text, Token: token, Index: index}
}

func TestImportantSentences_MapsRankedDocsBack(t *testing.T) {
	sentences := []entity.Sentence{
		sentence("The cat sat.", "cat sat", 0),
		sentence("The dog ran.", "dog ran", 1),
		sentence("Birds fly south.", "birds fly south", 2),
	}
	docs := corpus.Build(sentences)

	// Importance order: third, first.
	ranked := []corpus.Document{docs[2], docs[0]}

	got := importantSentences(sentences, docs, ranked)
	require.Len(t, got, 2)
	assert.Equal(t, "Birds fly south.", got[0].Text)
	assert.Equal(t, "The cat sat.", got[1].Text)
}

func TestImportantSentences_CollidingKeysFirstWins(t *testing.T) {
	// Same token multiset, different display text.
	sentences := []entity.Sentence{
		sentence("The cat sat down.", "cat sat", 0),
		sentence("Sat the cat!", "sat cat", 1),
	}
	docs := corpus.Build(sentences)
	require.Equal(t, docs[0].Key(), docs[1].Key())

	got := importantSentences(sentences, docs, []corpus.Document{docs[1]})
	require.Len(t, got, 1)
	assert.Equal(t, "The cat sat down.", got[0].Text)
}

func TestSentencesByWordCount_StopsWhenNotImproving(t *testing.T) {
	// Word counts 4, 5, 7 against a target of 10: accepting the first two
	// moves the total from 0 to 9 (distance 10 -> 1); the third would
	// overshoot to 16 (distance 6), so the walk stops.
	sentences := []entity.Sentence{
		sentence("one two three four", "one two three four", 0),
		sentence("five six seven eight nine", "five six seven eight nine", 1),
		sentence("a b c d e f g", "a b c d e f g", 2),
	}

	got := sentencesByWordCount(sentences, 10)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 1, got[1].Index)
}

func TestSentencesByWordCount_ZeroTarget(t *testing.T) {
	sentences := []entity.Sentence{
		sentence("some words here", "some words here", 0),
	}

	got := sentencesByWordCount(sentences, 0)
	assert.Empty(t, got)
}

func TestSentencesByWordCount_AcceptsAllWhenTargetLarge(t *testing.T) {
	sentences := []entity.Sentence{
		sentence("one two", "one two", 0),
		sentence("three four", "three four", 1),
	}

	got := sentencesByWordCount(sentences, 100)
	assert.Len(t, got, 2)
}

func TestTopDistinctSentences_FirstAlwaysIncluded(t *testing.T) {
	sentences := []entity.Sentence{
		sentence("Most important.", "", 0),
		sentence("Second.", "", 1),
	}

	got := topDistinctSentences(sentences, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Most important.", got[0].Text)
}

func TestTopDistinctSentences_SkipsDuplicates(t *testing.T) {
	sentences := []entity.Sentence{
		sentence("Repeated line.", "", 0),
		sentence("Repeated line.", "", 3),
		sentence("Fresh line.", "", 1),
		sentence("Another line.", "", 2),
	}

	got := topDistinctSentences(sentences, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Repeated line.", got[0].Text)
	assert.Equal(t, "Fresh line.", got[1].Text)
	assert.Equal(t, "Another line.", got[2].Text)
}

func TestTopDistinctSentences_FewerDistinctThanRequested(t *testing.T) {
	sentences := []entity.Sentence{
		sentence("Same.", "", 0),
		sentence("Same.", "", 1),
	}

	got := topDistinctSentences(sentences, 5)
	assert.Len(t, got, 1)
}

func TestTopDistinctSentences_Empty(t *testing.T) {
	assert.Nil(t, topDistinctSentences(nil, 3))
}

func TestSelectSentences_DefaultKeepsImportanceOrder(t *testing.T) {
	sentences := []entity.Sentence{
		sentence("Alpha beta.", "alpha beta", 0),
		sentence("Gamma delta.", "gamma delta", 1),
	}
	docs := corpus.Build(sentences)

	got := selectSentences(sentences, docs, []corpus.Document{docs[1], docs[0]}, Options{})
	require.Len(t, got, 2)
	assert.Equal(t, "Gamma delta.", got[0].Text)
	assert.Equal(t, "Alpha beta.", got[1].Text)
}
