package summary

import (
	"textrank/internal/corpus"
	"textrank/internal/domain/entity"
)

// selectSentences maps the ranked documents back to sentences and applies
// the selection policy from opts. The input documents are in importance
// order and the returned sentences preserve it.
func selectSentences(sentences []entity.Sentence, docs []corpus.Document, ranked []corpus.Document, opts Options) []entity.Sentence {
	important := importantSentences(sentences, docs, ranked)

	switch {
	case opts.WordCount != nil:
		return sentencesByWordCount(important, *opts.WordCount)
	case opts.SentenceCount != nil:
		return topDistinctSentences(important, *opts.SentenceCount)
	default:
		return important
	}
}

// importantSentences resolves each ranked document back to its originating
// sentence via the canonical key. When distinct sentences share a token
// multiset their documents collapse to one key; the first sentence wins
// and represents all of them.
func importantSentences(sentences []entity.Sentence, docs []corpus.Document, ranked []corpus.Document) []entity.Sentence {
	byKey := make(map[corpus.Key]entity.Sentence, len(docs))
	for i, doc := range docs {
		key := doc.Key()
		if _, ok := byKey[key]; !ok {
			byKey[key] = sentences[i]
		}
	}

	out := make([]entity.Sentence, 0, len(ranked))
	for _, doc := range ranked {
		if sentence, ok := byKey[doc.Key()]; ok {
			out = append(out, sentence)
		}
	}
	return out
}

// sentencesByWordCount walks the importance-ordered sentences and accepts
// each candidate only while acceptance strictly reduces the absolute
// distance between the running word total and the target. The first
// non-improving candidate stops the walk, so the returned total is the
// closest achievable running-sum prefix to the target.
func sentencesByWordCount(sentences []entity.Sentence, target int) []entity.Sentence {
	length := 0
	selected := make([]entity.Sentence, 0, len(sentences))

	for _, sentence := range sentences {
		words := sentence.WordCount()
		if abs(target-length-words) >= abs(target-length) {
			return selected
		}
		selected = append(selected, sentence)
		length += words
	}
	return selected
}

// topDistinctSentences returns up to n distinct sentences from the
// importance-ordered input. The most important sentence is always
// included; later sentences whose full text duplicates an accepted one are
// skipped. Order is importance order among the selected subset.
func topDistinctSentences(sentences []entity.Sentence, n int) []entity.Sentence {
	if len(sentences) == 0 {
		return nil
	}

	seen := map[string]struct{}{sentences[0].Text: {}}
	selected := []entity.Sentence{sentences[0]}

	for _, sentence := range sentences[1:] {
		if len(selected) >= n {
			break
		}
		if _, dup := seen[sentence.Text]; dup {
			continue
		}
		seen[sentence.Text] = struct{}{}
		selected = append(selected, sentence)
	}
	return selected
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
