package search

import (
	"slices"

	"github.com/leon-matthews/tinysearch/core"
)

// Hit is a single scored document.
type Hit struct {
	Document *core.Document
	Score    int
}

// ScoreBoard accumulates weighted match scores per document.
//
// Boards from independent searches, including searches over different
// backing collections, can be combined with Merge: scores are directly
// comparable because field weights are the only source of relative
// magnitude.
type ScoreBoard struct {
	entries map[core.ID]*Hit
}

// NewScoreBoard creates an empty ScoreBoard.
func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		entries: make(map[core.ID]*Hit),
	}
}

// Add accumulates score for a document, keyed by document ID.
func (b *ScoreBoard) Add(doc *core.Document, score int) {
	if hit, ok := b.entries[doc.Id]; ok {
		hit.Score += score
		return
	}
	b.entries[doc.Id] = &Hit{Document: doc, Score: score}
}

// Merge adds every entry of another board into this one.
func (b *ScoreBoard) Merge(other *ScoreBoard) {
	for _, hit := range other.entries {
		b.Add(hit.Document, hit.Score)
	}
}

// Score returns the accumulated score for a document ID, zero if absent.
func (b *ScoreBoard) Score(id core.ID) int {
	if hit, ok := b.entries[id]; ok {
		return hit.Score
	}
	return 0
}

// Len returns the number of documents on the board.
func (b *ScoreBoard) Len() int {
	return len(b.entries)
}

// Ranked returns hits ordered by descending score.
// Ties are broken by ascending document ID so ordering is deterministic.
func (b *ScoreBoard) Ranked() []Hit {
	hits := make([]Hit, 0, len(b.entries))
	for _, hit := range b.entries {
		hits = append(hits, *hit)
	}

	slices.SortFunc(hits, func(a, b Hit) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		if a.Document.Id < b.Document.Id {
			return -1
		}
		if a.Document.Id > b.Document.Id {
			return 1
		}
		return 0
	})
	return hits
}
