package search

import (
	"github.com/leon-matthews/tinysearch/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during
// a search.
type SearchMonitor interface {
	Start(query string)
	AfterTokenize(tokens []string)
	AfterFetch(candidates []*core.Document)
	DocumentScored(doc *core.Document, score int, matched []string)
	DocumentRejected(doc *core.Document)
	Finish(board *ScoreBoard)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                    {}
func (n *noopMonitor) AfterTokenize(_ []string)                          {}
func (n *noopMonitor) AfterFetch(_ []*core.Document)                     {}
func (n *noopMonitor) DocumentScored(_ *core.Document, _ int, _ []string) {}
func (n *noopMonitor) DocumentRejected(_ *core.Document)                 {}
func (n *noopMonitor) Finish(_ *ScoreBoard)                              {}
