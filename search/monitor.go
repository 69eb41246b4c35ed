package search

import (
	"github.com/talentgrid/talentsearch/core"
)

// SearchMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterClassification(class QueryClass, weights Weights)
	AfterVectorSearch(hits []*core.VectorHit)
	AfterKeywordSearch(hits []*core.KeywordHit)
	AfterBlend(candidates []*core.ScoredCandidate)
	AfterRerank(candidates []*core.ScoredCandidate, reranked bool)
	Finish(result *core.RetrievalResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                 {}
func (n *noopMonitor) AfterClassification(_ QueryClass, _ Weights)    {}
func (n *noopMonitor) AfterVectorSearch(_ []*core.VectorHit)          {}
func (n *noopMonitor) AfterKeywordSearch(_ []*core.KeywordHit)        {}
func (n *noopMonitor) AfterBlend(_ []*core.ScoredCandidate)           {}
func (n *noopMonitor) AfterRerank(_ []*core.ScoredCandidate, _ bool)  {}
func (n *noopMonitor) Finish(_ *core.RetrievalResult)                 {}
