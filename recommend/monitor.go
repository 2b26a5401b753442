package recommend

import (
	"github.com/lawdex/lawdex/ai"
	"github.com/lawdex/lawdex/core"
)

// Monitor provides hooks to observe the recommendation process.
// Implement this interface to track intermediate stages during a query.
type Monitor interface {
	Start(query string)
	ShortlistBuilt(candidates []string)
	SuggestionsReceived(suggestions []ai.Suggestion)
	SuggestionRejected(name string)
	RecommenderFailed(err error)
	GuidesScored(results []core.RankedResult)
	AssetsScored(results []core.RankedResult)
	Finish(results []core.RankedResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) ShortlistBuilt(_ []string)               {}
func (n *noopMonitor) SuggestionsReceived(_ []ai.Suggestion)   {}
func (n *noopMonitor) SuggestionRejected(_ string)             {}
func (n *noopMonitor) RecommenderFailed(_ error)               {}
func (n *noopMonitor) GuidesScored(_ []core.RankedResult)      {}
func (n *noopMonitor) AssetsScored(_ []core.RankedResult)      {}
func (n *noopMonitor) Finish(_ []core.RankedResult)            {}
