package pdf

import (
	"sort"

	"github.com/fwojciec/pdffetch"
)

var _ pdffetch.ExtractorRegistry = (*Registry)(nil)

// Registry maps extraction strategies to extractors.
// It is populated at startup and read concurrently afterwards.
type Registry struct {
	extractors map[pdffetch.Strategy]pdffetch.Extractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[pdffetch.Strategy]pdffetch.Extractor),
	}
}

// NewDefaultRegistry creates a Registry with an Extractor for each known strategy.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry()
	r.Register(pdffetch.StrategyLayoutAware, NewExtractor(pdffetch.StrategyLayoutAware, opts...))
	r.Register(pdffetch.StrategyFastLenient, NewExtractor(pdffetch.StrategyFastLenient, opts...))
	return r
}

// Get returns the extractor for a strategy, or nil if none is registered.
func (r *Registry) Get(strategy pdffetch.Strategy) pdffetch.Extractor {
	return r.extractors[strategy]
}

// Register adds an extractor for a strategy, replacing any existing one.
func (r *Registry) Register(strategy pdffetch.Strategy, extractor pdffetch.Extractor) {
	r.extractors[strategy] = extractor
}

// List returns the registered strategies in sorted order.
func (r *Registry) List() []pdffetch.Strategy {
	strategies := make([]pdffetch.Strategy, 0, len(r.extractors))
	for s := range r.extractors {
		strategies = append(strategies, s)
	}
	sort.Slice(strategies, func(i, j int) bool { return strategies[i] < strategies[j] })
	return strategies
}
