package metrics

import (
	"time"
)

type SearchMetric struct {
	Search       string // enumerate, solve or best
	MaxCardValue int
	NumPlayers   int
	StartTime    time.Time
	Duration     time.Duration
	Nodes        int64 // boards visited, leaves included
	Leaves       int64 // terminal or stalled boards
	MaxDepth     int
}

type Collector interface {
	Start(search string, maxCardValue, numPlayers int)
	AddNode(depth int)
	AddLeaf()
	Complete() SearchMetric
}

// collector is not safe for concurrent use; searches are sequential.
type collector struct {
	metric SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(search string, maxCardValue, numPlayers int) {
	m.metric = SearchMetric{
		Search:       search,
		MaxCardValue: maxCardValue,
		NumPlayers:   numPlayers,
		StartTime:    time.Now(),
	}
}

func (m *collector) AddNode(depth int) {
	m.metric.Nodes++
	if depth > m.metric.MaxDepth {
		m.metric.MaxDepth = depth
	}
}

func (m *collector) AddLeaf() {
	m.metric.Leaves++
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.metric.StartTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(search string, maxCardValue, numPlayers int) {}
func (m *dummyCollector) AddNode(depth int)                                 {}
func (m *dummyCollector) AddLeaf()                                          {}
func (m *dummyCollector) Complete() SearchMetric                            { return SearchMetric{} }
