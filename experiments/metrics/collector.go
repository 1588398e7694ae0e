package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // States visited, root included
	Leaves   int // Evaluated states
	Cutoffs  int
}

type MoveMetric struct {
	Step    int
	Faction string
	Moves   string
	SearchMetric
}

type GameMetric struct {
	ID         string
	Winner     string // "A", "E" or "" for a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
