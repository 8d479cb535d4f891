package metrics

import (
	"shogi/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int
	Leaves   int
	Ties     int // Nodes where the chooser broke a tie
	Score    float64
}

type MoveMetric struct {
	Step int
	Team game.Team
	Move string
	SearchMetric
}

type GameMetric struct {
	StartingTeam game.Team
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Captures     [2]int // Indexed by the capturing team
	FinalScore   float64
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddTie()
	Complete(score float64) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	ties      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.ties.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTie() {
	m.ties.Add(1)
}

func (m *collector) Complete(score float64) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Ties:     int(m.ties.Load()),
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                     {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddLeaf()                            {}
func (m *dummyCollector) AddTie()                             {}
func (m *dummyCollector) Complete(score float64) SearchMetric { return SearchMetric{Score: score} }
