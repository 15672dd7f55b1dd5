package metrics

import (
	"sync/atomic"
	"time"

	"reversi/game"
)

type SearchMetric struct {
	Depth     int
	Ordered   bool // region ordered move generation
	Duration  time.Duration
	Nodes     int
	Cutoffs   int
	Shortcuts int // root moves accepted by the safety shortcut
}

type MoveMetric struct {
	Step   int
	Player game.Cell
	Move   game.Move
	Hash   game.StateHash
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Cell
	Winner         game.Cell
	Reason         string
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int, ordered bool)
	AddNode()
	AddCutoff()
	AddShortcut()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	ordered   bool
	startTime time.Time
	nodes     atomic.Int32
	cutoffs   atomic.Int32
	shortcuts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, ordered bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.ordered = ordered
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.shortcuts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddShortcut() {
	m.shortcuts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Ordered:   m.ordered,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Shortcuts: int(m.shortcuts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, ordered bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) AddShortcut()                  {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
