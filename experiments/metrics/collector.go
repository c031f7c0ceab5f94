package metrics

import (
	"time"

	"onitama/game"
)

type SearchMetric struct {
	Iterations   int
	MaxPlies     int
	Exploration  float64
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
	TreeSize     int
	IsTreeReused bool
}

type MoveMetric struct {
	Step int
	Side game.Side
	Move game.Move
	SearchMetric
}

type GameMetric struct {
	StartingSide game.Side
	Status       game.Status
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Collector gathers statistics during a single search. Start resets it.
type Collector interface {
	Start(iterations, maxPlies int, exploration float64)
	SetTreeReused(value bool)
	AddFullPlayout()
	AddEpisode()
	Complete(treeSize int) SearchMetric
}

type collector struct {
	iterations   int
	maxPlies     int
	exploration  float64
	startTime    time.Time
	episodes     int
	fullPlayouts int
	isTreeReused bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) SetTreeReused(value bool) {
	m.isTreeReused = value
}

func (m *collector) Start(iterations, maxPlies int, exploration float64) {
	m.startTime = time.Now()
	m.iterations = iterations
	m.maxPlies = maxPlies
	m.exploration = exploration
	m.episodes = 0
	m.fullPlayouts = 0
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Iterations:   m.iterations,
		MaxPlies:     m.maxPlies,
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
		TreeSize:     treeSize,
		IsTreeReused: m.isTreeReused,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations, maxPlies int, exploration float64) {}
func (m *dummyCollector) SetTreeReused(value bool)                            {}
func (m *dummyCollector) AddFullPlayout()                                     {}
func (m *dummyCollector) AddEpisode()                                         {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric                  { return SearchMetric{} }
