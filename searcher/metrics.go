package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one Search call for diagnostics.
type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	RolloutMoves int
}

type Collector interface {
	Start(goroutines int)
	AddEpisode()
	AddRolloutMoves(n int)
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	startTime    time.Time
	episodes     atomic.Int64
	rolloutMoves atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(goroutines int) {
	c.startTime = time.Now()
	c.goroutines = goroutines
	c.episodes.Store(0)
	c.rolloutMoves.Store(0)
}

func (c *collector) AddEpisode() {
	c.episodes.Add(1)
}

func (c *collector) AddRolloutMoves(n int) {
	c.rolloutMoves.Add(int64(n))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   c.goroutines,
		Duration:     time.Since(c.startTime),
		Episodes:     int(c.episodes.Load()),
		RolloutMoves: int(c.rolloutMoves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(goroutines int)     {}
func (c *dummyCollector) AddEpisode()              {}
func (c *dummyCollector) AddRolloutMoves(n int)    {}
func (c *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
