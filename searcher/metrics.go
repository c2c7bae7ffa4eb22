package searcher

import (
	"sync/atomic"
	"time"
)

// Metric is a snapshot of the work done by one SelectAction call.
type Metric struct {
	Depth       int
	Duration    time.Duration
	Nodes       int // nodes visited, leaves included
	Leaves      int // static evaluations
	Cutoffs     int // enumerations stopped by an empty window
	NoDecisions int // non-terminal nodes with no legal action
}

// Collector gathers search statistics. The search itself is sequential,
// but collectors may be read while a search runs, so implementations use
// atomic counters.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddNoDecision()
	Complete() Metric
}

type collector struct {
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	leaves      atomic.Int64
	cutoffs     atomic.Int64
	noDecisions atomic.Int64
}

// NewCollector returns a counting collector.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
	c.noDecisions.Store(0)
}

func (c *collector) AddNode()       { c.nodes.Add(1) }
func (c *collector) AddLeaf()       { c.leaves.Add(1) }
func (c *collector) AddCutoff()     { c.cutoffs.Add(1) }
func (c *collector) AddNoDecision() { c.noDecisions.Add(1) }

func (c *collector) Complete() Metric {
	return Metric{
		Depth:       c.depth,
		Duration:    time.Since(c.startTime),
		Nodes:       int(c.nodes.Load()),
		Leaves:      int(c.leaves.Load()),
		Cutoffs:     int(c.cutoffs.Load()),
		NoDecisions: int(c.noDecisions.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing. It is the
// default when no collector is configured.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(depth int) {}
func (dummyCollector) AddNode()        {}
func (dummyCollector) AddLeaf()        {}
func (dummyCollector) AddCutoff()      {}
func (dummyCollector) AddNoDecision()  {}
func (dummyCollector) Complete() Metric {
	return Metric{}
}
