package engine

import (
	"sync/atomic"
	"time"
)

type GameMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Moves     int
	Passes    int
	Flips     int
}

type Collector interface {
	Start()
	AddMove()
	AddPass()
	AddFlips(n int)
	Complete() GameMetrics
}

type collector struct {
	startTime time.Time
	moves     atomic.Int32
	passes    atomic.Int32
	flips     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.moves.Store(0)
	m.passes.Store(0)
	m.flips.Store(0)
}

func (m *collector) AddMove() {
	m.moves.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) AddFlips(n int) {
	m.flips.Add(int32(n))
}

func (m *collector) Complete() GameMetrics {
	return GameMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Moves:     int(m.moves.Load()),
		Passes:    int(m.passes.Load()),
		Flips:     int(m.flips.Load()),
	}
}
