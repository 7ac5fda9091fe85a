package workers

import "go.uber.org/atomic"

type Gauge struct {
	launched  atomic.Int64
	active    atomic.Int64
	completed atomic.Int64
}

func (g *Gauge) Launched() int64 {
	return g.launched.Load()
}

func (g *Gauge) Active() int64 {
	return g.active.Load()
}

func (g *Gauge) Completed() int64 {
	return g.completed.Load()
}

func (g *Gauge) start() {
	g.launched.Inc()
	g.active.Inc()
}

func (g *Gauge) finish() {
	g.active.Dec()
	g.completed.Inc()
}
