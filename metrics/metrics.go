package metrics

import (
	"runtime"

	"code.cloudfoundry.org/lager/v3"
)

//go:generate counterfeiter . Metrics

type Metrics interface {
	NumCPU() int
	NumGoroutine() int
	ActiveWorkers() int
	CompletedWorkers() int
	TotalMemory() int
}

type WorkerGauge interface {
	Active() int64
	Completed() int64
}

type MemoryProvider interface {
	TotalMemory() (uint64, error)
}

type metrics struct {
	gauge  WorkerGauge
	memory MemoryProvider
	logger lager.Logger
}

func NewMetrics(logger lager.Logger, gauge WorkerGauge, memory MemoryProvider) Metrics {
	return &metrics{
		gauge:  gauge,
		memory: memory,
		logger: logger.Session("metrics"),
	}
}

func (m *metrics) NumCPU() int {
	return runtime.NumCPU()
}

func (m *metrics) NumGoroutine() int {
	return runtime.NumGoroutine()
}

func (m *metrics) ActiveWorkers() int {
	return int(m.gauge.Active())
}

func (m *metrics) CompletedWorkers() int {
	return int(m.gauge.Completed())
}

func (m *metrics) TotalMemory() int {
	total, err := m.memory.TotalMemory()
	if err != nil {
		m.logger.Error("cannot-get-total-memory", err)
		return -1
	}

	return int(total)
}
