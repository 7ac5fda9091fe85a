package metrics_test

import (
	"errors"
	"runtime"

	"code.cloudfoundry.org/demorunner/metrics"
	"code.cloudfoundry.org/demorunner/workers"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeMemory struct {
	total uint64
	err   error
}

func (f fakeMemory) TotalMemory() (uint64, error) {
	return f.total, f.err
}

var _ = Describe("Metrics", func() {
	var (
		logger *lagertest.TestLogger
		memory fakeMemory
		m      metrics.Metrics
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		memory = fakeMemory{total: 4096}
	})

	JustBeforeEach(func() {
		m = metrics.NewMetrics(logger, &workers.Gauge{}, memory)
	})

	It("reports the runtime, worker and memory figures", func() {
		Expect(m.NumCPU()).To(Equal(runtime.NumCPU()))
		Expect(m.NumGoroutine()).To(BeNumerically("~", runtime.NumGoroutine(), 2))
		Expect(m.ActiveWorkers()).To(BeZero())
		Expect(m.CompletedWorkers()).To(BeZero())
		Expect(m.TotalMemory()).To(Equal(4096))
	})

	Context("when the memory cannot be read", func() {
		BeforeEach(func() {
			memory = fakeMemory{err: errors.New("no sigar")}
		})

		It("reports TotalMemory as -1 and logs the error", func() {
			Expect(m.TotalMemory()).To(Equal(-1))
			Expect(logger.LogMessages()).To(ContainElement("test.metrics.cannot-get-total-memory"))
		})
	})
})
