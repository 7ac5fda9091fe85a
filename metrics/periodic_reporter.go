package metrics

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	dropsonde_metrics "github.com/cloudfoundry/dropsonde/metrics"
)

// Both are no-ops until dropsonde has been initialized with a destination.
func sendMetric(key string, value int) {
	dropsonde_metrics.SendValue(key, float64(value), "Metric")
}

func sendDuration(duration time.Duration) {
	dropsonde_metrics.SendValue("MetricsReporting", float64(duration), "nanos")
}

// PeriodicReporter logs a snapshot of the given metrics every interval, and
// emits the same values to metron, until stopped.
type PeriodicReporter struct {
	Interval time.Duration
	Logger   lager.Logger
	Clock    clock.Clock

	metrics map[string]func() int
	stopped chan struct{}
}

func NewPeriodicReporter(
	logger lager.Logger,
	metrics map[string]func() int,
	interval time.Duration,
	clock clock.Clock,
) *PeriodicReporter {
	return &PeriodicReporter{
		Interval: interval,
		Logger:   logger,
		Clock:    clock,
		metrics:  metrics,

		stopped: make(chan struct{}),
	}
}

func (reporter *PeriodicReporter) Start() {
	logger := reporter.Logger.Session("periodic-reporter", lager.Data{"interval": reporter.Interval.String()})
	logger.Info("starting")
	ticker := reporter.Clock.NewTicker(reporter.Interval)

	go func() {
		defer ticker.Stop()

		logger.Info("started", lager.Data{"time": reporter.Clock.Now()})
		defer logger.Info("finished")

		for {
			select {
			case <-ticker.C():
				startedAt := reporter.Clock.Now()

				data := lager.Data{}
				for key, metric := range reporter.metrics {
					value := metric()
					data[key] = value
					sendMetric(key, value)
				}
				logger.Info("report", data)

				sendDuration(reporter.Clock.Now().Sub(startedAt))
			case <-reporter.stopped:
				return
			}
		}
	}()
}

func (reporter *PeriodicReporter) Stop() {
	close(reporter.stopped)
}
