package workers

import (
	"fmt"
	"io"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/demorunner/threadname"
	"code.cloudfoundry.org/lager/v3"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/tedsuo/ifrit"
)

var (
	ErrNegativeCount = errors.New("worker count must not be negative")

	errExitedEarly = errors.New("exited before becoming ready")
)

// LaunchError reports a worker that exited before it became ready, i.e. one
// that never got going on its own thread.
type LaunchError struct {
	Descriptor Descriptor
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching worker %q: %s", e.Descriptor.Name(), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

type Pool struct {
	Namer  threadname.Namer
	Clock  clock.Clock
	Stdout io.Writer
	Logger lager.Logger
	Gauge  *Gauge
}

func NewPool(logger lager.Logger, clk clock.Clock, namer threadname.Namer, stdout io.Writer) *Pool {
	return &Pool{
		Namer:  namer,
		Clock:  clk,
		Stdout: stdout,
		Logger: logger,
		Gauge:  &Gauge{},
	}
}

// Run launches count workers and blocks until every launched worker has
// exited. Workers are started one after another: each is invoked only once
// the previous one has named its thread and printed its line, so only their
// sleeps overlap. A launch failure stops further launches, but the workers
// that did start are still joined before it is returned.
func (p *Pool) Run(count int) error {
	if count < 0 {
		return ErrNegativeCount
	}
	if count == 0 {
		return nil
	}
	if p.Gauge == nil {
		p.Gauge = &Gauge{}
	}

	log := p.Logger.Session("run-workers", lager.Data{"count": count})
	log.Info("starting")
	defer log.Info("finished")

	processes := make([]ifrit.Process, 0, count)

	var launchErr error
	for i := 0; i < count; i++ {
		descriptor := Descriptor{Index: i}
		process := ifrit.Invoke(p.worker(log, descriptor))

		select {
		case <-process.Ready():
			processes = append(processes, process)
			continue
		default:
		}

		exitErr := <-process.Wait()
		if exitErr == nil {
			exitErr = errExitedEarly
		}

		launchErr = &LaunchError{Descriptor: descriptor, Err: exitErr}
		log.Error("launch-failed", launchErr, lager.Data{"index": i})
		break
	}

	log.Debug("joining", lager.Data{"launched": len(processes)})

	var merr *multierror.Error
	for _, process := range processes {
		merr = multierror.Append(merr, <-process.Wait())
	}

	if launchErr != nil {
		return launchErr
	}

	return merr.ErrorOrNil()
}

func (p *Pool) worker(logger lager.Logger, descriptor Descriptor) *Worker {
	return &Worker{
		Descriptor: descriptor,
		Namer:      p.Namer,
		Clock:      p.Clock,
		Stdout:     p.Stdout,
		Gauge:      p.Gauge,
		Logger:     logger,
	}
}
