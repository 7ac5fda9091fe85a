package workers

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/demorunner/threadname"
	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
)

type Worker struct {
	Descriptor Descriptor

	Namer  threadname.Namer
	Clock  clock.Clock
	Stdout io.Writer
	Gauge  *Gauge
	Logger lager.Logger
}

// Run pins the worker to its own OS thread for its whole life. The thread is
// never unlocked, so the runtime discards it (and its name) once Run returns.
// Workers cannot be cancelled: signals are ignored until the sleep is over.
//
// Run must never land on the main thread, or the worker would keep it. The
// binary locks its main goroutine in init, and the Linux namer refuses to
// rename the main thread.
func (w *Worker) Run(_ <-chan os.Signal, ready chan<- struct{}) error {
	runtime.LockOSThread()

	log := w.Logger.Session("worker", lager.Data{"index": w.Descriptor.Index})

	if err := w.Namer.SetName(w.Descriptor.Name()); err != nil {
		log.Debug("naming-thread-failed", lager.Data{"name": w.Descriptor.Name(), "error": err.Error()})
	}

	timeout := w.Descriptor.Timeout()
	if _, err := fmt.Fprintf(w.Stdout, "from thread sleep %d\n", w.Descriptor.TimeoutMillis()); err != nil {
		return errors.Wrap(err, "announcing sleep")
	}

	w.Gauge.start()
	close(ready)

	log.Debug("sleeping", lager.Data{"timeout": timeout.String()})
	w.Clock.Sleep(timeout)

	w.Gauge.finish()
	log.Debug("finished")

	return nil
}
