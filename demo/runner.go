package demo

import (
	"code.cloudfoundry.org/demorunner/diagnostics"
	"code.cloudfoundry.org/demorunner/environ"
	"code.cloudfoundry.org/demorunner/workers"
	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"
)

//go:generate counterfeiter . EnvironmentDumper
//go:generate counterfeiter . DiagnosticEmitter
//go:generate counterfeiter . WorkerPool

type EnvironmentDumper interface {
	Dump() error
}

type DiagnosticEmitter interface {
	Emit() error
}

type WorkerPool interface {
	Run(count int) error
}

type Runner struct {
	Config Config

	Dumper  EnvironmentDumper
	Emitter DiagnosticEmitter
	Pool    WorkerPool

	Logger lager.Logger
}

// Run goes through the demo strictly in order: environment, diagnostics,
// then the worker fan-out. The first failure ends the run.
func (r *Runner) Run() error {
	log := r.Logger.Session("demo", lager.Data{
		"env-dump":          r.Config.WithEnvDump,
		"diagnostic-repeat": r.Config.DiagnosticRepeatCount,
		"workers":           r.Config.Workers,
	})
	log.Info("starting")

	if r.Config.WithEnvDump {
		if err := r.Dumper.Dump(); err != nil {
			log.Error("dumping-environment-failed", err)
			return errors.Wrap(err, "dump environment")
		}
	}

	if err := r.Emitter.Emit(); err != nil {
		log.Error("emitting-diagnostics-failed", err)
		return errors.Wrap(err, "emit diagnostics")
	}

	if err := r.Pool.Run(r.Config.Workers); err != nil {
		log.Error("running-workers-failed", err)
		return errors.Wrap(err, "run workers")
	}

	log.Info("completed")
	return nil
}

// IsLaunchFailure reports whether err came from a worker that never started.
func IsLaunchFailure(err error) bool {
	var launchErr *workers.LaunchError
	return errors.As(err, &launchErr)
}

var (
	_ EnvironmentDumper = &environ.Dumper{}
	_ DiagnosticEmitter = &diagnostics.Emitter{}
	_ WorkerPool        = &workers.Pool{}
)
