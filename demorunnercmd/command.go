package demorunnercmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/demorunner/demo"
	"code.cloudfoundry.org/demorunner/diagnostics"
	"code.cloudfoundry.org/demorunner/environ"
	"code.cloudfoundry.org/demorunner/metrics"
	"code.cloudfoundry.org/demorunner/sysinfo"
	"code.cloudfoundry.org/demorunner/threadname"
	"code.cloudfoundry.org/demorunner/workers"
	"code.cloudfoundry.org/lager/v3"
	"github.com/cloudfoundry/dropsonde"
	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

type DemoCommand struct {
	Logger LagerFlag

	Demo struct {
		//lint:ignore SA5008 github.com/jesse-vdk/go-flag requires duplicate struct tags for 'choice'
		Variant          string `long:"variant" default:"single" choice:"single" choice:"burst" description:"Preset to start from: a single diagnostic line, or a burst of 25."`
		SkipEnvDump      bool   `long:"skip-env-dump" description:"Do not print the environment before the diagnostics."`
		DiagnosticRepeat *int   `long:"diagnostic-repeat" description:"Number of diagnostic lines to write to stderr. Overrides the variant."`
		DiagnosticText   string `long:"diagnostic-text" description:"Diagnostic literal written to stderr."`
		Workers          int    `long:"workers" default:"5" description:"Number of worker threads to launch."`
	} `group:"Demo Configuration"`

	Debug struct {
		BindIP         IPFlag        `long:"debug-bind-ip"                     description:"Bind the debug server on the given IP."`
		BindPort       uint16        `long:"debug-bind-port"  default:"17019"  description:"Bind the debug server to the given port."`
		ReportInterval time.Duration `long:"report-interval"  default:"1s"     description:"Interval on which worker progress is logged. 0 disables it."`
	} `group:"Debug Configuration"`

	Metrics struct {
		DropsondeOrigin      string `long:"dropsonde-origin"      default:"demorunner" description:"Origin identifier for Dropsonde-emitted metrics."`
		DropsondeDestination string `long:"dropsonde-destination"                      description:"Destination for Dropsonde-emitted metrics. Nothing is emitted when unset."`
	} `group:"Metrics"`

	// This must be present to stop go-flags complaining, but it's not actually
	// used. The config file is parsed before the rest of the flags.
	ConfigFilePath string `long:"config" description:"Config file path."`
}

func (cmd *DemoCommand) Execute(args []string) error {
	return cmd.Run(os.Stdout, os.Stderr)
}

func (cmd *DemoCommand) DemoConfig() (demo.Config, error) {
	config, err := demo.VariantConfig(cmd.Demo.Variant)
	if err != nil {
		return demo.Config{}, err
	}

	if cmd.Demo.SkipEnvDump {
		config.WithEnvDump = false
	}

	if cmd.Demo.DiagnosticRepeat != nil {
		if *cmd.Demo.DiagnosticRepeat < 0 {
			return demo.Config{}, fmt.Errorf("--diagnostic-repeat must not be negative: %d", *cmd.Demo.DiagnosticRepeat)
		}
		config.DiagnosticRepeatCount = *cmd.Demo.DiagnosticRepeat
	}

	if cmd.Demo.DiagnosticText != "" {
		config.DiagnosticText = cmd.Demo.DiagnosticText
	}

	if cmd.Demo.Workers < 0 {
		return demo.Config{}, fmt.Errorf("--workers must not be negative: %d", cmd.Demo.Workers)
	}
	config.Workers = cmd.Demo.Workers

	return config, nil
}

func (cmd *DemoCommand) Run(stdout, stderr io.Writer) error {
	config, err := cmd.DemoConfig()
	if err != nil {
		return err
	}

	logOutput, err := cmd.Logger.Output()
	if err != nil {
		return err
	}
	defer logOutput.Close()

	logger, reconfigurableSink := cmd.Logger.Logger("demorunner", logOutput)

	runID, err := uuid.NewV4()
	if err != nil {
		return errors.Wrap(err, "generating run id")
	}
	logger = logger.Session("run", lager.Data{"id": runID.String()})

	resources := sysinfo.NewResourcesProvider()
	resources.LogHostInfo(logger)

	pool := workers.NewPool(logger, clock.NewClock(), threadname.New(), stdout)
	metricsProvider := metrics.NewMetrics(logger, pool.Gauge, resources)

	if cmd.Debug.BindIP != nil {
		addr := fmt.Sprintf("%s:%d", cmd.Debug.BindIP.IP(), cmd.Debug.BindPort)
		debugServer, err := metrics.StartDebugServer(addr, reconfigurableSink, metricsProvider)
		if err != nil {
			logger.Error("starting-debug-server", err, lager.Data{"addr": addr})
			return errors.Wrap(err, "start debug server")
		}
		defer func() {
			debugServer.Signal(os.Interrupt)
			<-debugServer.Wait()
		}()
	}

	if cmd.Metrics.DropsondeDestination != "" {
		cmd.initializeDropsonde(logger)
	}

	if cmd.Debug.ReportInterval > 0 {
		reporter := cmd.wirePeriodicReporter(logger, metricsProvider)
		reporter.Start()
		defer reporter.Stop()
	}

	runner := &demo.Runner{
		Config: config,
		Dumper: environ.NewDumper(stdout),
		Emitter: &diagnostics.Emitter{
			Stderr: stderr,
			Text:   config.DiagnosticText,
			Repeat: config.DiagnosticRepeatCount,
		},
		Pool:   pool,
		Logger: logger,
	}

	return runner.Run()
}

func (cmd *DemoCommand) wirePeriodicReporter(logger lager.Logger, metricsProvider metrics.Metrics) *metrics.PeriodicReporter {
	return metrics.NewPeriodicReporter(
		logger,
		map[string]func() int{
			"activeWorkers":    metricsProvider.ActiveWorkers,
			"completedWorkers": metricsProvider.CompletedWorkers,
			"numGoRoutines":    metricsProvider.NumGoroutine,
		},
		cmd.Debug.ReportInterval,
		clock.NewClock(),
	)
}

func (cmd *DemoCommand) initializeDropsonde(log lager.Logger) {
	err := dropsonde.Initialize(cmd.Metrics.DropsondeDestination, cmd.Metrics.DropsondeOrigin)
	if err != nil {
		log.Error("failed-to-initialize-dropsonde", err)
	}
}

// ExitCode maps the outcome of a run onto the demo's exit statuses.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return demo.CompletedExitCode
	case demo.IsLaunchFailure(err):
		return demo.LaunchFailureExitCode
	default:
		return demo.FatalExitCode
	}
}
