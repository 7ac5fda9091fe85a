package demo

import (
	"fmt"

	"code.cloudfoundry.org/demorunner/diagnostics"
)

const (
	VariantSingle = "single"
	VariantBurst  = "burst"

	DefaultWorkers = 5

	// The demo reports completion with a nonzero status on purpose.
	CompletedExitCode     = 1
	FatalExitCode         = 2
	LaunchFailureExitCode = 3
)

type Config struct {
	WithEnvDump           bool
	DiagnosticText        string
	DiagnosticRepeatCount int
	Workers               int
}

func VariantConfig(variant string) (Config, error) {
	config := Config{
		WithEnvDump:           true,
		DiagnosticText:        diagnostics.DefaultText,
		DiagnosticRepeatCount: diagnostics.DefaultRepeat,
		Workers:               DefaultWorkers,
	}

	switch variant {
	case "", VariantSingle:
	case VariantBurst:
		config.DiagnosticRepeatCount = diagnostics.BurstRepeat
	default:
		return Config{}, fmt.Errorf("unknown variant: %s", variant)
	}

	return config, nil
}
