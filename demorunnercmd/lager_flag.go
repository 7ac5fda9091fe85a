package demorunnercmd

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
)

type LagerFlag struct {
	//lint:ignore SA5008 github.com/jesse-vdk/go-flag requires duplicate struct tags for 'choice'
	LogLevel string `long:"log-level" default:"info" choice:"debug" choice:"info" choice:"error" choice:"fatal" description:"Minimum level of logs to see."`
	LogFile  string `long:"log-file" description:"File to append logs to. Stdout and stderr belong to the demo, so logs are dropped when this is unset."`
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func (f LagerFlag) Output() (io.WriteCloser, error) {
	if f.LogFile == "" {
		return nopCloser{io.Discard}, nil
	}

	file, err := os.OpenFile(f.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %s", err)
	}

	return file, nil
}

func (f LagerFlag) Logger(component string, output io.Writer) (lager.Logger, *lager.ReconfigurableSink) {
	var minLagerLogLevel lager.LogLevel
	switch f.LogLevel {
	case LogLevelDebug:
		minLagerLogLevel = lager.DEBUG
	case LogLevelInfo:
		minLagerLogLevel = lager.INFO
	case LogLevelError:
		minLagerLogLevel = lager.ERROR
	case LogLevelFatal:
		minLagerLogLevel = lager.FATAL
	default:
		panic(fmt.Sprintf("unknown log level: %s", f.LogLevel))
	}

	internalSink := lager.NewPrettySink(output, lager.DEBUG)

	logger := lager.NewLogger(component)

	sink := lager.NewReconfigurableSink(internalSink, minLagerLogLevel)
	logger.RegisterSink(sink)

	return logger, sink
}
