package main

import (
	"fmt"
	"os"
	"runtime"

	"code.cloudfoundry.org/demorunner/demo"
	"code.cloudfoundry.org/demorunner/demorunnercmd"

	"github.com/jessevdk/go-flags"
)

type configFileFlag struct {
	ConfigFilePath string `long:"config"`
}

// Keep the main goroutine on the main thread, so no worker can be scheduled
// onto it and rename the process.
func init() {
	runtime.LockOSThread()
}

func main() {
	// The config file has to be loaded before the real parse so that flags
	// given on the command line win over it.
	configFile := &configFileFlag{}
	_, err := flags.NewParser(configFile, flags.IgnoreUnknown).Parse()
	must(err)

	cmd := &demorunnercmd.DemoCommand{}

	parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash|flags.IgnoreUnknown)
	parser.NamespaceDelimiter = "-"

	if configFile.ConfigFilePath != "" {
		iniParser := flags.NewIniParser(parser)
		must(iniParser.ParseFile(configFile.ConfigFilePath))
	}

	// Positional arguments are accepted and ignored.
	_, err = parser.Parse()
	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		fmt.Fprintln(os.Stdout, flagsErr.Message)
		os.Exit(0)
	}
	must(err)

	err = cmd.Execute(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	os.Exit(demorunnercmd.ExitCode(err))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(demo.FatalExitCode)
	}
}
