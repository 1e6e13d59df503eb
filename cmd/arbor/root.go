package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbortree/arbor/pkg/logging"
)

const version = "0.1.0"

func rootMain(command *cobra.Command, arguments []string) {
	if rootConfiguration.version {
		fmt.Println(version)
		return
	}
	command.Help()
}

var rootCommand = &cobra.Command{
	Use:   "arbor",
	Short: "arbor computes and renders tree deltas between directory trees",
	Run:   rootMain,
}

var rootConfiguration struct {
	// help indicates whether help information should be shown.
	help bool
	// version indicates whether version information should be shown.
	version bool
	// logLevel is the name of the logging.Level to run at.
	logLevel string
	// config is the path to a YAML configuration file.
	config string
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "warn", "Set the logging level (disabled|error|warn|info|debug)")
	flags.StringVar(&rootConfiguration.config, "config", "", "Path to a YAML configuration file")

	flags2 := rootCommand.Flags()
	flags2.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags2.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")

	cobra.EnableCommandSorting = false

	rootCommand.AddCommand(
		diffCommand,
		canonicalizeCommand,
		condenseCommand,
	)
}

// applyLogLevel configures package-level logging from the parsed
// --log-level flag, falling back to warn on an unrecognized name
// rather than failing the command outright.
func applyLogLevel() *logging.Logger {
	level, ok := logging.NameToLevel(rootConfiguration.logLevel)
	if !ok {
		level = logging.LevelWarn
	}
	logging.DebugEnabled = level >= logging.LevelDebug
	if level == logging.LevelDisabled {
		return nil
	}
	return logging.RootLogger
}
