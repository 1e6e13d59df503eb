package main

import (
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arbortree/arbor/cmd"
	"github.com/arbortree/arbor/pkg/config"
	"github.com/arbortree/arbor/pkg/delta"
	"github.com/arbortree/arbor/pkg/delta/printer"
	"github.com/arbortree/arbor/pkg/fsnode"
	"github.com/arbortree/arbor/pkg/tree"
)

func diffMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 2 {
		return errors.New("invalid number of arguments (expected source and target directories)")
	}
	sourcePath, targetPath := arguments[0], arguments[1]

	cfg, err := config.Load(rootConfiguration.config)
	if err != nil {
		return errors.Wrap(err, "unable to load configuration")
	}
	if cfg.LogLevel != "" && !command.Flags().Changed("log-level") {
		rootConfiguration.logLevel = cfg.LogLevel
	}

	colorSetting := diffConfiguration.color
	if colorSetting == "" {
		colorSetting = cfg.Diff.Color
	}

	source, err := fsnode.Open(sourcePath)
	if err != nil {
		return errors.Wrap(err, "unable to open source directory")
	}
	target, err := fsnode.Open(targetPath)
	if err != nil {
		return errors.Wrap(err, "unable to open target directory")
	}
	if source.Kind() != tree.KindDirectory || target.Kind() != tree.KindDirectory {
		return errors.New("source and target must both be directories")
	}

	out := &printer.Printer{Out: os.Stdout}
	switch colorSetting {
	case "always":
		enabled := true
		out.Color = &enabled
	case "never":
		enabled := false
		out.Color = &enabled
	default:
		out = printer.NewAuto(os.Stdout, os.Stdout.Fd())
	}

	var cancelled int32
	signalTermination := make(chan os.Signal, 1)
	signal.Notify(signalTermination, cmd.TerminationSignals...)
	go func() {
		<-signalTermination
		atomic.StoreInt32(&cancelled, 1)
	}()

	logger := applyLogLevel()
	logger.Debugf("beginning diff run %s", uuid.New().String())

	store := &fsnode.Store{Root: source}
	opts := delta.Options{
		Cancel:        func() bool { return atomic.LoadInt32(&cancelled) != 0 },
		Logger:        logger,
		BlockSize:     cfg.Diff.BlockSize,
		MaxWindowSize: cfg.Diff.MaxWindowSize,
	}

	if err := delta.Diff(store, source, target, out, nil, opts); err != nil {
		return errors.Wrap(err, "diff failed")
	}
	return nil
}

var diffCommand = &cobra.Command{
	Use:   "diff <source> <target>",
	Short: "Compute and render the tree delta between two directories",
	Args:  cobra.ExactArgs(2),
	Run:   cmd.Mainify(diffMain),
}

var diffConfiguration struct {
	help  bool
	color string
}

func init() {
	flags := diffCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&diffConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&diffConfiguration.color, "color", "", "Colorize output (auto|always|never)")
}
