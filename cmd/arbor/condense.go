package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arbortree/arbor/cmd"
	"github.com/arbortree/arbor/pkg/path"
)

func condenseMain(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		return errors.New("at least one target is required")
	}

	style, err := parseStyle(condenseConfiguration.style)
	if err != nil {
		return err
	}

	ancestor, relatives := path.CondenseTargets(arguments, !condenseConfiguration.keepRedundant, style)
	fmt.Println(ancestor)
	for _, relative := range relatives {
		fmt.Println("  " + relative)
	}
	return nil
}

var condenseCommand = &cobra.Command{
	Use:   "condense <target>...",
	Short: "Condense a set of dirent targets to a common ancestor",
	Args:  cobra.MinimumNArgs(1),
	Run:   cmd.Mainify(condenseMain),
}

var condenseConfiguration struct {
	help          bool
	style         string
	keepRedundant bool
}

func init() {
	flags := condenseCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&condenseConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&condenseConfiguration.style, "style", "native", "Dirent style (native|posix|windows)")
	flags.BoolVar(&condenseConfiguration.keepRedundant, "keep-redundant", false, "Do not remove redundant (ancestor-descendant) targets")
}
