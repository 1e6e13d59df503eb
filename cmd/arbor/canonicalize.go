package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arbortree/arbor/cmd"
	"github.com/arbortree/arbor/pkg/path"
)

func canonicalizeMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errors.New("invalid number of arguments (expected exactly one path)")
	}

	kind, err := parseKind(canonicalizeConfiguration.kind)
	if err != nil {
		return err
	}
	style, err := parseStyle(canonicalizeConfiguration.style)
	if err != nil {
		return err
	}

	fmt.Println(path.Canonicalize(kind, arguments[0], style))
	return nil
}

var canonicalizeCommand = &cobra.Command{
	Use:   "canonicalize <path>",
	Short: "Canonicalize a dirent, relpath, or URL",
	Args:  cobra.ExactArgs(1),
	Run:   cmd.Mainify(canonicalizeMain),
}

var canonicalizeConfiguration struct {
	help  bool
	kind  string
	style string
}

func init() {
	flags := canonicalizeCommand.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&canonicalizeConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&canonicalizeConfiguration.kind, "kind", "dirent", "Path kind (dirent|relpath|url)")
	flags.StringVar(&canonicalizeConfiguration.style, "style", "native", "Dirent style (native|posix|windows)")
}

func parseKind(name string) (path.Kind, error) {
	switch name {
	case "dirent":
		return path.KindDirent, nil
	case "relpath":
		return path.KindRelpath, nil
	case "url":
		return path.KindURL, nil
	default:
		return 0, errors.Errorf("unknown path kind: %s", name)
	}
}

func parseStyle(name string) (path.Style, error) {
	switch name {
	case "native":
		return path.NativeStyle, nil
	case "posix":
		return path.StylePOSIX, nil
	case "windows":
		return path.StyleWindows, nil
	default:
		return 0, errors.Errorf("unknown dirent style: %s", name)
	}
}
