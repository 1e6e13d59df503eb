// Package config implements cmd/arbor's YAML-based configuration file,
// following the loading pattern of the teacher's pkg/encoding and
// pkg/configuration/global packages: a plain struct with yaml tags,
// loaded with strict (unknown-key-rejecting) decoding so a typo in a
// config file fails loudly instead of being silently ignored.
package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Configuration is the root of an arbor YAML configuration file.
type Configuration struct {
	// Diff holds defaults for the diff subcommand.
	Diff struct {
		// BlockSize overrides textdelta.DefaultBlockSize when non-zero.
		BlockSize int `yaml:"blockSize"`
		// MaxWindowSize overrides textdelta.DefaultMaximumWindowSize when
		// non-zero.
		MaxWindowSize int `yaml:"maxWindowSize"`
		// Color selects "auto", "always", or "never" for printer output.
		Color string `yaml:"color"`
	} `yaml:"diff"`
	// LogLevel is the logging.Level name to run at, e.g. "info" or
	// "debug".
	LogLevel string `yaml:"logLevel"`
}

// Load reads and strictly decodes the YAML configuration file at path. A
// missing file is not an error: Load returns a zero-value Configuration so
// that callers can apply it uniformly to flag defaults.
func Load(path string) (*Configuration, error) {
	result := &Configuration{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.Wrap(err, "unable to read configuration file")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(result); err != nil {
		return nil, errors.Wrap(err, "unable to decode configuration file")
	}

	return result, nil
}
