package configs

import (
	"github.com/bootpack/bootpack/internal/pkg/utils/fileutils"
)

// CliConfigFile holds optional defaults for the bootpack CLI. Command line
// flags take precedence over values from the file.
type CliConfigFile struct {
	Compression CompressionConfiguration `yaml:"compression"`
	Logging     LoggingConfiguration     `yaml:"logging"`
}

type CompressionConfiguration struct {
	Method string `yaml:"method"`
}

type LoggingConfiguration struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadCliConfig reads the config file at the path if it exists. A missing
// file is not an error and yields the zero config.
func LoadCliConfig(path string) (CliConfigFile, error) {
	var cfg CliConfigFile
	exists, err := fileutils.Exists(path)
	if err != nil || !exists {
		return cfg, err
	}
	_, err = fileutils.SafeReadYAML(path, &cfg, 0o644)
	return cfg, err
}
