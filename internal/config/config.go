// Package config loads the refgen tool configuration (refgen.yaml) via
// viper, with defaults for every knob so the tool runs without a config
// file present.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const configName = "refgen"

// DocConfig is the document identity rendered into the manual header.
type DocConfig struct {
	Title      string `mapstructure:"title"`
	Maintainer string `mapstructure:"maintainer"`
	Homepage   string `mapstructure:"homepage"`

	// CommandPrefix is prepended to usage lines, matching the documented
	// application's command invocation syntax.
	CommandPrefix string `mapstructure:"command_prefix"`
}

// AuthorsConfig controls the authors-block rewrite.
type AuthorsConfig struct {
	StartMarker string `mapstructure:"start_marker"`
	EndMarker   string `mapstructure:"end_marker"`

	// Target is the document containing the marker pair.
	Target string `mapstructure:"target"`

	// Repo is the repository whose commit history supplies the
	// contribution records. Any path inside the repository works.
	Repo string `mapstructure:"repo"`
}

// LoggingConfig mirrors logger.LoggingConfig for the config file surface.
type LoggingConfig struct {
	FileEnabled *bool `mapstructure:"file_enabled"`
	MaxSizeMB   int   `mapstructure:"max_size_mb"`
	MaxAgeDays  int   `mapstructure:"max_age_days"`
	MaxBackups  int   `mapstructure:"max_backups"`
}

// Config is the full tool configuration.
type Config struct {
	Doc     DocConfig     `mapstructure:"doc"`
	Authors AuthorsConfig `mapstructure:"authors"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load reads the configuration from the given file, or discovers
// refgen.yaml in the working directory when path is empty. A missing
// config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// Discovery mode tolerates a missing file; an explicit path does not.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("doc.title", "Reference manual")
	v.SetDefault("doc.maintainer", "")
	v.SetDefault("doc.homepage", "")
	v.SetDefault("doc.command_prefix", ":")

	v.SetDefault("authors.start_marker", "// REFGEN_AUTHORS_START")
	v.SetDefault("authors.end_marker", "// REFGEN_AUTHORS_END")
	v.SetDefault("authors.target", "README.asciidoc")
	v.SetDefault("authors.repo", ".")

	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_age_days", 7)
	v.SetDefault("logging.max_backups", 3)
}

// LogsDir returns the directory for rotating log files, under the user
// cache directory.
func LogsDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving user cache directory: %w", err)
	}
	return filepath.Join(cache, configName, "logs"), nil
}
