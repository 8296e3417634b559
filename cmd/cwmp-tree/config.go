package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by cwmp-tree.
const EnvPrefix = "CWMPTREE_"

// Config holds settings shared by all commands. Values come from the
// defaults, then the config file, then the environment, then flags.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	JSONLog      bool   `yaml:"json_log"`
	NoColor      bool   `yaml:"no_color"`
	Root         string `yaml:"root"`
	Journal      string `yaml:"journal"`
	ShowMetadata bool   `yaml:"show_metadata"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:     "info",
		ShowMetadata: true,
	}
}

// LoadConfig builds the configuration from file (optional) and the
// environment. envFile is loaded into the environment first when it
// exists; variables already set win over it.
func LoadConfig(file, envFile string) (Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load environment file %s: %w", envFile, err)
		}
	}

	if file == "" {
		file = os.Getenv(EnvPrefix + "CONFIG")
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", file, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("LOG_LEVEL", &c.LogLevel)
	str("ROOT", &c.Root)
	str("JOURNAL", &c.Journal)
	return errors.Join(
		boolean("JSON_LOG", &c.JSONLog),
		boolean("NO_COLOR", &c.NoColor),
		boolean("SHOW_METADATA", &c.ShowMetadata),
	)
}
