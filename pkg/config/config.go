package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/fileman/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

const (
	appDirName    = "fileman"
	envLogLevel   = "FILEMAN_LOG_LEVEL"
	defaultFormat = "text"
)

// Config is read from config.yaml (or config.toml) in the user config dir.
type Config struct {
	// StartDir is the directory shown on launch; the working directory when empty.
	StartDir string `yaml:"start_dir" toml:"start_dir" json:"start_dir,omitempty" jsonschema:"description=Directory shown on launch. Supports ~ for the home directory."`
	// ShowHidden lists dot-files.
	ShowHidden bool `yaml:"show_hidden" toml:"show_hidden" json:"show_hidden" jsonschema:"description=List entries whose name starts with a dot."`
	// Mouse enables click and double-click handling.
	Mouse bool `yaml:"mouse" toml:"mouse" json:"mouse" jsonschema:"description=Enable mouse support."`

	Log LogConfig `yaml:"log" toml:"log" json:"log"`
}

// LogConfig controls where diagnostics go while the UI owns the terminal.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level,omitempty" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	File   string `yaml:"file" toml:"file" json:"file,omitempty" jsonschema:"description=Append logs to this file instead of stderr."`
	Format string `yaml:"format" toml:"format" json:"format,omitempty" jsonschema:"enum=text,enum=json"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		ShowHidden: true,
		Mouse:      true,
		Log: LogConfig{
			Level:  logrus.InfoLevel.String(),
			Format: defaultFormat,
		},
	}
}

var osUserConfigDir = os.UserConfigDir
var osGetenv = os.Getenv

// DefaultPath is config.yaml in the user config dir, or config.toml when only that one exists.
func DefaultPath() (string, error) {
	dir, err := osUserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	yamlPath := filepath.Join(dir, appDirName, "config.yaml")
	tomlPath := filepath.Join(dir, appDirName, "config.toml")
	if _, err := os.Stat(yamlPath); os.IsNotExist(err) {
		if _, err := os.Stat(tomlPath); err == nil {
			return tomlPath, nil
		}
	}
	return yamlPath, nil
}

// Load reads the config file at path over the defaults and applies env overrides.
// An empty path loads the optional default file.
// The result is not validated, callers apply their own overrides first.
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	required := path != ""
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			// No config dir, keep defaults.
			cfg.applyEnv()
			return cfg, nil
		}
	}
	path = fsutils.ExpandHome(path)
	if err = readFile(path, required, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func readFile(path string, required bool, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return fsutils.ReadTOMLFile(path, required, cfg)
	default:
		return fsutils.ReadYAMLFile(path, required, cfg)
	}
}

func (c *Config) applyEnv() {
	if level := osGetenv(envLogLevel); level != "" {
		c.Log.Level = level
	}
}

// Validate reports settings that can not be applied.
func (c Config) Validate() error {
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
		}
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: expected text or json", c.Log.Format)
	}
	return nil
}

// ResolveStartDir expands ~ and falls back to the working directory.
func (c Config) ResolveStartDir() (string, error) {
	dir := fsutils.ExpandHome(c.StartDir)
	if dir == "" {
		return os.Getwd()
	}
	exists, err := fsutils.DirExists(dir)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("start dir %s is not a directory", dir)
	}
	return filepath.Abs(dir)
}
