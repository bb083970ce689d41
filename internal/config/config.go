package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/lemonade-lang/lemonade/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in the config file.
const (
	KeyCompiler           = "compiler"
	KeyLayout             = "layout"
	KeyLogLevel           = "log_level"
	KeyMinCompilerVersion = "min_compiler_version"
)

var defaults = map[string]string{
	KeyCompiler: branding.Compiler(),
	KeyLayout:   "emoji",
	KeyLogLevel: "warn",
}

// Config is a loaded view of the config file plus environment overrides.
type Config struct {
	v    *viper.Viper
	path string
}

// Dir returns the config directory. LEMONADE_HOME overrides ~/.lemonade.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("home")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Keys returns every recognized key, sorted.
func Keys() []string {
	keys := []string{KeyCompiler, KeyLayout, KeyLogLevel, KeyMinCompilerVersion}
	sort.Strings(keys)
	return keys
}

// Load reads the config file at FilePath.
func Load() (*Config, error) {
	return LoadFile(FilePath())
}

// Defaults returns a Config bound to path that ignores the file's contents:
// only built-in defaults and environment overrides apply.
func Defaults(path string) *Config {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	return &Config{v: v, path: path}
}

// LoadFile reads the config file at path. A missing file is not an error;
// an invalid one is.
func LoadFile(path string) (*Config, error) {
	c := Defaults(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, result.Err(path)
	}

	if err := c.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return c, nil
}

// Path returns the file this config was loaded from.
func (c *Config) Path() string { return c.path }

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Compiler returns the external compiler executable name.
func (c *Config) Compiler() string { return c.v.GetString(KeyCompiler) }

// Layout returns the project layout name.
func (c *Config) Layout() string { return c.v.GetString(KeyLayout) }

// LogLevel returns the configured log level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// MinCompilerVersion returns the minimum accepted compiler version, if any.
func (c *Config) MinCompilerVersion() string { return c.v.GetString(KeyMinCompilerVersion) }

// Set writes a key-value pair to the config file. The resulting document is
// validated first; nothing is written when it does not pass.
func (c *Config) Set(key, value string) error {
	doc, err := c.readDocument()
	if err != nil {
		return err
	}
	doc[key] = value

	result, err := ValidateDocument(doc)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if !result.Valid {
		return result.Err(c.path)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(c.path), err)
	}
	if err := os.WriteFile(c.path, out, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.path, err)
	}

	c.v.Set(key, value)
	return nil
}

// readDocument returns the raw key-value pairs stored in the file, without
// defaults or environment overrides.
func (c *Config) readDocument() (map[string]interface{}, error) {
	doc := make(map[string]interface{})
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", c.path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", c.path, err)
	}
	if doc == nil {
		doc = make(map[string]interface{})
	}
	return doc, nil
}
