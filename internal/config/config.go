package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	NoColor    bool
	Pack       string
	Margins    string
	Stream     string
	DebugLog   string
	ConfigPath string // explicit config file; skips the search

	// Flags to track if they were explicitly set by the user
	NoColorSet  bool
	PackSet     bool
	MarginsSet  bool
	StreamSet   bool
	DebugLogSet bool
}

// AppConfig represents the contents of .termly.yaml.
type AppConfig struct {
	NoColor  bool   `yaml:"no_color"`
	Pack     string `yaml:"pack"`
	Margins  string `yaml:"margins"`
	Stream   string `yaml:"stream"`
	DebugLog string `yaml:"debug_log"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`

	// Keys the file set explicitly, even to their default value.
	noColorSet, packSet, marginsSet, streamSet bool
}

// fileConfig is the on-disk form; pointers tell "unset" from a zero value.
type fileConfig struct {
	NoColor  *bool   `yaml:"no_color"`
	Pack     *string `yaml:"pack"`
	Margins  *string `yaml:"margins"`
	Stream   *string `yaml:"stream"`
	DebugLog string  `yaml:"debug_log"`
}

// Constants for default values.
const (
	FileName       = ".termly.yaml"
	DefaultPack    = "indent"
	DefaultMargins = "always"
	DefaultStream  = "stderr"
)

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Pack:    DefaultPack,
		Margins: DefaultMargins,
		Stream:  DefaultStream,
	}
}

// LoadConfig loads .termly.yaml from the first location that has one.
// A missing file yields defaults; an unreadable or malformed one yields
// defaults and a warning on stderr.
func LoadConfig() *AppConfig {
	path := getConfigPath()
	if path == "" {
		return defaultAppConfig()
	}
	appCfg, err := LoadConfigFrom(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v. Using defaults.\n", err)
		return defaultAppConfig()
	}
	return appCfg
}

// LoadConfigFrom loads the config file at path, merged onto the defaults.
func LoadConfigFrom(path string) (*AppConfig, error) {
	appCfg := defaultAppConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Merge YAML settings onto the defaults
	if fileCfg.NoColor != nil {
		appCfg.NoColor, appCfg.noColorSet = *fileCfg.NoColor, true
	}
	if fileCfg.Pack != nil && *fileCfg.Pack != "" {
		appCfg.Pack, appCfg.packSet = *fileCfg.Pack, true
	}
	if fileCfg.Margins != nil && *fileCfg.Margins != "" {
		appCfg.Margins, appCfg.marginsSet = *fileCfg.Margins, true
	}
	if fileCfg.Stream != nil && *fileCfg.Stream != "" {
		appCfg.Stream, appCfg.streamSet = *fileCfg.Stream, true
	}
	appCfg.DebugLog = fileCfg.DebugLog
	appCfg.Path = path
	return appCfg, nil
}

// getConfigPath tries to find the .termly.yaml configuration file.
// It checks the local directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable for a per-user path.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "termly", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
