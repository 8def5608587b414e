package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoosis/termly/internal/detect"
	"github.com/dkoosis/termly/pkg/region"
)

// Sources recorded in ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	NoColor  bool
	Pack     region.PackPolicy
	Margins  region.MarginPolicy
	Stream   string // "stderr" or "stdout"
	DebugLog string // empty disables the debug log

	// Resolution metadata (for debugging)
	ConfigPath    string
	NoColorSource string
	PackSource    string
	MarginsSource string
	StreamSource  string
}

// ResolveConfig resolves configuration from all sources with explicit
// priority order: CLI > environment > file > defaults.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg := LoadConfig()
	if cliFlags.ConfigPath != "" {
		var err error
		if appCfg, err = LoadConfigFrom(cliFlags.ConfigPath); err != nil {
			return nil, err
		}
	}

	fileSource := func(set bool) string {
		if set {
			return SourceFile
		}
		return SourceDefault
	}

	noColor, noColorSource := appCfg.NoColor, fileSource(appCfg.noColorSet)
	pack, packSource := appCfg.Pack, fileSource(appCfg.packSet)
	margins, marginsSource := appCfg.Margins, fileSource(appCfg.marginsSet)
	stream, streamSource := appCfg.Stream, fileSource(appCfg.streamSet)
	debugLog := appCfg.DebugLog

	termlyNoColor, err := getEnvBool("TERMLY_NO_COLOR")
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// NoColor: CLI > TERMLY_NO_COLOR > NO_COLOR > file > default
	switch {
	case cliFlags.NoColorSet:
		noColor, noColorSource = cliFlags.NoColor, SourceCLI
	case termlyNoColor != nil:
		noColor, noColorSource = *termlyNoColor, SourceEnv
	case detect.NoColorRequested():
		noColor, noColorSource = true, SourceEnv
	}

	pack, packSource = pick(pack, packSource, "TERMLY_PACK", cliFlags.Pack, cliFlags.PackSet)
	margins, marginsSource = pick(margins, marginsSource, "TERMLY_MARGINS", cliFlags.Margins, cliFlags.MarginsSet)
	stream, streamSource = pick(stream, streamSource, "TERMLY_STREAM", cliFlags.Stream, cliFlags.StreamSet)
	debugLog, _ = pick(debugLog, "", "TERMLY_DEBUG", cliFlags.DebugLog, cliFlags.DebugLogSet)

	resolved := &ResolvedConfig{
		NoColor:       noColor,
		Stream:        strings.ToLower(strings.TrimSpace(stream)),
		DebugLog:      debugLog,
		ConfigPath:    appCfg.Path,
		NoColorSource: noColorSource,
		PackSource:    packSource,
		MarginsSource: marginsSource,
		StreamSource:  streamSource,
	}

	if resolved.Pack, err = region.ParsePackPolicy(pack); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if resolved.Margins, err = region.ParseMarginPolicy(margins); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// pick applies CLI > env over a value already resolved from file or defaults.
func pick(cur, source, envKey, cli string, cliSet bool) (string, string) {
	if cliSet {
		return cli, SourceCLI
	}
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	return cur, source
}

// getEnvBool reads a boolean from the first of keys that is set. It returns
// nil if none are set and an error if the value is not a boolean.
func getEnvBool(keys ...string) (*bool, error) {
	for _, key := range keys {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %q (must be a boolean)", key, val)
		}
		return &b, nil
	}
	return nil, nil
}

// validateResolvedConfig returns an error for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	switch cfg.Stream {
	case "stderr", "stdout":
		return nil
	default:
		return fmt.Errorf("invalid stream value: %s (must be: stderr, stdout)", cfg.Stream)
	}
}
