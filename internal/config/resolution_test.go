package config

import (
	"path/filepath"
	"testing"

	"github.com/dkoosis/termly/pkg/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_Defaults(t *testing.T) {
	isolate(t)

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, region.PackIndent, resolved.Pack)
	assert.Equal(t, region.MarginsAlways, resolved.Margins)
	assert.Equal(t, "stderr", resolved.Stream)
	assert.False(t, resolved.NoColor)
	assert.Empty(t, resolved.DebugLog)
	for _, src := range []string{resolved.NoColorSource, resolved.PackSource, resolved.MarginsSource, resolved.StreamSource} {
		assert.Equal(t, SourceDefault, src)
	}
}

func TestResolveConfig_PriorityOrder(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		env         map[string]string
		cli         CliFlags
		wantPack    region.PackPolicy
		wantSource  string
		wantNoColor bool
		wantNCSrc   string
	}{
		{
			name:        "file over default",
			file:        "pack: leftmost\nno_color: true\n",
			wantPack:    region.PackLeftmost,
			wantSource:  SourceFile,
			wantNoColor: true,
			wantNCSrc:   SourceFile,
		},
		{
			name:        "env over file",
			file:        "pack: leftmost\n",
			env:         map[string]string{"TERMLY_PACK": "indent", "TERMLY_NO_COLOR": "1"},
			wantPack:    region.PackIndent,
			wantSource:  SourceEnv,
			wantNoColor: true,
			wantNCSrc:   SourceEnv,
		},
		{
			name:        "cli over env",
			env:         map[string]string{"TERMLY_PACK": "indent", "NO_COLOR": "yes"},
			cli:         CliFlags{Pack: "leftmost", PackSet: true, NoColor: false, NoColorSet: true},
			wantPack:    region.PackLeftmost,
			wantSource:  SourceCLI,
			wantNoColor: false,
			wantNCSrc:   SourceCLI,
		},
		{
			name:        "NO_COLOR accepts any value",
			env:         map[string]string{"NO_COLOR": "yes"},
			wantPack:    region.PackIndent,
			wantSource:  SourceDefault,
			wantNoColor: true,
			wantNCSrc:   SourceEnv,
		},
		{
			name:        "TERMLY_NO_COLOR beats NO_COLOR",
			env:         map[string]string{"NO_COLOR": "1", "TERMLY_NO_COLOR": "false"},
			wantPack:    region.PackIndent,
			wantSource:  SourceDefault,
			wantNoColor: false,
			wantNCSrc:   SourceEnv,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, FileName), tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			resolved, err := ResolveConfig(tt.cli)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPack, resolved.Pack)
			assert.Equal(t, tt.wantSource, resolved.PackSource)
			assert.Equal(t, tt.wantNoColor, resolved.NoColor)
			assert.Equal(t, tt.wantNCSrc, resolved.NoColorSource)
		})
	}
}

func TestResolveConfig_ExplicitConfigPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "stream: stdout\nmargins: on-clear\n")

	resolved, err := ResolveConfig(CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "stdout", resolved.Stream)
	assert.Equal(t, SourceFile, resolved.StreamSource)
	assert.Equal(t, region.MarginsOnClear, resolved.Margins)
	assert.Equal(t, path, resolved.ConfigPath)

	_, err = ResolveConfig(CliFlags{ConfigPath: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestResolveConfig_ReportsFileSource_When_FileRepeatsDefaults(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, FileName), "pack: indent\nmargins: always\nstream: stderr\nno_color: false\n")

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, region.PackIndent, resolved.Pack)
	for _, src := range []string{resolved.NoColorSource, resolved.PackSource, resolved.MarginsSource, resolved.StreamSource} {
		assert.Equal(t, SourceFile, src)
	}
}

func TestResolveConfig_RejectsNonBooleanTermlyNoColor(t *testing.T) {
	isolate(t)
	t.Setenv("TERMLY_NO_COLOR", "sometimes")
	t.Setenv("NO_COLOR", "1")

	_, err := ResolveConfig(CliFlags{})

	require.ErrorContains(t, err, "config validation failed")
	assert.ErrorContains(t, err, "TERMLY_NO_COLOR")
}

func TestResolveConfig_DebugLogFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TERMLY_DEBUG", "/tmp/debug.log")

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/debug.log", resolved.DebugLog)

	resolved, err = ResolveConfig(CliFlags{DebugLog: "cli.log", DebugLogSet: true})
	require.NoError(t, err)
	assert.Equal(t, "cli.log", resolved.DebugLog)
}

func TestResolveConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		cli  CliFlags
	}{
		{"unknown pack", CliFlags{Pack: "diagonal", PackSet: true}},
		{"unknown margins", CliFlags{Margins: "sometimes", MarginsSet: true}},
		{"unknown stream", CliFlags{Stream: "stdin", StreamSet: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := ResolveConfig(tt.cli)

			assert.ErrorContains(t, err, "config validation failed")
		})
	}
}
