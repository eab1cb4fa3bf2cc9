package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{StartDir: t.TempDir(), SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Empty(t, cfg.Path)
}

func TestLoadFindsFileUpwards(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `
[input]
encoding = "latin1"
delimiter = ";"

[output]
precision = 6

[resolve]
policy = "keep-last"
remember = true
`)
	nested := filepath.Join(root, "boats", "j70")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(Options{StartDir: nested, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), cfg.Path)
	assert.Equal(t, "latin1", cfg.Input.Encoding)
	assert.Equal(t, ";", cfg.Input.Delimiter)
	assert.Equal(t, 6, cfg.Output.Precision)
	assert.Equal(t, "keep-last", cfg.Resolve.Policy)
	assert.True(t, cfg.Resolve.Remember)
	// Unset keys keep their defaults.
	assert.Equal(t, "auto", cfg.Resolve.UI)
	assert.Equal(t, 100, cfg.Diagnostics.Max)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[resolve]\npolicy = \"keep-first\"\n")
	t.Setenv("POLARCONV_RESOLVE_POLICY", "fail")
	t.Setenv("POLARCONV_OUTPUT_PRECISION", "8")

	cfg, err := Load(Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "fail", cfg.Resolve.Policy)
	assert.Equal(t, 8, cfg.Output.Precision)
}

func TestValidationErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `
[input]
encoding = "ebcdic"
delimiter = "7"

[output]
precision = 40

[resolve]
policy = "coin"
ui = "maybe"
`)
	_, err := Load(Options{Path: path, SkipEnv: true})
	require.Error(t, err)
	for _, want := range []string{"input.encoding", "input.delimiter", "output.precision", "resolve.policy", "resolve.ui"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestUnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output]\nprecison = 3\n")
	_, err := Load(Options{Path: path, SkipEnv: true})
	require.ErrorContains(t, err, "unknown key(s): output.precison")
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(Options{Path: filepath.Join(t.TempDir(), "nope.toml"), SkipEnv: true})
	require.Error(t, err)
}

func TestBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[output\n")
	_, err := Load(Options{Path: path, SkipEnv: true})
	require.ErrorContains(t, err, "failed to parse TOML")
}
