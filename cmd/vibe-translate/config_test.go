package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetGet(t *testing.T) {
	home := isolateHome(t)

	code, out, _ := runCLI(t, "config", "set", "strand", "template")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Set strand = template")

	_, err := os.Stat(filepath.Join(home, configFileName))
	require.NoError(t, err)

	code, out, _ = runCLI(t, "config", "get", "strand")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "template\n", out)

	// The stored strand becomes the default for translation.
	code, out, _ = runCLI(t, "--dna", "TACGCA")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Initial Protein Sequence: Met-Arg")

	// Flags still win over the config file.
	code, out, _ = runCLI(t, "--dna", "TACGCA", "--strand", "coding")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "No protein sequence could be translated")
}

func TestConfig_SetRejectsInvalidValues(t *testing.T) {
	isolateHome(t)

	code, _, stderr := runCLI(t, "config", "set", "strand", "reverse")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "unknown strand")

	code, _, stderr = runCLI(t, "config", "set", "format", "json")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "unknown output format")

	code, _, stderr = runCLI(t, "config", "set", "start", "abc")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, `invalid start "abc"`)
}

func TestConfig_Show(t *testing.T) {
	isolateHome(t)

	code, out, _ := runCLI(t, "config")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "strand: coding")
	assert.Contains(t, out, "format: text")
}

func TestConfig_GetUnknownKey(t *testing.T) {
	isolateHome(t)

	code, _, stderr := runCLI(t, "config", "get", "nope")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, `key "nope" is not set`)
}

func TestConfig_ExplicitFileMissing(t *testing.T) {
	home := isolateHome(t)

	code, _, stderr := runCLI(t, "--config", filepath.Join(home, "missing.yaml"))
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "reading config")
}
