package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "tubesum dev\n", out.String())
}

func TestSummarizeCommandFromStdin(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "tubesum.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("First point here. Second point here."))
	cmd.SetArgs([]string{"summarize", "--config", cfgPath, "--mode", "local", "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "First point here. Second point here.\n", out.String())
	// config créée depuis l'exemple embarqué
	_, err := os.Stat(cfgPath)
	require.NoError(t, err)
}

func TestRootRejectsExclusiveFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--url", "https://youtu.be/dQw4w9WgXcQ", "--paste"})
	require.Error(t, cmd.Execute())
}
