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

func TestReadCommands(t *testing.T) {
	in := strings.NewReader(`
# observer session
merge

tag floor v1
  # indented comment
log
`)

	commands, err := readCommands(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"merge", "tag floor v1", "log"}, commands)
}

func TestReadCommandsEmpty(t *testing.T) {
	commands, err := readCommands(strings.NewReader("\n\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, commands)
}

func TestExecCmdFromFile(t *testing.T) {
	scenario := writeTestScenario(t, testScenarioYAML)
	script := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(script, []byte("split\ntag floor branched\n"), 0644))

	cmd := NewExecCmd()
	cmd.SetArgs([]string{scenario, script})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[main_a]")
	assert.Contains(t, out.String(), "[main_b]")
	assert.Contains(t, out.String(), "FloorTag[branched] - 2 nodes @")
}

func TestExecCmdFromStdin(t *testing.T) {
	scenario := writeTestScenario(t, testScenarioYAML)

	cmd := NewExecCmd()
	cmd.SetArgs([]string{scenario})
	cmd.SetIn(strings.NewReader("mask certainty < 0.9\n"))

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	// Both nodes carry the 0.5 default, so a 0.9 threshold masks them all.
	assert.Contains(t, out.String(), "Masked nodes with certainty < 0.9. 0 remaining.")
}

func TestExecCmdParameterFailureContinues(t *testing.T) {
	scenario := writeTestScenario(t, testScenarioYAML)

	cmd := NewExecCmd()
	cmd.SetArgs([]string{scenario})
	cmd.SetIn(strings.NewReader("mask certainty < bogus\nlog\n"))

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "invalid certainty threshold")
	assert.Contains(t, out.String(), "mask certainty < bogus")
}
