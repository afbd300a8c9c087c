package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoScenario(t *testing.T) {
	sc := demoScenario()
	require.NoError(t, sc.Validate())
	assert.Len(t, sc.Agents, 2)
	assert.NotEmpty(t, sc.Script)
}

func TestDemoCmd(t *testing.T) {
	cmd := NewDemoCmd()
	cmd.SetArgs([]string{})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "1 conflict(s)")
	assert.Contains(t, got, "[MERGED] Mandela funeral / Mandela speech at UN")
	assert.Contains(t, got, "FloorTag[canonical_v1] - 1 nodes @")
	// The trailing log command echoes the whole session.
	assert.Contains(t, got, "tag floor canonical_v1")
}
