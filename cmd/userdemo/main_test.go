package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesSingleDisplayLine(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("LOG_LEVEL", "error") // logs go to stderr; keep test runs quiet

	var out bytes.Buffer
	err := run(&out)

	require.NoError(t, err)
	assert.Equal(t, "User: Alice (alice@example.com)\n", out.String())
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestGetConfigPath_DefaultsToCurrentDir(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, ".", getConfigPath())

	t.Setenv("CONFIG_PATH", "/etc/userdemo")
	assert.Equal(t, "/etc/userdemo", getConfigPath())
}

func TestGetEnvironment_DefaultsToDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "development", getEnvironment())

	t.Setenv("APP_ENV", "production")
	assert.Equal(t, "production", getEnvironment())
}
