package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCmd_WithYes(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()
	seed(fake, 2)

	out, _, err := execute(t, "clear", "--yes")

	require.NoError(t, err)
	assert.Contains(t, out, "All documents cleared successfully")
	assert.Equal(t, 1, fake.cleared)
	assert.Empty(t, fake.docs)
}

func TestClearCmd_NonInteractiveRefuses(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()
	stdinIsTerminal = func() bool { return false }

	_, _, err := execute(t, "clear")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pass --yes")
	assert.Zero(t, fake.cleared)
}

func TestClearCmd_Confirmed(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()
	stdinIsTerminal = func() bool { return true }
	rootCmd.SetIn(strings.NewReader("y\n"))

	out, _, err := execute(t, "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "[y/N]")
	assert.Equal(t, 1, fake.cleared)
}

func TestClearCmd_Declined(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()
	stdinIsTerminal = func() bool { return true }
	rootCmd.SetIn(strings.NewReader("n\n"))

	out, _, err := execute(t, "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
	assert.Zero(t, fake.cleared)
}

func TestClearCmd_ServiceError(t *testing.T) {
	fake, cleanup := setupTestServices()
	defer cleanup()
	fake.ClearErr = errors.New("connection refused")

	_, _, err := execute(t, "clear", "-y")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error clearing documents")
}
