package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeoscan/aeoscan/internal/adapters/inbound/cli"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aeoscan")
}

func TestValidateCommand_RequiresURL(t *testing.T) {
	_, err := runCommand(t, "validate")
	assert.Error(t, err)
}

func TestValidateCommand_RejectsInvalidURL(t *testing.T) {
	// Request validation fails before any adapter is called, so the bad URL
	// never reaches the network.
	_, err := runCommand(t, "validate", "not-a-url", "--business-name", "Acme", "--config-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")
}

func TestValidateCommand_RejectsMissingBusinessName(t *testing.T) {
	_, err := runCommand(t, "validate", "https://example.com", "--config-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "business")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["validate"])
	assert.True(t, names["version"])
	assert.True(t, names["mcp"])
}
