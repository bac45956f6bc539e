package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/aeoscan/aeoscan/internal/adapters/inbound/mcp"
)

func TestNewAEOScanMCPServer(t *testing.T) {
	s, err := mcpadapter.NewAEOScanMCPServer(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s, err := mcpadapter.NewAEOScanMCPServer(t.TempDir())
	require.NoError(t, err)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"aeoscan_validate",
		"aeoscan_categories",
		"aeoscan_history",
		"aeoscan_job",
		"aeoscan_jobs",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
