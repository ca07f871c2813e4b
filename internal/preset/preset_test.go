package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicholasturner1/dnd-roller/internal/preset"
)

const sampleYAML = `
presets:
  stats: 3d6
  attack: 1d20+5
  damage: 2d6+3-1d4
`

func TestLoadFromBytes(t *testing.T) {
	table, err := preset.LoadFromBytes([]byte(sampleYAML))
	require.NoError(t, err)

	expr, ok := table.Resolve("stats")
	require.True(t, ok)
	assert.Equal(t, "3d6", expr)

	_, ok = table.Resolve("initiative")
	assert.False(t, ok, "unknown names must not resolve")
}

func TestNames_Sorted(t *testing.T) {
	table, err := preset.LoadFromBytes([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"attack", "damage", "stats"}, table.Names())
}

func TestLoadFromBytes_MalformedExpression(t *testing.T) {
	_, err := preset.LoadFromBytes([]byte("presets:\n  broken: 3d\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoadFromBytes_EmptyExpression(t *testing.T) {
	_, err := preset.LoadFromBytes([]byte("presets:\n  hollow: \"\"\n"))
	assert.Error(t, err)
}

func TestLoadFromBytes_BadYAML(t *testing.T) {
	_, err := preset.LoadFromBytes([]byte("presets: [not a map"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	table, err := preset.LoadFromFile(path)
	require.NoError(t, err)
	expr, ok := table.Resolve("attack")
	require.True(t, ok)
	assert.Equal(t, "1d20+5", expr)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := preset.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
