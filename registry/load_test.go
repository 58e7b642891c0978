package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/debashishc/electoralcollege/types"
)

func TestLoad(t *testing.T) {
	t.Run("round trips the built-in table", func(t *testing.T) {
		data, err := Default().Marshal()
		require.NoError(t, err)

		reg, err := Load(strings.NewReader(string(data)))
		require.NoError(t, err)
		require.Equal(t, Default().All(), reg.All())
	})

	t.Run("loads from file", func(t *testing.T) {
		data, err := Default().Marshal()
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "registry.yaml")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		reg, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, types.TotalElectoralVotes, reg.Total())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Load(strings.NewReader("jurisdictions:\n  - id: CA\n    votes: 54\n"))
		require.ErrorIs(t, err, types.ErrInvalidRegistry)
	})

	t.Run("rejects unknown jurisdiction", func(t *testing.T) {
		_, err := Load(strings.NewReader("jurisdictions:\n  - id: XX\n    electoralVotes: 3\n    region: West\n"))
		require.ErrorIs(t, err, types.ErrInvalidRegistry)
		require.ErrorIs(t, err, types.ErrInvalidJurisdiction)
	})

	t.Run("rejects unknown region", func(t *testing.T) {
		_, err := Load(strings.NewReader("jurisdictions:\n  - id: CA\n    electoralVotes: 54\n    region: Pacific\n"))
		require.ErrorIs(t, err, types.ErrInvalidRegistry)
	})

	t.Run("rejects incomplete table", func(t *testing.T) {
		_, err := Load(strings.NewReader("jurisdictions:\n  - id: CA\n    electoralVotes: 54\n    districts: 52\n    region: West\n"))
		require.ErrorIs(t, err, types.ErrInvalidRegistry)
	})
}
