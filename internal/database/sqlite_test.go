//go:build sqlite

package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLite_Preferences(t *testing.T) {
	db, err := NewSQLite(filepath.Join(t.TempDir(), "prefs.sqlite"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())

	_, ok, err := db.GetPreference("theme")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, db.SetPreference("theme", "dark"))
	require.NoError(t, db.SetPreference("theme", "light"))

	v, ok, err := db.GetPreference("theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "light", v)

	require.Error(t, db.SetPreference("", "x"))
}
