package tokenstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")

	store, err := Open(path)
	require.NoError(t, err)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store holds no token")

	require.NoError(t, store.Save("first"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	require.NoError(t, store.Save("second"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", token, "save overwrites the single key")
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("durable"))

	reopened, err := Open(path)
	require.NoError(t, err)
	token, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "durable", token)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("tok"))

	require.NoError(t, store.Clear())
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Clear(), "clearing an empty store is fine")
}
