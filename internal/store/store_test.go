package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func kvImpls(t *testing.T) map[string]KV {
	return map[string]KV{
		"sqlite": openTestDB(t),
		"memory": NewMemory(),
	}
}

func TestKVRoundTrip(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Set("progress", []byte(`{"math":{}}`)))

			got, err := kv.Get("progress")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"math":{}}`), got)

			// Overwrite replaces.
			require.NoError(t, kv.Set("progress", []byte(`{}`)))
			got, err = kv.Get("progress")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{}`), got)
		})
	}
}

func TestKVMissingKey(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get("nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestKVDelete(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Set("credential", []byte("sk-test")))
			require.NoError(t, kv.Delete("credential"))

			_, err := kv.Get("credential")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing key is not an error.
			assert.NoError(t, kv.Delete("credential"))
		})
	}
}

func TestKVKeysPrefix(t *testing.T) {
	for name, kv := range kvImpls(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Set("history/math", []byte("a")))
			require.NoError(t, kv.Set("history/english", []byte("b")))
			require.NoError(t, kv.Set("progress", []byte("c")))

			keys, err := kv.Keys("history/")
			require.NoError(t, err)
			assert.Equal(t, []string{"history/english", "history/math"}, keys)
		})
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "persist.db")

	s, err := Open(dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set("model", []byte("openai/gpt-3.5-turbo")))
	require.NoError(t, s.Close())

	s2, err := Open(dsn)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get("model")
	require.NoError(t, err)
	assert.Equal(t, []byte("openai/gpt-3.5-turbo"), got)
}
