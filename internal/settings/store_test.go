package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takak2166/notion-clipper/internal/models"
	"github.com/zalando/go-keyring"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) Store { return newSQLiteStore(t) },
		"keyring": func(t *testing.T) Store {
			keyring.MockInit()
			return NewKeyringStore(NewMemoryStore())
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			values, err := store.Get(ctx, models.KeyNotionToken, models.KeyDatabaseID)
			require.NoError(t, err)
			assert.Empty(t, values)

			require.NoError(t, store.Set(ctx, map[string]string{
				models.KeyNotionToken: "secret_abc",
				models.KeyDatabaseID:  "db-1",
			}))
			require.NoError(t, store.Set(ctx, map[string]string{models.KeyDatabaseID: "db-2"}))

			values, err = store.Get(ctx, models.KeyNotionToken, models.KeyDatabaseID, models.KeySelectedText)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{
				models.KeyNotionToken: "secret_abc",
				models.KeyDatabaseID:  "db-2",
			}, values)

			require.NoError(t, store.Set(ctx, map[string]string{models.KeySelectedText: ""}))
			values, err = store.Get(ctx, models.KeySelectedText)
			require.NoError(t, err)
			text, ok := values[models.KeySelectedText]
			assert.True(t, ok, "empty string is a stored value")
			assert.Equal(t, "", text)

			require.NoError(t, store.Remove(ctx, models.KeyNotionToken, models.KeySelectedText))
			values, err = store.Get(ctx, models.KeyNotionToken, models.KeyDatabaseID, models.KeySelectedText)
			require.NoError(t, err)
			assert.Equal(t, map[string]string{models.KeyDatabaseID: "db-2"}, values)
		})
	}
}

func TestSQLiteStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, map[string]string{models.KeyDatabaseID: "db-1"}))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	values, err := reopened.Get(ctx, models.KeyDatabaseID)
	require.NoError(t, err)
	assert.Equal(t, "db-1", values[models.KeyDatabaseID])
}

func TestKeyringStoreRoutesSecrets(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()
	plain := NewMemoryStore()
	store := NewKeyringStore(plain)

	require.NoError(t, store.Set(ctx, map[string]string{
		models.KeyNotionToken: "secret_abc",
		models.KeyDatabaseID:  "db-1",
	}))

	secret, err := keyring.Get(KeyringService, models.KeyNotionToken)
	require.NoError(t, err)
	assert.Equal(t, "secret_abc", secret)

	values, err := plain.Get(ctx, models.KeyNotionToken, models.KeyDatabaseID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{models.KeyDatabaseID: "db-1"}, values, "token must not reach the plain store")
}
