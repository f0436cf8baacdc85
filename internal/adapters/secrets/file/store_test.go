package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "store key is empty"},
		{name: "whitespace", key: "   ", wantErr: "store key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid store key"},
		{name: "traversal", key: "../escape", wantErr: "invalid store key"},
		{name: "deep traversal", key: "../../user", wantErr: "invalid store key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	want := `{"accessToken":"abc123"}`

	require.NoError(t, store.Put(context.Background(), domain.SessionKey, want))

	got, err := store.Get(context.Background(), domain.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, domain.SessionKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(entryFileMode), info.Mode().Perm())
}

func TestStorePutOverwritesWithoutLeavingTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), domain.SessionKey, "first"))
	require.NoError(t, store.Put(context.Background(), domain.SessionKey, "second"))

	got, err := store.Get(context.Background(), domain.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.SessionKey, entries[0].Name())
}

func TestStoreGetMissingKeyReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), domain.SessionKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentWhenEntryMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), domain.SessionKey))
	require.NoError(t, store.Delete(context.Background(), domain.SessionKey))
}

func TestStoreHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, domain.SessionKey)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Put(ctx, domain.SessionKey, "x"), context.Canceled)
}

func TestStoreConcurrentReadersSeeCompleteValues(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	values := []string{`{"accessToken":"one"}`, `{"accessToken":"two"}`}
	require.NoError(t, store.Put(context.Background(), domain.SessionKey, values[0]))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Put(context.Background(), domain.SessionKey, values[i%2]))
		}(i)
		go func() {
			defer wg.Done()
			got, err := store.Get(context.Background(), domain.SessionKey)
			assert.NoError(t, err)
			assert.Contains(t, values, got)
		}()
	}
	wg.Wait()
}
