package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutUsesPassInsertUnderPrefix(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		prefix: DefaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", "nutricoach/user"}, args)
			assert.Equal(t, "{\"accessToken\":\"abc123\"}\n", input)
			return "", "", nil
		},
	}

	err := store.Put(context.Background(), domain.SessionKey, `{"accessToken":"abc123"}`)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: "custom",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "custom/user"}, args)
			assert.Empty(t, input)
			return "{\"accessToken\":\"abc123\"}\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), domain.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, `{"accessToken":"abc123"}`, value)
}

func TestStoreGetMapsMissingEntryToNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: DefaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: nutricoach/user is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), domain.SessionKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: DefaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "nutricoach/user"}, args)
			return "", "Error: nutricoach/user is not in the password store.", errors.New("exit status 1")
		},
	}

	require.NoError(t, store.Delete(context.Background(), domain.SessionKey))
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		prefix: DefaultPrefix,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed: No secret key", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), domain.SessionKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "nutricoach/user")
	assert.ErrorContains(t, err, "No secret key")
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestNewStoreDefaultsPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultPrefix, NewStore("  ").prefix)
	assert.Equal(t, "team", NewStore("team").prefix)
}
