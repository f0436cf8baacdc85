package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/nutricoach-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/nutricoach-cli/internal/adapters/secrets/pass"
	"github.com/bnema/nutricoach-cli/internal/ports"
)

// Store tries primary first and falls back to the second backend for any failure
// that is not a context error.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary store is nil")
	errNilFallbackStore = errors.New("fallback store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary store put failed: %w; fallback store put failed: %w", err, fallbackErr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr != nil {
		return "", fmt.Errorf("primary store get failed: %w; fallback store get failed: %w", err, fallbackErr)
	}

	return fallbackValue, nil
}

// Delete clears the key from both backends so a stale session cannot resurface
// from the fallback after logout.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if primaryErr != nil && shouldSkipFallback(primaryErr) {
		return primaryErr
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case primaryErr != nil && fallbackErr != nil:
		return fmt.Errorf("primary store delete failed: %w; fallback store delete failed: %w", primaryErr, fallbackErr)
	case fallbackErr != nil:
		return fmt.Errorf("fallback store delete failed: %w", fallbackErr)
	default:
		return nil
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
