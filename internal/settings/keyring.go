package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/takak2166/notion-clipper/internal/models"
	"github.com/zalando/go-keyring"
)

// KeyringService is the OS keyring service name secrets are filed under
const KeyringService = "notion-clipper"

// KeyringStore keeps secret keys in the OS keyring and delegates the rest
type KeyringStore struct {
	next    Store
	service string
	secrets map[string]bool
}

// NewKeyringStore wraps next, routing the Notion token to the OS keyring
func NewKeyringStore(next Store) *KeyringStore {
	return &KeyringStore{
		next:    next,
		service: KeyringService,
		secrets: map[string]bool{models.KeyNotionToken: true},
	}
}

func (s *KeyringStore) Get(ctx context.Context, keys ...string) (map[string]string, error) {
	var plain []string
	result := make(map[string]string, len(keys))

	for _, key := range keys {
		if !s.secrets[key] {
			plain = append(plain, key)
			continue
		}
		secret, err := keyring.Get(s.service, key)
		if errors.Is(err, keyring.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from keyring: %w", key, err)
		}
		result[key] = secret
	}

	if len(plain) > 0 {
		values, err := s.next.Get(ctx, plain...)
		if err != nil {
			return nil, err
		}
		for k, v := range values {
			result[k] = v
		}
	}

	return result, nil
}

func (s *KeyringStore) Set(ctx context.Context, values map[string]string) error {
	plain := make(map[string]string, len(values))
	for k, v := range values {
		if !s.secrets[k] {
			plain[k] = v
			continue
		}
		if err := keyring.Set(s.service, k, v); err != nil {
			return fmt.Errorf("failed to write %s to keyring: %w", k, err)
		}
	}

	if len(plain) == 0 {
		return nil
	}
	return s.next.Set(ctx, plain)
}

func (s *KeyringStore) Remove(ctx context.Context, keys ...string) error {
	var plain []string
	for _, key := range keys {
		if !s.secrets[key] {
			plain = append(plain, key)
			continue
		}
		if err := keyring.Delete(s.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to delete %s from keyring: %w", key, err)
		}
	}

	if len(plain) == 0 {
		return nil
	}
	return s.next.Remove(ctx, plain...)
}
