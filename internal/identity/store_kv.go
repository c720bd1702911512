// Copyright (c) 2026 Holospace. All rights reserved.

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/holospace/holospace/internal/platform/kv"
)

// KVCredentialStore implements [CredentialStore] on top of the key-value store.
type KVCredentialStore struct {
	store kv.Store
}

// NewKVCredentialStore constructs a credential store backed by the given KV store.
func NewKVCredentialStore(store kv.Store) *KVCredentialStore {
	return &KVCredentialStore{store: store}
}

// Find returns the credential stored for the given email.
func (repository *KVCredentialStore) Find(ctx context.Context, email string) (*Credential, error) {
	var credential Credential
	err := repository.store.Get(ctx, credentialKey(NormalizeEmail(email)), &credential)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("identity_store_find_failed: %w", err)
	}
	return &credential, nil
}

// Save persists a credential record, overwriting any previous value.
func (repository *KVCredentialStore) Save(ctx context.Context, credential *Credential) error {
	if err := repository.store.Set(ctx, credentialKey(NormalizeEmail(credential.Email)), credential); err != nil {
		return fmt.Errorf("identity_store_save_failed: %w", err)
	}
	return nil
}
