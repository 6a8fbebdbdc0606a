package client

import (
	"encoding/json"
	"time"

	"serenity/internal/models/response_models"
	"serenity/pkg/utils"
)

// The two fixed storage keys; logout and invalidation clear both together.
const (
	StorageKeyToken   = "auth_token"
	StorageKeyAccount = "auth_account"
)

// SessionCache holds the bearer token and account snapshot between runs.
// Store and Clear are its only mutators; both are idempotent.
type SessionCache struct {
	storage Storage
}

func NewSessionCache(storage Storage) *SessionCache {
	return &SessionCache{storage: storage}
}

func (c *SessionCache) Store(token string, account *response_models.AccountResponse) error {
	encoded, err := json.Marshal(account)
	if err != nil {
		return err
	}
	if err := c.storage.Set(StorageKeyToken, []byte(token)); err != nil {
		return err
	}
	return c.storage.Set(StorageKeyAccount, encoded)
}

func (c *SessionCache) Token() (string, error) {
	value, err := c.storage.Get(StorageKeyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (c *SessionCache) Account() (*response_models.AccountResponse, error) {
	value, err := c.storage.Get(StorageKeyAccount)
	if err != nil || value == nil {
		return nil, err
	}
	var account response_models.AccountResponse
	if err := json.Unmarshal(value, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *SessionCache) Clear() error {
	return c.storage.Delete(StorageKeyToken, StorageKeyAccount)
}

// IsValid checks token freshness purely locally: it decodes the expiry claim
// without a network call. A missing, malformed or expired token clears the
// cache and reports false.
func (c *SessionCache) IsValid() bool {
	token, err := c.Token()
	if err != nil || token == "" {
		return false
	}
	expiresAt, err := utils.DecodeExpiry(token)
	if err != nil || !expiresAt.After(time.Now()) {
		c.Clear()
		return false
	}
	return true
}
