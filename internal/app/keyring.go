package app

import (
	"fmt"

	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/zalando/go-keyring"
)

// StorePassword saves the CardDAV password of user in the system keyring.
func StorePassword(user, password string) error {
	if err := keyring.Set(config.KeyringService, user, password); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyringSet, err)
	}
	return nil
}

// LoadPassword reads the CardDAV password of user.
func LoadPassword(user string) (string, error) {
	p, err := keyring.Get(config.KeyringService, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrKeyringGet, err)
	}
	return p, nil
}
