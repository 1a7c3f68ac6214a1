// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides the key-value capability git-together keeps its
// author and roster state in, plus the production implementation over git
// config files.
package config

import (
	"errors"
	"fmt"
)

// Store is the injected key-value capability. Get fails with
// *KeyNotFoundError when the key has no value in any backing file.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Lister is implemented by stores that can enumerate keys by prefix.
// The core engine never needs it; the CLI's listing and export surfaces do.
type Lister interface {
	All(prefix string) (map[string]string, error)
}

// KeyNotFoundError reports a lookup for a key that no backing file defines.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("config key not found: %s", e.Key)
}

// IsKeyNotFound reports whether err is, or wraps, a missing-key failure.
func IsKeyNotFound(err error) bool {
	var notFound *KeyNotFoundError
	return errors.As(err, &notFound)
}
