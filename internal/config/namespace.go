// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"strings"
)

// Namespaced prefixes every key with "<ns>." before delegating, so the
// engine works with bare keys ("active", "domain", "authors.jh") while the
// backing git config stays under a single section.
type Namespaced struct {
	store  Store
	prefix string
}

// NewNamespaced wraps store so all keys live under ns.
func NewNamespaced(store Store, ns string) *Namespaced {
	return &Namespaced{store: store, prefix: ns + "."}
}

func (n *Namespaced) Get(key string) (string, error) {
	return n.store.Get(n.prefix + key)
}

func (n *Namespaced) Set(key, value string) error {
	return n.store.Set(n.prefix+key, value)
}

// All enumerates keys under prefix with the namespace stripped back off.
// It fails when the underlying store cannot enumerate.
func (n *Namespaced) All(prefix string) (map[string]string, error) {
	lister, ok := n.store.(Lister)
	if !ok {
		return nil, fmt.Errorf("config store cannot list keys")
	}
	raw, err := lister.All(n.prefix + prefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		out[strings.TrimPrefix(key, n.prefix)] = value
	}
	return out, nil
}
