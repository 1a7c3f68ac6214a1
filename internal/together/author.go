// SPDX-License-Identifier: AGPL-3.0-or-later

package together

import (
	"strings"
)

// Author identifies one participant on a commit. Values are only ever
// constructed fully validated; compare them by value.
type Author struct {
	Name  string
	Email string
}

// ParseAuthor builds an Author from a raw "<name>; <email-or-local>" record.
// When the part after the semicolon carries no "@", it is treated as a bare
// local part and domain is appended. A record with no semicolon, an empty
// name, or an empty email seed is invalid.
func ParseAuthor(domain, raw string) (Author, error) {
	parts := strings.SplitN(raw, ";", 2)
	if len(parts) < 2 {
		return Author{}, &InvalidAuthorError{Raw: raw}
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Author{}, &InvalidAuthorError{Raw: raw}
	}

	seed := strings.TrimSpace(parts[1])
	if seed == "" {
		return Author{}, &InvalidAuthorError{Raw: raw}
	}

	email := seed
	if !strings.Contains(seed, "@") {
		email = seed + "@" + domain
	}

	return Author{Name: name, Email: email}, nil
}
