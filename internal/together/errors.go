// SPDX-License-Identifier: AGPL-3.0-or-later

package together

import (
	"fmt"
)

// AuthorNotFoundError reports initials with no author record in the store.
// It wraps the store's own missing-key failure as the cause.
type AuthorNotFoundError struct {
	Initial string
	Err     error
}

func (e *AuthorNotFoundError) Error() string {
	return fmt.Sprintf("no author found for initials %q", e.Initial)
}

func (e *AuthorNotFoundError) Unwrap() error { return e.Err }

// InvalidAuthorError reports a record that exists but fails parsing: missing
// separator, empty name, empty email seed, or an entirely empty value.
type InvalidAuthorError struct {
	Raw string
}

func (e *InvalidAuthorError) Error() string {
	return fmt.Sprintf("invalid author record: %q", e.Raw)
}
