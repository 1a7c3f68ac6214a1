// SPDX-License-Identifier: AGPL-3.0-or-later

// Package together implements the identity-resolution and rotation engine:
// it resolves the active roster of initials into validated Authors against a
// config store and stamps author/committer identity onto outgoing git
// commands.
package together

import (
	"strings"

	"go.uber.org/zap"

	"github.com/bartekus/git-together/internal/config"
)

// Store keys the engine owns. AuthorsPrefix and KeyDomain are exported for
// the listing and import surfaces that manage records on the engine's
// behalf.
const (
	KeyDomain     = "domain"
	AuthorsPrefix = "authors."

	keyActive = "active"

	// rosterSep joins initials in the stored "active" value. Wire format
	// shared with existing stored data; do not change.
	rosterSep = "+"
)

// GitTogether resolves and rotates the active roster against a config store.
// All operations are synchronous read-validate-write transactions; the first
// failure aborts with nothing persisted.
type GitTogether struct {
	store config.Store
	log   *zap.Logger
}

// New builds an engine over store. A nil logger disables logging.
func New(store config.Store, log *zap.Logger) *GitTogether {
	if log == nil {
		log = zap.NewNop()
	}
	return &GitTogether{store: store, log: log}
}

// GetActive returns the ordered roster of active initials. The first entry
// is attributed as commit author, the second as committer. An empty stored
// value is the empty roster; a missing key is an error.
func (gt *GitTogether) GetActive() ([]string, error) {
	active, err := gt.store.Get(keyActive)
	if err != nil {
		return nil, err
	}
	return splitRoster(active), nil
}

// SetActive validates that every initial resolves to a real author and only
// then persists the roster. On failure the stored roster is untouched.
func (gt *GitTogether) SetActive(inits []string) error {
	if _, err := gt.GetAuthors(inits); err != nil {
		return err
	}
	return gt.store.Set(keyActive, strings.Join(inits, rosterSep))
}

// ClearActive empties the roster. Unlike SetActive it skips resolution;
// an empty roster has nothing to validate.
func (gt *GitTogether) ClearActive() error {
	return gt.store.Set(keyActive, "")
}

// RotateActive moves the first initial to the end of the roster, so the
// committer becomes the next author. Rotating an empty roster is a no-op
// write; the rotated roster is re-validated on the way back in.
func (gt *GitTogether) RotateActive() error {
	inits, err := gt.GetActive()
	if err != nil {
		return err
	}
	if len(inits) > 0 {
		inits = append(inits[1:], inits[0])
	}
	gt.log.Debug("rotating active roster", zap.Strings("roster", inits))
	return gt.SetActive(inits)
}

// GetAuthors resolves initials to Authors, preserving order and resolving
// duplicates independently. The domain is fetched once up front and its
// absence aborts before any author lookup. The first failing initial aborts
// the whole resolution; no partial result is returned.
func (gt *GitTogether) GetAuthors(inits []string) ([]Author, error) {
	domain, err := gt.store.Get(KeyDomain)
	if err != nil {
		return nil, err
	}

	authors := make([]Author, 0, len(inits))
	for _, init := range inits {
		raw, err := gt.store.Get(AuthorsPrefix + init)
		if err != nil {
			if config.IsKeyNotFound(err) {
				return nil, &AuthorNotFoundError{Initial: init, Err: err}
			}
			return nil, err
		}
		if raw == "" {
			return nil, &InvalidAuthorError{Raw: raw}
		}
		author, err := ParseAuthor(domain, raw)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}

	return authors, nil
}

// Signoff stamps identity for one commit onto cmd: the first active author
// becomes GIT_AUTHOR_NAME/EMAIL, the second becomes GIT_COMMITTER_NAME/EMAIL
// and adds --signoff. Initials beyond the second are resolved (so a broken
// record still fails the whole command) but not attributed. On error cmd is
// left unmodified.
func (gt *GitTogether) Signoff(cmd Command) error {
	active, err := gt.store.Get(keyActive)
	if err != nil {
		return err
	}
	authors, err := gt.GetAuthors(splitRoster(active))
	if err != nil {
		return err
	}

	if len(authors) > 0 {
		cmd.Setenv("GIT_AUTHOR_NAME", authors[0].Name)
		cmd.Setenv("GIT_AUTHOR_EMAIL", authors[0].Email)
	}
	if len(authors) > 1 {
		cmd.Setenv("GIT_COMMITTER_NAME", authors[1].Name)
		cmd.Setenv("GIT_COMMITTER_EMAIL", authors[1].Email)
		cmd.AppendArg("--signoff")
	}

	return nil
}

// splitRoster parses the stored roster value. The empty string is the empty
// roster, not a roster of one empty initial.
func splitRoster(active string) []string {
	if active == "" {
		return nil
	}
	return strings.Split(active, rosterSep)
}
