// SPDX-License-Identifier: AGPL-3.0-or-later

// Package team loads YAML team rosters and moves them in and out of the
// config store, so a whole team can be set up without one `git config` call
// per member.
package team

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/git-together/internal/config"
	"github.com/bartekus/git-together/internal/together"
)

// Member is one person in a roster file. Email may be a full address or a
// bare local part completed by the roster's domain at resolution time.
type Member struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Roster is the on-disk YAML description of a team.
type Roster struct {
	Domain  string            `yaml:"domain"`
	Authors map[string]Member `yaml:"authors"`
}

// Load reads and validates a roster file.
func Load(fs afero.Fs, path string) (*Roster, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}
	if err := roster.Validate(); err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return &roster, nil
}

// Validate checks that every member would survive author resolution.
func (r *Roster) Validate() error {
	if strings.TrimSpace(r.Domain) == "" {
		return fmt.Errorf("missing domain")
	}
	if len(r.Authors) == 0 {
		return fmt.Errorf("no authors defined")
	}
	for initial, member := range r.Authors {
		if strings.TrimSpace(initial) == "" {
			return fmt.Errorf("empty initials")
		}
		if _, err := together.ParseAuthor(r.Domain, record(member)); err != nil {
			return fmt.Errorf("author %q: %w", initial, err)
		}
	}
	return nil
}

// Import writes the roster's domain and author records into the store.
// Records are written in sorted initial order so repeated imports touch the
// backing file deterministically.
func Import(store config.Store, r *Roster) error {
	if err := store.Set(together.KeyDomain, r.Domain); err != nil {
		return err
	}
	initials := make([]string, 0, len(r.Authors))
	for initial := range r.Authors {
		initials = append(initials, initial)
	}
	sort.Strings(initials)
	for _, initial := range initials {
		if err := store.Set(together.AuthorsPrefix+initial, record(r.Authors[initial])); err != nil {
			return err
		}
	}
	return nil
}

// Export rebuilds a roster from every author record in the store. The
// domain is optional on export; records keep their stored email seeds
// (bare local parts are not expanded).
func Export(store config.Store) (*Roster, error) {
	lister, ok := store.(config.Lister)
	if !ok {
		return nil, fmt.Errorf("config store cannot list keys")
	}

	roster := &Roster{Authors: make(map[string]Member)}
	if domain, err := store.Get(together.KeyDomain); err == nil {
		roster.Domain = domain
	} else if !config.IsKeyNotFound(err) {
		return nil, err
	}

	records, err := lister.All(together.AuthorsPrefix)
	if err != nil {
		return nil, err
	}
	for key, raw := range records {
		initial := strings.TrimPrefix(key, together.AuthorsPrefix)
		name, email, ok := splitRecord(raw)
		if !ok {
			return nil, &together.InvalidAuthorError{Raw: raw}
		}
		roster.Authors[initial] = Member{Name: name, Email: email}
	}
	return roster, nil
}

// Marshal renders the roster as YAML.
func (r *Roster) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

func record(m Member) string {
	return m.Name + "; " + m.Email
}

func splitRecord(raw string) (name, email string, ok bool) {
	parts := strings.SplitN(raw, ";", 2)
	if len(parts) < 2 {
		return "", "", false
	}
	name = strings.TrimSpace(parts[0])
	email = strings.TrimSpace(parts[1])
	if name == "" || email == "" {
		return "", "", false
	}
	return name, email, true
}
