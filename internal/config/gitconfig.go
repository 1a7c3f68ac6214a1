// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

func init() {
	// git-style "key = value" without column alignment.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// Author records carry a literal ";", which must not start an inline
// comment when the file is re-read.
var loadOptions = ini.LoadOptions{IgnoreInlineComment: true}

// GitConfig is a Store over one or more git config files. Reads consult the
// paths in order and the first file defining the key wins, so callers list
// the repository-local config before the global one. Writes always target
// the first path.
type GitConfig struct {
	fs    afero.Fs
	paths []string
	log   *zap.Logger
}

// NewGitConfig builds a store over the given config files, highest
// precedence first. At least one path is required; the first is the write
// target and may not exist yet.
func NewGitConfig(fs afero.Fs, log *zap.Logger, paths ...string) *GitConfig {
	if log == nil {
		log = zap.NewNop()
	}
	return &GitConfig{fs: fs, paths: paths, log: log}
}

// Get returns the value for key from the first file that defines it.
func (g *GitConfig) Get(key string) (string, error) {
	section, name, err := splitKey(key)
	if err != nil {
		return "", err
	}

	for _, path := range g.paths {
		file, err := g.load(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", err
		}
		if file.Section(section).HasKey(name) {
			g.log.Debug("config key resolved",
				zap.String("key", key),
				zap.String("file", path))
			return file.Section(section).Key(name).String(), nil
		}
	}

	return "", &KeyNotFoundError{Key: key}
}

// Set writes key=value into the first (highest precedence) config file,
// creating it if necessary and preserving unrelated entries.
func (g *GitConfig) Set(key, value string) error {
	section, name, err := splitKey(key)
	if err != nil {
		return err
	}

	path := g.paths[0]
	file, err := g.load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		file = ini.Empty()
	}

	file.Section(section).Key(name).SetValue(value)

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	if err := afero.WriteFile(g.fs, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	g.log.Debug("config key written",
		zap.String("key", key),
		zap.String("file", path))
	return nil
}

// All returns every key under prefix, merged across files with the usual
// precedence (a key defined locally shadows the global definition).
func (g *GitConfig) All(prefix string) (map[string]string, error) {
	out := make(map[string]string)

	// Walk lowest precedence first so later files overwrite.
	for i := len(g.paths) - 1; i >= 0; i-- {
		file, err := g.load(g.paths[i])
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, section := range file.Sections() {
			for _, key := range section.Keys() {
				full := key.Name()
				if section.Name() != ini.DefaultSection {
					full = section.Name() + "." + key.Name()
				}
				if strings.HasPrefix(full, prefix) {
					out[full] = key.String()
				}
			}
		}
	}

	return out, nil
}

func (g *GitConfig) load(path string) (*ini.File, error) {
	data, err := afero.ReadFile(g.fs, path)
	if err != nil {
		return nil, err
	}
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file, nil
}

// splitKey maps a dotted config key onto an ini section and key name. Only
// the first dot separates the section, so "git-together.authors.jh" lands in
// section "git-together" under the name "authors.jh".
func splitKey(key string) (section, name string, err error) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid config key: %s", key)
	}
	return parts[0], parts[1], nil
}
