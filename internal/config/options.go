// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Options are process-level overrides read from GIT_TOGETHER_* environment
// variables. ConfigFile, when set, names the exact config file to use and
// skips repository discovery entirely.
type Options struct {
	ConfigFile   string `env:"GIT_TOGETHER_CONFIG"`
	Namespace    string `env:"GIT_TOGETHER_NAMESPACE" envDefault:"git-together"`
	NoAutoRotate bool   `env:"GIT_TOGETHER_NO_AUTO_ROTATE"`
}

// OptionsFromEnv parses Options from the current environment.
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("parsing GIT_TOGETHER environment: %w", err)
	}
	return opts, nil
}
