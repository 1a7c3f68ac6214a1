// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bartekus/git-together/internal/config"
	"github.com/bartekus/git-together/internal/gitrepo"
	"github.com/bartekus/git-together/internal/logging"
	"github.com/bartekus/git-together/internal/together"
)

// deps bundles what every command needs: the engine, the namespaced store
// behind it, and the process options.
type deps struct {
	engine *together.GitTogether
	store  *config.Namespaced
	opts   config.Options
}

// setup resolves GIT_TOGETHER_* options and builds the engine over the
// enclosing repository's config (local shadowing global), or over the exact
// file named by GIT_TOGETHER_CONFIG.
func setup(cmd *cobra.Command) (*deps, error) {
	opts, err := config.OptionsFromEnv()
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logging.New(verbose)
	fs := afero.NewOsFs()

	var paths []string
	if opts.ConfigFile != "" {
		paths = []string{opts.ConfigFile}
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root, err := gitrepo.Find(fs, wd)
		if err != nil {
			return nil, err
		}
		paths = append(paths, gitrepo.LocalConfigPath(root))
		if global, err := gitrepo.GlobalConfigPath(); err == nil {
			paths = append(paths, global)
		}
	}

	store := config.NewNamespaced(config.NewGitConfig(fs, log, paths...), opts.Namespace)
	return &deps{
		engine: together.New(store, log),
		store:  store,
		opts:   opts,
	}, nil
}

// printActive writes the current roster, one line per author, annotated with
// the role each position carries on the next commit.
func printActive(cmd *cobra.Command, d *deps) error {
	inits, err := d.engine.GetActive()
	if err != nil {
		return err
	}
	if len(inits) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active authors")
		return nil
	}
	authors, err := d.engine.GetAuthors(inits)
	if err != nil {
		return err
	}

	for i, author := range authors {
		line := fmt.Sprintf("%s: %s <%s>", inits[i], author.Name, author.Email)
		switch i {
		case 0:
			line = authorColor(line + "  (author)")
		case 1:
			line = committerColor(line + "  (committer)")
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
