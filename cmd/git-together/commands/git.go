// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bartekus/git-together/cmd/git-together/internal/clierr"
	"github.com/bartekus/git-together/internal/together"
)

// newGitCommand wraps one git subcommand: the active pair is stamped onto
// the invocation, all remaining arguments pass straight through to git, and
// a successful run rotates the roster so the next commit credits the next
// pair.
func newGitCommand(sub, short string) *cobra.Command {
	return &cobra.Command{
		Use:                sub + " [git arguments...]",
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(cmd)
			if err != nil {
				return err
			}

			git := exec.Command("git", append([]string{sub}, args...)...)
			git.Stdin = os.Stdin
			git.Stdout = cmd.OutOrStdout()
			git.Stderr = cmd.ErrOrStderr()

			if err := d.engine.Signoff(together.WrapCmd(git)); err != nil {
				return err
			}

			if err := git.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return clierr.Wrap(exitErr.ExitCode(), "git "+sub, err)
				}
				return fmt.Errorf("running git %s: %w", sub, err)
			}

			if d.opts.NoAutoRotate {
				return nil
			}
			return d.engine.RotateActive()
		},
	}
}
