// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands builds the git-together command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the git-together root command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("GIT_TOGETHER_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "git-together",
		Short:         "Commit attribution for pair and mob programming",
		Long:          "git-together keeps an ordered roster of active authors in git config and stamps author/committer identity onto commits, rotating the roster so everyone takes a turn at the keyboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of git-together",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "git-together version %s\n", version)
		},
	})

	cmd.AddCommand(NewWithCommand())
	cmd.AddCommand(NewRotateCommand())
	cmd.AddCommand(NewAuthorsCommand())
	cmd.AddCommand(newGitCommand("commit", "Run git commit with pair attribution"))
	cmd.AddCommand(newGitCommand("merge", "Run git merge with pair attribution"))
	cmd.AddCommand(newGitCommand("revert", "Run git revert with pair attribution"))

	return cmd
}
