// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	authorColor    = color.New(color.FgGreen).SprintFunc()
	committerColor = color.New(color.FgCyan).SprintFunc()
)

// NewWithCommand returns the `git-together with` command.
func NewWithCommand() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "with [initials...]",
		Short: "Show or set the active authors",
		Long:  "Without arguments, shows who is currently at the keyboard. With initials, sets the active roster in that order: first is the commit author, second the committer. Every initial must resolve to a configured author before anything is stored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(cmd)
			if err != nil {
				return err
			}

			if clear {
				if len(args) > 0 {
					return fmt.Errorf("--clear takes no initials")
				}
				if err := d.engine.ClearActive(); err != nil {
					return err
				}
				return printActive(cmd, d)
			}

			if len(args) > 0 {
				if err := d.engine.SetActive(args); err != nil {
					return err
				}
			}
			return printActive(cmd, d)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "clear the active authors")

	return cmd
}

// NewRotateCommand returns the `git-together rotate` command.
func NewRotateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Rotate the active authors by one position",
		Long:  "Moves the current author to the end of the roster so the committer takes the keyboard. Wrapped commit commands rotate automatically; this forces a rotation by hand.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(cmd)
			if err != nil {
				return err
			}
			if err := d.engine.RotateActive(); err != nil {
				return err
			}
			return printActive(cmd, d)
		},
	}
}
