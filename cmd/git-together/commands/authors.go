// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bartekus/git-together/internal/team"
	"github.com/bartekus/git-together/internal/together"
)

// NewAuthorsCommand returns the `git-together authors` command tree.
func NewAuthorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Manage the configured authors",
		Long:  "List, add, and bulk import/export the author records the active roster draws from.",
		RunE:  runAuthorsList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all configured authors",
		Args:  cobra.NoArgs,
		RunE:  runAuthorsList,
	})
	cmd.AddCommand(newAuthorsAddCommand())
	cmd.AddCommand(newAuthorsImportCommand())
	cmd.AddCommand(newAuthorsExportCommand())

	return cmd
}

// runAuthorsList prints every known author, active ones marked with their
// roster position.
func runAuthorsList(cmd *cobra.Command, args []string) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}

	records, err := d.store.All(together.AuthorsPrefix)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no authors configured")
		return nil
	}

	domain, err := d.store.Get(together.KeyDomain)
	if err != nil {
		return err
	}

	// Active roster is optional here; without one nothing gets marked.
	position := make(map[string]int)
	if active, err := d.engine.GetActive(); err == nil {
		for i, init := range active {
			position[init] = i
		}
	}

	initials := make([]string, 0, len(records))
	for key := range records {
		initials = append(initials, strings.TrimPrefix(key, together.AuthorsPrefix))
	}
	sort.Strings(initials)

	for _, init := range initials {
		author, err := together.ParseAuthor(domain, records[together.AuthorsPrefix+init])
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s: %s <%s>", init, author.Name, author.Email)
		if i, ok := position[init]; ok {
			switch i {
			case 0:
				line = authorColor(line + "  (author)")
			case 1:
				line = committerColor(line + "  (committer)")
			default:
				line += "  (active)"
			}
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func newAuthorsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `add <initials> "<name>; <email-or-local>"`,
		Short: "Add or replace one author record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(cmd)
			if err != nil {
				return err
			}
			init, raw := args[0], args[1]

			domain, err := d.store.Get(together.KeyDomain)
			if err != nil {
				return err
			}
			author, err := together.ParseAuthor(domain, raw)
			if err != nil {
				return err
			}
			if err := d.store.Set(together.AuthorsPrefix+init, raw); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s <%s>\n", init, author.Name, author.Email)
			return nil
		},
	}
}

func newAuthorsImportCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a YAML team roster into git config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(cmd)
			if err != nil {
				return err
			}
			roster, err := team.Load(afero.NewOsFs(), file)
			if err != nil {
				return err
			}
			if err := team.Import(d.store, roster); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d authors (domain %s)\n",
				len(roster.Authors), roster.Domain)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "roster file to import")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newAuthorsExportCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configured authors as a YAML roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := setup(cmd)
			if err != nil {
				return err
			}
			roster, err := team.Export(d.store)
			if err != nil {
				return err
			}
			out, err := roster.Marshal()
			if err != nil {
				return err
			}

			if file == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(file, out, 0o644)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "write the roster to a file instead of stdout")

	return cmd
}
