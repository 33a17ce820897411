package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/aanand-mishra/schools-directory/internal/page"

	"github.com/spf13/cobra"
)

func newBrowseCmd(c *cli) *cobra.Command {
	var (
		search      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List the schools in the directory",
		Long: `Fetch every school once and list those matching --search
(by name, city or state, ignoring case).

With --interactive, each line read from stdin replaces the search term
and the list is filtered again without fetching it again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			p := page.NewShowSchools(c.client)
			p.Activate(cmd.Context())
			p.SetSearch(search)
			renderShowSchools(out, p)

			if interactive {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for {
					fmt.Fprint(out, "search> ")
					if !scanner.Scan() {
						fmt.Fprintln(out)
						break
					}
					p.SetSearch(strings.TrimRight(scanner.Text(), "\r"))
					renderShowSchools(out, p)
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read search term: %w", err)
				}
			}

			if p.Error != "" {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show schools whose name, city or state contains this text")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read search terms from stdin, one per line")

	return cmd
}
