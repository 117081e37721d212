package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/categorize"
)

func newCategoriesCommand() *cobra.Command {
	var repoDir string
	var archetypes bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List workspace categories and their keyword archetypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := categorize.DefaultRegistry()
			if archetypes {
				return printArchetypes(cmd.OutOrStdout(), reg)
			}

			ws, err := openWorkspace(repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			svc, err := ws.categories()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tENABLED\tARCHETYPE\tKEYWORDS")
			for _, c := range svc.All() {
				archetype, keywords := "-", 0
				if a, ok := reg.Resolve(c.Name); ok {
					archetype, keywords = a.Name, len(a.Keywords())
				}
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%d\n", c.Name, c.Kind, c.Enabled, archetype, keywords)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&archetypes, "archetypes", false, "list the built-in archetypes category names resolve to")
	return cmd
}

func printArchetypes(out io.Writer, reg *categorize.Registry) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ARCHETYPE\tALIASES\tKEYWORDS")
	for _, a := range reg.List() {
		aliases := "-"
		if len(a.Aliases) > 0 {
			aliases = strings.Join(a.Aliases, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", a.Name, aliases, len(a.Keywords()))
	}
	return tw.Flush()
}
