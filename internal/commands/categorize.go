package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategorizeCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "categorize <description...>",
		Short: "Show the category a transaction description would get",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			svc, err := ws.categories()
			if err != nil {
				return err
			}
			index := ws.indexFor(svc)

			desc := strings.Join(args, " ")
			category, keyword, ok := index.Lookup(desc)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), index.Search(desc))
				return nil
			}
			if c, ok := svc.Get(category); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] (matched %q)\n", c.Name, c.Kind, keyword)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (matched %q)\n", category, keyword)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	return cmd
}
