package commands

import (
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pennywise",
		Short:   "Import bank statements into one canonical ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(),
		newCategorizeCommand(),
		newCategoriesCommand(),
		newExportCommand(),
		newLogCommand(),
	)

	return rootCmd
}
