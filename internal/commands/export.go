package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/ledger"
)

func newExportCommand() *cobra.Command {
	var repoDir, outPath string
	var display bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write stored transactions as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			st, err := ws.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			txns, err := st.Transactions(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			if display {
				return ledger.WriteDisplay(w, ledger.DisplayRows(txns))
			}
			return ledger.WriteTransactions(w, txns)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&display, "display", false, "format amounts as currency")
	return cmd
}
