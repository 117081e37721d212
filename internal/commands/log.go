package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/id"
	"github.com/pennywise-dev/pennywise/internal/importer"
	"github.com/pennywise-dev/pennywise/internal/importlog"
	"github.com/pennywise-dev/pennywise/internal/store"
)

func newLogCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "log [batch-or-ref]",
		Short: "Show import history, or the transactions stored by one import",
		Long: `With no argument, list every recorded import attempt.

Given a batch ID (imp_1b4e28ba2fa1) list the transactions that batch stored.
Given a transaction reference (imp_1b4e28ba2fa1-0007) show that one row.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return printImportLog(cmd.OutOrStdout(), ws)
			}

			st, err := ws.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			return printBatch(cmd.Context(), cmd.OutOrStdout(), st, args[0])
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	return cmd
}

func printImportLog(out io.Writer, ws *workspace) error {
	entries, err := importlog.Read(ws.root)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No imports yet.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tBATCH\tINSTITUTION\tFILE\tROWS\tSTATUS")
	for _, e := range entries {
		batch := e.BatchID
		if batch == "" {
			batch = "-"
		}
		status := string(e.Status)
		if e.Details != "" {
			status += ": " + e.Details
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.Timestamp.UTC().Format("2006-01-02 15:04"), batch, e.Institution, e.File, e.Rows, status)
	}
	return tw.Flush()
}

func printBatch(ctx context.Context, out io.Writer, st *store.Store, arg string) error {
	batchID, seq := arg, 0
	if b, s, err := id.ParseRef(arg); err == nil {
		batchID, seq = b, s
	}

	records, err := st.Batch(ctx, batchID)
	if err != nil {
		return err
	}
	if seq > 0 {
		ref := id.FormatRef(batchID, seq)
		var match []store.Record
		for _, r := range records {
			if r.Ref == ref {
				match = append(match, r)
			}
		}
		records = match
	}
	if len(records) == 0 {
		return fmt.Errorf("no stored transactions for %s", arg)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REF\tDATE\tDESCRIPTION\tAMOUNT\tACCOUNT\tCATEGORY")
	for _, r := range records {
		txn := r.Transaction()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Ref, txn.DateString(), txn.Description, importer.FormatAmount(txn.Amount), txn.AccountName, txn.Category)
	}
	return tw.Flush()
}
