package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/gitops"
	"github.com/pennywise-dev/pennywise/internal/importer"
	"github.com/pennywise-dev/pennywise/internal/importlog"
	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/logger"
	"github.com/pennywise-dev/pennywise/internal/store"
)

type importOptions struct {
	repoDir string
	bank    string
	account string
	dryRun  bool
}

func newImportCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import statement files into the ledger",
		Long: `Import statement files exported by one institution.

With no files, every .csv and .xls file in the workspace's import/ directory
is imported and moved to import/processed/ on success. If any file fails,
nothing from the batch is stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts.repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ctx := logger.WithContext(cmd.Context(), ws.log)
			return runImport(ctx, cmd.OutOrStdout(), ws, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&opts.bank, "bank", "", "institution that produced the files (default from config)")
	cmd.Flags().StringVar(&opts.account, "account", "", "account label for imported rows")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print formatted rows without storing them")

	return cmd
}

func runImport(ctx context.Context, out io.Writer, ws *workspace, opts importOptions, paths []string) error {
	log := logger.FromContext(ctx)

	bank := opts.bank
	if bank == "" {
		bank = ws.cfg.Import.DefaultBank
	}
	inst, err := importer.ParseInstitution(bank)
	if err != nil {
		return err
	}
	account := opts.account
	if account == "" {
		account = ws.cfg.AccountFor(inst)
	}

	fromInbox := len(paths) == 0
	if fromInbox {
		files, err := importer.Scan(ws.root)
		if err != nil {
			return err
		}
		for _, f := range files {
			paths = append(paths, f.Path)
		}
	}
	if len(paths) == 0 {
		fmt.Fprintln(out, "No statement files to import.")
		return nil
	}

	sources, err := importer.LoadSources(paths)
	if err != nil {
		return err
	}

	index, err := ws.index()
	if err != nil {
		return err
	}

	batch, err := importer.New(log, index).Run(ctx, bank, sources, account)
	if err != nil {
		if !opts.dryRun {
			recordFailure(ws, bank, err, log)
		}
		return err
	}

	if err := ledger.Join(ledger.Validate(batch.Transactions)); err != nil {
		return err
	}

	if opts.dryRun {
		return ledger.WriteDisplay(out, batch.Rows)
	}

	st, err := ws.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := commitBatch(ctx, ws, st, batch, fromInbox); err != nil {
		return err
	}

	// Rows are stored; failures below are warnings only.
	now := time.Now().UTC()
	entries := make([]importlog.Entry, len(batch.Files))
	for i, f := range batch.Files {
		entries[i] = importlog.Entry{
			Timestamp:   now,
			BatchID:     batch.ID,
			Institution: batch.Institution.String(),
			File:        f.Name,
			Rows:        f.Rows,
			Status:      importlog.StatusImported,
		}
	}
	if err := importlog.Append(ws.root, entries); err != nil {
		log.Warn().Err(err).Str("batch", batch.ID).Msg("writing import log")
		fmt.Fprintf(out, "warning: batch %s stored but not logged: %v\n", batch.ID, err)
	}

	if ws.cfg.Git.AutoCommit && gitops.IsRepo(ws.root) {
		author := gitops.Author{Name: ws.cfg.Git.AuthorName, Email: ws.cfg.Git.AuthorEmail}
		msg := fmt.Sprintf("import: %s, %d transactions from %d files", batch.ID, len(batch.Transactions), len(batch.Files))
		hash, err := gitops.CommitAll(ctx, ws.root, msg, author)
		switch {
		case errors.Is(err, gitops.ErrNothingToCommit):
		case err != nil:
			log.Warn().Err(err).Str("batch", batch.ID).Msg("committing import")
			fmt.Fprintf(out, "warning: batch %s stored but not committed: %v\n", batch.ID, err)
		default:
			log.Debug().Str("commit", hash).Msg("import committed")
		}
	}

	categorized := 0
	spent, received := decimal.Zero, decimal.Zero
	for _, txn := range batch.Transactions {
		if txn.Category != "" {
			categorized++
		}
		if txn.IsExpense() {
			spent = spent.Add(txn.Amount.Neg())
		} else {
			received = received.Add(txn.Amount)
		}
	}
	fmt.Fprintf(out, "Imported %d transactions from %d files as %s (batch %s, %d categorized)\n",
		len(batch.Transactions), len(batch.Files), batch.Institution, batch.ID, categorized)
	total, err := st.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("counting stored transactions")
		return nil
	}
	fmt.Fprintf(out, "Spent %s, received %s; ledger holds %d transactions\n",
		importer.FormatAmount(spent), importer.FormatAmount(received), total)
	return nil
}

// commitBatch moves inbox files to processed/ and stores the batch. If the
// store rejects the batch the files are moved back so the inbox is retried
// as a whole.
func commitBatch(ctx context.Context, ws *workspace, st *store.Store, batch *importer.Batch, fromInbox bool) error {
	log := logger.FromContext(ctx)

	var moved []string
	restore := func() {
		for _, name := range moved {
			if err := importer.RestoreProcessed(ws.root, name); err != nil {
				log.Error().Err(err).Str("file", name).Msg("restoring inbox file")
			}
		}
	}

	if fromInbox {
		for _, f := range batch.Files {
			if err := importer.MarkProcessed(ws.root, f.Name); err != nil {
				restore()
				return err
			}
			moved = append(moved, f.Name)
		}
	}

	if err := st.SaveBatch(ctx, batch.ID, batch.Transactions); err != nil {
		restore()
		return err
	}
	return nil
}

// recordFailure logs an aborted batch to the import log. Errors writing the
// log are reported but do not mask the import error.
func recordFailure(ws *workspace, bank string, importErr error, log zerolog.Logger) {
	entry := importlog.Entry{
		Timestamp:   time.Now().UTC(),
		Institution: bank,
		Status:      importlog.StatusFailed,
		Details:     importErr.Error(),
	}
	var fe *importer.FileError
	if errors.As(importErr, &fe) {
		entry.File = fe.File
		entry.Institution = fe.Institution
	}
	if err := importlog.Append(ws.root, []importlog.Entry{entry}); err != nil {
		log.Warn().Err(err).Msg("writing import log")
	}
}
