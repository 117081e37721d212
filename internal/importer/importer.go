// Package importer turns institution-specific statement exports into
// canonical transactions.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pennywise-dev/pennywise/internal/categorize"
	"github.com/pennywise-dev/pennywise/internal/id"
	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/statement"
)

// Source is one raw statement file.
type Source struct {
	Name string
	Data []byte
}

// FileSummary records how many rows one source contributed.
type FileSummary struct {
	Name string
	Rows int
}

// Batch is the merged result of importing a set of files: every file's rows
// in input order, each file's rows in their original order.
type Batch struct {
	ID           string
	Institution  Institution
	Transactions []model.Transaction
	Rows         []Row
	Files        []FileSummary
}

// Importer runs statement imports. Build one per request.
type Importer struct {
	log   zerolog.Logger
	index *categorize.Index
}

// New creates an Importer. index may be nil to skip categorization.
func New(log zerolog.Logger, index *categorize.Index) *Importer {
	return &Importer{log: log, index: index}
}

// Run imports every source as bank. The first failure aborts the whole batch
// and is returned as a *FileError; no partial batch is returned.
func (im *Importer) Run(ctx context.Context, bank string, sources []Source, account string) (*Batch, error) {
	inst, err := ParseInstitution(bank)
	if err != nil {
		return nil, err
	}

	batch := &Batch{ID: id.NewBatchID(), Institution: inst}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		txns, rows, err := im.importFile(inst, src, account)
		if err != nil {
			im.log.Error().Err(err).Str("file", src.Name).Str("institution", inst.String()).Msg("import failed")
			return nil, &FileError{File: src.Name, Institution: inst.String(), Err: err}
		}

		batch.Transactions = append(batch.Transactions, txns...)
		batch.Rows = append(batch.Rows, rows...)
		batch.Files = append(batch.Files, FileSummary{Name: src.Name, Rows: len(txns)})
		im.log.Debug().Str("file", src.Name).Int("rows", len(txns)).Msg("file canonicalized")
	}

	im.log.Info().
		Str("batch", batch.ID).
		Str("institution", inst.String()).
		Int("files", len(batch.Files)).
		Int("rows", len(batch.Transactions)).
		Msg("import batch ready")
	return batch, nil
}

func (im *Importer) importFile(inst Institution, src Source, account string) ([]model.Transaction, []Row, error) {
	a := inst.Adapter()

	t, err := statement.Read(src.Name, src.Data, a.Layout())
	if err != nil {
		return nil, nil, err
	}
	if err := ComputeColumns(a, t, account); err != nil {
		return nil, nil, err
	}
	rows, err := Format(a, t, account)
	if err != nil {
		return nil, nil, err
	}

	txns := Transactions(t)
	if im.index != nil {
		im.index.Apply(txns)
		for i := range rows {
			rows[i].Category = txns[i].Category
		}
	}
	return txns, rows, nil
}

// LoadSources reads the files at paths. Unreadable files fail with a
// *statement.ReadError.
func LoadSources(paths []string) ([]Source, error) {
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, &statement.ReadError{Path: p, Err: err}
		}
		sources = append(sources, Source{Name: filepath.Base(p), Data: data})
	}
	return sources, nil
}

// FileInfo describes a statement file in the import inbox.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// importDir is the inbox subdirectory for statement files.
const importDir = "import"

// processedDir is where imported files are moved.
const processedDir = "import/processed"

var importExts = []string{".csv", ".xls"}

// Scan returns statement files in <root>/import/, sorted by name.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !hasImportExt(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// RestoreProcessed moves a file from import/processed/ back to import/.
func RestoreProcessed(root, fileName string) error {
	src := filepath.Join(root, processedDir, fileName)
	dst := filepath.Join(root, importDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("restoring %s to import: %w", fileName, err)
	}
	return nil
}

func hasImportExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range importExts {
		if ext == e {
			return true
		}
	}
	return false
}
