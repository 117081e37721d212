package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/importer"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func testBatch() *importer.Batch {
	return &importer.Batch{
		ID:          "imp_test",
		Institution: importer.GenericCSV,
		Transactions: []model.Transaction{{
			Description: "Coffee",
			Date:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("-4.50"),
			AccountName: "Checking",
		}},
		Files: []importer.FileSummary{{Name: "a.csv", Rows: 1}},
	}
}

func testWorkspace(t *testing.T) *workspace {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "import"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "a.csv"), []byte("data"), 0o644))
	return &workspace{root: dir, cfg: config.Default("Test"), log: zerolog.Nop()}
}

func TestCommitBatch_MovesInboxFiles(t *testing.T) {
	ws := testWorkspace(t)
	st, err := ws.openStore()
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, commitBatch(context.Background(), ws, st, testBatch(), true))

	_, err = os.Stat(filepath.Join(ws.root, "import", "processed", "a.csv"))
	assert.NoError(t, err)
	n, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCommitBatch_FailedSaveRestoresInbox(t *testing.T) {
	ws := testWorkspace(t)
	st, err := ws.openStore()
	require.NoError(t, err)
	defer st.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, commitBatch(ctx, ws, st, testBatch(), true))

	_, err = os.Stat(filepath.Join(ws.root, "import", "a.csv"))
	assert.NoError(t, err, "file should be back in the inbox")
	_, err = os.Stat(filepath.Join(ws.root, "import", "processed", "a.csv"))
	assert.True(t, os.IsNotExist(err))

	n, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCommitBatch_ExplicitFilesNotMoved(t *testing.T) {
	ws := testWorkspace(t)
	st, err := ws.openStore()
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, commitBatch(context.Background(), ws, st, testBatch(), false))

	_, err = os.Stat(filepath.Join(ws.root, "import", "a.csv"))
	assert.NoError(t, err)
}
