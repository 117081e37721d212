package importlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:   testTime,
		BatchID:     "imp_1b4e28ba2fa1",
		Institution: "Citibank",
		File:        "citi_card.csv",
		Rows:        3,
		Status:      StatusImported,
		Details:     "2 categorized",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testEntry(), entries[0])
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.File = "bad.csv"
	e2.Status = StatusFailed
	e2.Rows = 0
	e2.Details = `Citibank: row 2: column "Debit": cannot parse "x"`
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, StatusImported, entries[0].Status)
	assert.Equal(t, StatusFailed, entries[1].Status)
	assert.Equal(t, e2.Details, entries[1].Details)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "import-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header), "header written once")
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	row := MarshalEntry(testEntry())

	_, err := UnmarshalEntry(row[:3])
	assert.ErrorContains(t, err, "expected 7 fields")

	bad := append([]string(nil), row...)
	bad[colTimestamp] = "yesterday"
	_, err = UnmarshalEntry(bad)
	assert.ErrorContains(t, err, "parsing timestamp")

	bad = append([]string(nil), row...)
	bad[colRows] = "three"
	_, err = UnmarshalEntry(bad)
	assert.ErrorContains(t, err, "parsing rows")
}
