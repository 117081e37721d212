package statement

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadCSV_Basic(t *testing.T) {
	in := "Date,Description,Amount\n01/03/2025,GITHUB,-4.00\n01/05/2025,ACME,3500.00\n"
	tbl, err := ReadCSV(strings.NewReader(in), Layout{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, tbl.Header)
	assert.Equal(t, 2, tbl.Len())

	desc, ok := tbl.Column("description")
	require.True(t, ok)
	assert.Equal(t, []string{"GITHUB", "ACME"}, desc)
}

func TestReadCSV_HeaderOffset(t *testing.T) {
	in := "Description,,Summary Amt.\n" +
		"Beginning balance as of 01/01/2025,,\"1,000.00\"\n" +
		"\n" +
		"Date,Description,Amount\n" +
		"01/03/2025,GITHUB,-4.00\n"
	tbl, err := ReadCSV(strings.NewReader(in), Layout{HeaderOffset: 3})
	require.NoError(t, err)
	assert.Equal(t, "Date", tbl.Header[0])
	assert.Equal(t, 1, tbl.Len())
}

func TestReadCSV_OffsetPastEnd(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n"), Layout{HeaderOffset: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHeader))
}

func TestReadCSV_StripsBOM(t *testing.T) {
	in := "\ufeffDate,Description,Amount\n2025-01-03,x,1\n"
	tbl, err := ReadCSV(strings.NewReader(in), Layout{})
	require.NoError(t, err)
	_, ok := tbl.Column("Date")
	assert.True(t, ok, "BOM should not leak into the first header")
}

func TestReadCSV_Windows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("Date,Description,Amount\n01/03/2025,CAFÉ NOIR,-4.00\n")
	require.NoError(t, err)

	tbl, err := ReadCSV(strings.NewReader(raw), Layout{Encoding: charmap.Windows1252})
	require.NoError(t, err)
	desc, _ := tbl.Column("Description")
	assert.Equal(t, "CAFÉ NOIR", desc[0])
}

func TestReadCSV_SkipsBlankRows(t *testing.T) {
	in := "Date,Description,Amount\n01/03/2025,A,-1\n,,\n01/04/2025,B,-2\n"
	tbl, err := ReadCSV(strings.NewReader(in), Layout{})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), Layout{})
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestRead_WrapsReadError(t *testing.T) {
	_, err := Read("statement.xls", []byte("not a workbook"), Layout{})
	require.Error(t, err)

	var rerr *ReadError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "statement.xls", rerr.Path)
}

func TestReadXLS_HeaderOffset(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "bofa_checking.xls"))
	require.NoError(t, err)

	// Row 5 of the sheet is undefined and must be skipped, not read.
	tbl, err := Read("bofa_checking.xls", data, Layout{HeaderOffset: 6})
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount", "Running Bal."}, tbl.Header)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"01/03/2025", "GITHUB *PRO SUBSCRIPTION", "-4", "2146"}, tbl.Rows[0])

	amounts, ok := tbl.Column("amount")
	require.True(t, ok)
	assert.Equal(t, []string{"-4", "-86.17", "3500"}, amounts)
}

func TestReadXLS_NoOffsetReadsBanner(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "bofa_checking.xls"))
	require.NoError(t, err)

	tbl, err := Read("bofa_checking.xls", data, Layout{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Description", "", "Summary Amt."}, tbl.Header)
	assert.Equal(t, 8, tbl.Len(), "four summary rows, the header row and three transactions")
}

func TestTable_ColumnMissing(t *testing.T) {
	tbl := NewTable([]string{"Date"}, [][]string{{"01/01/2025"}})
	_, ok := tbl.Column("Amount")
	assert.False(t, ok)
}

func TestTable_PadsShortRows(t *testing.T) {
	tbl := NewTable([]string{"Status", "Date", "Description", "Debit", "Credit"},
		[][]string{{"Cleared", "01/02/2025", "SHELL", "40.00"}})
	credit, ok := tbl.Column("Credit")
	require.True(t, ok)
	assert.Equal(t, []string{""}, credit)
}

func TestTable_Computed(t *testing.T) {
	tbl := NewTable([]string{"A"}, [][]string{{"1"}})
	assert.False(t, tbl.Computed())
}
