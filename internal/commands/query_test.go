package commands_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runPennywise(t, "categorize", "--repo", dir, "WHOLE", "FOODS", "MARKET", "#10233")
	require.NoError(t, err)
	assert.Equal(t, "Groceries [expense] (matched \"whole foods\")\n", out)

	out, err = runPennywise(t, "categorize", "--repo", dir, "PAYROLL", "ACME")
	require.NoError(t, err)
	assert.Equal(t, "Income [income] (matched \"payroll\")\n", out)

	out, err = runPennywise(t, "categorize", "--repo", dir, "Farmers market")
	require.NoError(t, err)
	assert.Equal(t, "uncategorized\n", out)
}

func TestCategories(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runPennywise(t, "categories", "--repo", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15, "header plus 14 default categories")
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "Groceries"))
}

func TestCategories_Archetypes(t *testing.T) {
	out, err := runPennywise(t, "categories", "--archetypes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 16, "header plus 15 built-in archetypes")
	assert.True(t, strings.HasPrefix(lines[0], "ARCHETYPE"))
	assert.Regexp(t, `^Groceries\s+Grocery, Food & Groceries\s+13$`, lines[1])
	assert.Regexp(t, `^Insurance\s+-\s+5$`, lines[12])
}

func TestExport(t *testing.T) {
	dir := initWorkspace(t)
	dropInInbox(t, dir, "jan.csv", fixture(t, "generic.csv"))
	_, err := runPennywise(t, "import", "--repo", dir, "--account", "Checking")
	require.NoError(t, err)

	out, err := runPennywise(t, "export", "--repo", dir)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"date,description,amount,account_name,category",
		"2025-01-05,Farmers Market,-18.00,Checking,",
		"2025-01-12,Payroll Acme Corp,2100.00,Checking,Income",
		"2025-01-19,Spotify Premium,-10.99,Checking,Subscriptions",
	}, "\n")+"\n", out)
}

func TestExport_DisplayToFile(t *testing.T) {
	dir := initWorkspace(t)
	dropInInbox(t, dir, "jan.csv", fixture(t, "generic.csv"))
	_, err := runPennywise(t, "import", "--repo", dir, "--account", "Checking")
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "ledger.csv")
	_, err = runPennywise(t, "export", "--repo", dir, "--display", "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-01-19,Spotify Premium,-$10.99,Checking,Subscriptions")
}

var batchPattern = regexp.MustCompile(`batch (imp_[0-9a-f]{12})`)

func importGeneric(t *testing.T, dir string) string {
	t.Helper()
	dropInInbox(t, dir, "jan.csv", fixture(t, "generic.csv"))
	out, err := runPennywise(t, "import", "--repo", dir, "--account", "Checking")
	require.NoError(t, err)
	m := batchPattern.FindStringSubmatch(out)
	require.NotNil(t, m, out)
	return m[1]
}

func TestLog_Empty(t *testing.T) {
	dir := initWorkspace(t)
	out, err := runPennywise(t, "log", "--repo", dir)
	require.NoError(t, err)
	assert.Equal(t, "No imports yet.\n", out)
}

func TestLog_History(t *testing.T) {
	dir := initWorkspace(t)
	batch := importGeneric(t, dir)
	dropInInbox(t, dir, "broken.csv", []byte("date,description,amount\n2025-01-02,Coffee,abc\n"))
	_, err := runPennywise(t, "import", "--repo", dir)
	require.Error(t, err)

	out, err := runPennywise(t, "log", "--repo", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TIME"))
	assert.Regexp(t, batch+`\s+Generic CSV\s+jan.csv\s+3\s+imported$`, lines[1])
	assert.Regexp(t, `-\s+Generic CSV\s+broken.csv\s+0\s+failed: `, lines[2])
}

func TestLog_Batch(t *testing.T) {
	dir := initWorkspace(t)
	batch := importGeneric(t, dir)

	out, err := runPennywise(t, "log", "--repo", dir, batch)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "REF"))
	assert.Regexp(t, `^`+batch+`-0001\s+2025-01-05\s+Farmers Market\s+-\$18.00\s+Checking`, lines[1])
	assert.Regexp(t, `^`+batch+`-0003\s+2025-01-19\s+Spotify Premium`, lines[3])
}

func TestLog_Ref(t *testing.T) {
	dir := initWorkspace(t)
	batch := importGeneric(t, dir)

	out, err := runPennywise(t, "log", "--repo", dir, batch+"-2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^`+batch+`-0002\s+2025-01-12\s+Payroll Acme Corp\s+\$2,100.00\s+Checking\s+Income$`, lines[1])
}

func TestLog_UnknownBatch(t *testing.T) {
	dir := initWorkspace(t)
	importGeneric(t, dir)

	_, err := runPennywise(t, "log", "--repo", dir, "imp_000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no stored transactions for imp_000000000000")

	_, err = runPennywise(t, "log", "--repo", dir, "imp_000000000000-0001")
	require.Error(t, err)
}

func TestExport_ReimportIsIdempotent(t *testing.T) {
	dir := initWorkspace(t)
	importGeneric(t, dir)
	first, err := runPennywise(t, "export", "--repo", dir)
	require.NoError(t, err)

	other := initWorkspace(t)
	dropInInbox(t, other, "ledger.csv", []byte(first))
	_, err = runPennywise(t, "import", "--repo", other, "--account", "Checking")
	require.NoError(t, err)

	second, err := runPennywise(t, "export", "--repo", other)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
