package persist_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripolys/tripolys/persist"
	"github.com/tripolys/tripolys/triad"
)

func TestWriteReadCoreTriadsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t1, err := triad.Parse("01", "00", "10")
	require.NoError(t, err)
	t2, err := triad.Parse("011", "011", "101")
	require.NoError(t, err)

	require.NoError(t, persist.WriteCoreTriads(dir, 5, []*triad.Triad{t1, t2}))

	got, err := persist.ReadCoreTriads(dir, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, t1.Arms, got[0].Arms)
	assert.Equal(t, t2.Arms, got[1].Arms)
}

func TestReadCoreTriadsMissingFileIsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	got, err := persist.ReadCoreTriads(dir, 99)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppendPolyResultAndRead(t *testing.T) {
	dir := t.TempDir()
	tr, err := triad.Parse("0", "0", "0")
	require.NoError(t, err)

	require.NoError(t, persist.AppendPolyResult(dir, "majority", 3, tr, true))
	require.NoError(t, persist.AppendPolyResult(dir, "majority", 3, tr, true))

	results, err := persist.ReadPolyResults(dir, "majority", 3)
	require.NoError(t, err)
	assert.Equal(t, true, results["0,0,0"])
}

func TestMigrateLegacyIsAdditiveNotDestructive(t *testing.T) {
	dir := t.TempDir()
	legacyPath := dir + "/old_dump.txt"
	require.NoError(t, os.WriteFile(legacyPath, []byte("01,00,10\n011,011,101\n"), 0o644))

	require.NoError(t, persist.MigrateLegacy(dir))

	// Legacy file untouched.
	contents, err := os.ReadFile(legacyPath)
	require.NoError(t, err)
	assert.Equal(t, "01,00,10\n011,011,101\n", string(contents))

	got6, err := persist.ReadCoreTriads(dir, 6)
	require.NoError(t, err)
	assert.Len(t, got6, 1)

	got9, err := persist.ReadCoreTriads(dir, 9)
	require.NoError(t, err)
	assert.Len(t, got9, 1)
}
