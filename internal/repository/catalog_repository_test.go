package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogRepository_LoadsCSVInOrder(t *testing.T) {
	path := writeCatalog(t, `id,title,category,description,capacity,accuracy,standards,power,display,control,price_hint
B-2,Second Machine,UTM,desc two,50 kN,±0.5%,ASTM E8|ISO 6892,220V AC,Digital,Closed-loop,Request a quote
A-1,First Machine,Hardness Testing,desc one,HRC,±1 HRC,ASTM E18,Battery,Digital,Manual,Request a quote
`)

	repo := NewCatalogRepository(path, zap.NewNop())

	require.Equal(t, 2, repo.Count())
	all := repo.All()
	assert.Equal(t, "B-2", all[0].ID, "file order is catalog order")
	assert.Equal(t, "A-1", all[1].ID)
	assert.Equal(t, []string{"ASTM E8", "ISO 6892"}, all[0].Standards())
}

func TestCatalogRepository_MissingColumnsAreAbsentFields(t *testing.T) {
	path := writeCatalog(t, `id,title,category
X-1,Minimal Machine,Misc
`)

	repo := NewCatalogRepository(path, zap.NewNop())

	p, ok := repo.FindByID("X-1")
	require.True(t, ok)
	assert.Empty(t, p.Capacity)
	assert.Empty(t, p.RawStandards)
	assert.Nil(t, p.Standards())
}

func TestCatalogRepository_RowsWithoutIDSkipped(t *testing.T) {
	path := writeCatalog(t, `id,title,category
X-1,Kept,Misc
,Dropped,Misc
`)

	repo := NewCatalogRepository(path, zap.NewNop())
	assert.Equal(t, 1, repo.Count())
}

func TestCatalogRepository_FallsBackToSamples(t *testing.T) {
	repo := NewCatalogRepository("no/such/file.csv", zap.NewNop())

	assert.Equal(t, 4, repo.Count())
	p, ok := repo.FindByID("HTUS-PR-HT-001")
	require.True(t, ok)
	assert.Equal(t, "Portable Hardness Tester", p.Title)
}

func TestCatalogRepository_FindByID(t *testing.T) {
	repo := NewCatalogRepository("no/such/file.csv", zap.NewNop())

	_, ok := repo.FindByID("NOPE")
	assert.False(t, ok)

	p, ok := repo.FindByID("HTUS-UTM-050")
	require.True(t, ok)
	assert.Equal(t, "UTM", p.Category)
}
