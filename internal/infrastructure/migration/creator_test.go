package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"create procurement tables", "create_procurement_tables"},
		{"Add-Vendor-Status", "add_vendor_status"},
		{"ADD_EXCHANGE_RATES", "add_exchange_rates"},
		{"add__po__index", "add_po_index"},
		{"Seed UOMs 2025", "seed_uoms_2025"},
		{"  padded  ", "padded"},
		{"drop!@#legacy", "droplegacy"},
		{"trailing_", "trailing"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.input))
		})
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()

	p, err := Create(dir, "add vendor rating", "Vendor rating column on vendors")
	require.NoError(t, err)

	assert.Len(t, p.Version, 14)
	assert.Equal(t, "add_vendor_rating", p.Name)
	assert.Equal(t, p.Version+"_add_vendor_rating.up.sql", filepath.Base(p.UpPath))
	assert.Equal(t, p.Version+"_add_vendor_rating.down.sql", filepath.Base(p.DownPath))

	up, err := os.ReadFile(p.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: add_vendor_rating\n")
	assert.Contains(t, string(up), "-- Description: Vendor rating column on vendors\n")

	down, err := os.ReadFile(p.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "-- Migration: add_vendor_rating (Rollback)\n")
	assert.Contains(t, string(down), "-- Description: Rollback for Vendor rating column on vendors\n")
}

func TestCreate_RejectsEmptySlug(t *testing.T) {
	_, err := Create(t.TempDir(), "!!!", "nothing usable")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable characters")
}

func TestCreate_MakesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	p, err := Create(dir, "create sites", "")
	require.NoError(t, err)

	_, err = os.Stat(p.UpPath)
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"create sites", "create vendors"} {
		_, err := Create(dir, name, "")
		require.NoError(t, err)
	}
	// A stray down file without a matching up file is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "99_orphan.down.sql"), nil, 0o644))

	names, err := List(dir)
	require.NoError(t, err)
	require.Len(t, names, 2)
	for _, n := range names {
		assert.True(t, strings.Contains(n, "create_sites") || strings.Contains(n, "create_vendors"))
	}
}

func TestList_MissingDirectory(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, names)
}
