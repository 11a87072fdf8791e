package renderer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/isofreeze/internal/core/domain"
	"go.trai.ch/isofreeze/internal/engine/renderer"
)

func sampleRecords() []domain.PackageRecord {
	return []domain.PackageRecord{
		domain.NewPackageRecord("Zeta", "1.0.0", true, "sha256:zz"),
		domain.NewPackageRecord("urllib3", "2.2.1", false, "sha256:u3"),
		domain.NewPackageRecord("alpha", "0.2", true, "sha256:aa"),
		domain.NewPackageRecord("Certifi", "2024.2.2", false, "sha256:ce"),
		domain.NewPackageRecord("Beta", "3.1", true, "sha256:bb"),
	}
}

func TestRender_Golden(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.PackageRecord
		hashes  bool
	}{
		{name: "mixed", records: sampleRecords()},
		{name: "mixed_hashes", records: sampleRecords(), hashes: true},
		{
			name: "single_hashed",
			records: []domain.PackageRecord{
				domain.NewPackageRecord("cool_package", "2.0.1", true, "sha256:abc123"),
			},
			hashes: true,
		},
		{
			name: "top_level_only",
			records: []domain.PackageRecord{
				domain.NewPackageRecord("tomli", "2.0.1", true, ""),
				domain.NewPackageRecord("pyjokes", "0.6.0", true, ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderer.Write(&buf, renderer.Render(tt.records, tt.hashes)))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestRender_CaseInsensitiveOrder(t *testing.T) {
	records := []domain.PackageRecord{
		domain.NewPackageRecord("Zeta", "1", true, ""),
		domain.NewPackageRecord("alpha", "1", true, ""),
		domain.NewPackageRecord("Beta", "1", true, ""),
	}

	assert.Equal(t, []string{
		renderer.TopLevelHeader,
		"alpha==1",
		"Beta==1",
		"Zeta==1",
	}, renderer.Render(records, false))
}

func TestRender_SortsByNameNotVersion(t *testing.T) {
	records := []domain.PackageRecord{
		domain.NewPackageRecord("b", "0.1", false, ""),
		domain.NewPackageRecord("a", "9.9", false, ""),
	}

	got := renderer.Render(records, false)
	assert.Equal(t, []string{
		renderer.TopLevelHeader,
		renderer.TransitiveHeader,
		"a==9.9",
		"b==0.1",
	}, got)
}

func TestRender_OrderIndependent(t *testing.T) {
	records := sampleRecords()
	reversed := make([]domain.PackageRecord, len(records))
	for i, rec := range records {
		reversed[len(records)-1-i] = rec
	}

	assert.Equal(t, renderer.Render(records, true), renderer.Render(reversed, true))
	assert.Equal(t, renderer.Render(records, false), renderer.Render(reversed, false))
}

func TestRender_NoTransitiveHeaderWhenEmpty(t *testing.T) {
	records := []domain.PackageRecord{
		domain.NewPackageRecord("tomli", "2.0.1", true, "sha256:1234"),
	}

	got := renderer.Render(records, false)
	assert.NotContains(t, got, renderer.TransitiveHeader)
	assert.Equal(t, []string{renderer.TopLevelHeader, "tomli==2.0.1"}, got)
}

func TestRender_RequestedAppearsOnce(t *testing.T) {
	records := []domain.PackageRecord{
		domain.NewPackageRecord("leaf", "1.0", true, ""),
		domain.NewPackageRecord("dep", "1.0", false, ""),
	}

	got := renderer.Render(records, false)
	count := 0
	for _, l := range got {
		if l == "leaf==1.0" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, "leaf==1.0", got[1])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")

	require.NoError(t, os.WriteFile(path, []byte("stale\n"), domain.FilePerm))

	lines := renderer.Render([]domain.PackageRecord{
		domain.NewPackageRecord("cool_package", "2.0.1", true, "sha256:abc123"),
	}, true)
	require.NoError(t, renderer.WriteFile(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Top level requirements\ncool_package==2.0.1 \\\n    --hash=sha256:abc123\n", string(data))
	assert.Equal(t, renderer.Content(lines), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "requirements.txt")

	err := renderer.WriteFile(path, []string{renderer.TopLevelHeader})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrOutputWriteFailed.Error())
}
