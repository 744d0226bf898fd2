package modinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJar(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestReadFolder(t *testing.T) {
	dir := t.TempDir()
	writeJar(t, filepath.Join(dir, "a-seedqueue.jar"), map[string]string{
		"fabric.mod.json": `{"schemaVersion": 1, "id": "seedqueue", "version": "1.3+1.16.1"}`,
	})
	writeJar(t, filepath.Join(dir, "b-srigt.JAR"), map[string]string{
		"fabric.mod.json": `{"id": "speedrunigt", "version": "14.2+1.16.1"}`,
		"assets/icon.png": "png",
	})
	writeJar(t, filepath.Join(dir, "c-nomanifest.jar"), map[string]string{"x.class": "cafebabe"})
	writeJar(t, filepath.Join(dir, "d-badjson.jar"), map[string]string{"fabric.mod.json": "{"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "e-corrupt.jar"), []byte("not a zip"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.jar"), 0o755))

	got, err := ReadFolder(dir)
	require.NoError(t, err)
	assert.Equal(t, []Descriptor{
		{ID: "seedqueue", Version: "1.3+1.16.1"},
		{ID: "speedrunigt", Version: "14.2+1.16.1"},
	}, got)
}

func TestReadFolder_Missing(t *testing.T) {
	got, err := ReadFolder(filepath.Join(t.TempDir(), "mods"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"14.0", true},
		{"14.0+1.16.1", true},
		{"14.2.1+1.16.1", true},
		{"15", true},
		{"13.9", false},
		{"13.9+14.0", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, AtLeast(tt.version, "14.0"))
		})
	}
}

func TestHasAtLeast(t *testing.T) {
	mods := []Descriptor{{ID: "speedrunigt", Version: "13.0"}, {ID: "other", Version: "20.0"}}
	assert.True(t, Has(mods, "other"))
	assert.False(t, Has(mods, "seedqueue"))
	assert.False(t, HasAtLeast(mods, "speedrunigt", "14.0"))
	assert.True(t, HasAtLeast(mods, "other", "14.0"))
}
