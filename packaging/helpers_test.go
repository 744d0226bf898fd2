package packaging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

// makeWorld creates saves/<name>/level.dat and stamps the directory with
// baseTime plus the given number of minutes.
func makeWorld(t *testing.T, savesDir, name string, minutes int) string {
	t.Helper()
	dir := filepath.Join(savesDir, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "region"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.dat"), []byte("level:"+name), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "region", "r.0.0.mca"), []byte("region:"+name), 0o644))
	stamp(t, dir, minutes)
	return dir
}

func makeFile(t *testing.T, dir, name, content string, minutes int) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	stamp(t, path, minutes)
	return path
}

func stamp(t *testing.T, path string, minutes int) {
	t.Helper()
	ts := baseTime.Add(time.Duration(minutes) * time.Minute)
	require.NoError(t, os.Chtimes(path, ts, ts))
}

type fakePointer struct {
	path string
	ok   bool
	err  error
}

func (f fakePointer) LatestWorld() (string, bool, error) { return f.path, f.ok, f.err }

func names(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
