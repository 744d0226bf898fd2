package packaging

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyInto_DirectoryKeepsName(t *testing.T) {
	saves := t.TempDir()
	world := makeWorld(t, saves, "Speedrun #7", 0)
	dest := t.TempDir()

	require.NoError(t, copyInto(world, dest))

	b, err := os.ReadFile(filepath.Join(dest, "Speedrun #7", "region", "r.0.0.mca"))
	require.NoError(t, err)
	assert.Equal(t, "region:Speedrun #7", string(b))
}

func TestCopyInto_File(t *testing.T) {
	log := makeFile(t, t.TempDir(), "latest.log", "hello", 0)
	dest := t.TempDir()

	require.NoError(t, copyInto(log, dest))

	b, err := os.ReadFile(filepath.Join(dest, "latest.log"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestIsLockError(t *testing.T) {
	denied := &fs.PathError{Op: "open", Path: "session.lock", Err: fs.ErrPermission}
	assert.True(t, isLockError(denied))
	assert.True(t, isLockError(fmt.Errorf("copy: %w", denied)))
	assert.False(t, isLockError(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}))
}
