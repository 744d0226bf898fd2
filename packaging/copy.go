package packaging

import (
	"errors"
	"io/fs"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// ErrWorldLocked marks a copy failure caused by another process holding a
// file open, typically the game still running the world.
var ErrWorldLocked = errors.New("world is open in another process")

var copyOptions = cp.Options{
	PreserveTimes: true,
	OnSymlink:     func(string) cp.SymlinkAction { return cp.Deep },
}

// copyInto copies src (file or directory) to destDir/<base name of src>.
func copyInto(src, destDir string) error {
	err := cp.Copy(src, filepath.Join(destDir, filepath.Base(src)), copyOptions)
	if err != nil && isLockError(err) {
		return errors.Join(ErrWorldLocked, err)
	}
	return err
}

func isLockError(err error) bool {
	return errors.Is(err, fs.ErrPermission) || isPlatformLockError(err)
}
