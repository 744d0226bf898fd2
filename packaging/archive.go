package packaging

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
)

// BuildArchive writes every regular file under srcDir into a new zip at
// zipPath, named by its slash-separated path relative to srcDir. Directories
// get no entries of their own. Files that cannot be opened are skipped.
func BuildArchive(zipPath, srcDir string) (err error) {
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing archive: %w", cerr)
		}
	}()

	zw := zip.NewWriter(f)
	defer func() {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("finalizing archive: %w", cerr)
		}
	}()

	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == srcDir {
				return walkErr
			}
			logrus.Debugf("archive: skipping %s: %v", path, walkErr)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		return addFile(zw, path, filepath.ToSlash(rel))
	})
}

func addFile(zw *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		logrus.Debugf("archive: skipping unreadable %s: %v", path, err)
		return nil
	}
	defer src.Close()

	hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
	if info, err := src.Stat(); err == nil {
		hdr.Modified = info.ModTime()
	}
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
