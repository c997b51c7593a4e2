package posix

import (
	"os"
	"path/filepath"

	"github.com/nihil-go/nihil/errs"
)

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errs.Wrapf(err, "cannot create %s", path)
	}
	return nil
}

func RenameFile(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return errs.Wrapf(err, "cannot rename %s to %s", from, to)
	}
	return nil
}

// SafeWriteFile replaces the contents of path with data. The data is
// written and synced to a temporary file in the same directory which is
// then renamed over path, so readers see either the old or the new
// contents.
func SafeWriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errs.Wrapf(err, "cannot write %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if _, err = f.Write(data); err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errs.Wrapf(err, "cannot write %s", tmp)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return errs.Wrapf(err, "cannot write %s", tmp)
	}
	return RenameFile(tmp, path)
}
