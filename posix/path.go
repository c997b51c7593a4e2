package posix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

const defaultPath = "/usr/bin:/bin"

var ErrNotFound = errors.New("executable not found in path")

// FindInPath returns the first executable named file in the
// directories of $PATH. A name containing a slash is checked as is. An
// unset $PATH means /usr/bin:/bin and an empty element means the
// current directory.
func FindInPath(file string) (string, bool) {
	if file == "" {
		return "", false
	}
	if strings.Contains(file, "/") {
		return file, executable(file)
	}
	path, err := Getenv("PATH")
	if err != nil {
		path = defaultPath
	}
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			dir = "."
		}
		p := filepath.Join(dir, file)
		if dir == "." {
			p = "./" + file
		}
		if executable(p) {
			return p, true
		}
	}
	return "", false
}

func executable(p string) bool {
	st, err := os.Stat(p)
	if err != nil || st.IsDir() {
		return false
	}
	return unix.Access(p, unix.X_OK) == nil
}

// OpenInPath opens the executable FindInPath finds for file.
func OpenInPath(file string) (*os.File, error) {
	p, ok := FindInPath(file)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, file)
	}
	return os.Open(p)
}
