package posix

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/nihil-go/nihil/errs"
)

type TempFlag int

const (
	// TempUnlink removes the file's name as soon as it is created.
	TempUnlink TempFlag = 1 << iota
)

const (
	tempNameLen   = 12
	tempNameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tempAttempts  = 100
)

// TempFile is a file created exclusively in $TMPDIR, or /tmp. It is
// removed by Release.
type TempFile struct {
	f        *os.File
	path     string
	unlinked bool
}

func NewTempFile(flags TempFlag) (*TempFile, error) {
	dir := tmpDir()
	for range tempAttempts {
		p := filepath.Join(dir, tempName())
		f, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, errs.Wrapf(err, "cannot create temporary file in %s", dir)
		}
		t := &TempFile{f: f, path: p}
		if flags&TempUnlink != 0 {
			if err := os.Remove(p); err != nil {
				f.Close()
				return nil, errs.Wrapf(err, "cannot unlink %s", p)
			}
			t.unlinked = true
		}
		return t, nil
	}
	return nil, errs.Wrapf(fs.ErrExist, "cannot create temporary file in %s", dir)
}

func tempName() string {
	b := make([]byte, tempNameLen)
	for i := range b {
		b[i] = tempNameChars[rand.IntN(len(tempNameChars))]
	}
	return string(b)
}

// File returns the open file. It panics after Release.
func (t *TempFile) File() *os.File {
	if t.f == nil {
		panic(errs.Logicf("use of released temporary file"))
	}
	return t.f
}

// Path returns the file's name. It panics after Release and for files
// created with TempUnlink.
func (t *TempFile) Path() string {
	if t.f == nil {
		panic(errs.Logicf("use of released temporary file"))
	}
	if t.unlinked {
		panic(errs.Logicf("unlinked temporary file has no path"))
	}
	return t.path
}

// Release closes and removes the file. Releasing twice panics.
func (t *TempFile) Release() error {
	if t.f == nil {
		panic(errs.Logicf("temporary file released twice"))
	}
	err := t.f.Close()
	t.f = nil
	if !t.unlinked {
		if rerr := os.Remove(t.path); rerr != nil && err == nil {
			err = rerr
		}
	}
	return err
}
