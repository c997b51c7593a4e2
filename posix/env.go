package posix

import (
	"errors"
	"fmt"
	"os"
)

var ErrNotSet = errors.New("environment variable not set")

// Getenv returns the value of the environment variable name. A variable
// set to the empty string is set.
func Getenv(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotSet, name)
	}
	return v, nil
}

func tmpDir() string {
	if d, err := Getenv("TMPDIR"); err == nil && d != "" {
		return d
	}
	return "/tmp"
}
