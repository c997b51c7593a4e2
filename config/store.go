package config

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/sys/unix"

	"github.com/nihil-go/nihil/debug"
	"github.com/nihil-go/nihil/encode"
	"github.com/nihil-go/nihil/errs"
	"github.com/nihil-go/nihil/format"
	"github.com/nihil-go/nihil/parse"
	"github.com/nihil-go/nihil/posix"
	"github.com/nihil-go/nihil/ucl"
)

// Store holds options by name.
type Store struct {
	options map[string]Option
	logger  *slog.Logger
}

type StoreOption func(*Store)

// WithLogger sets the logger used to report ignored configuration
// entries.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{options: map[string]Option{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = debug.Logger()
	}
	return s
}

func (s *Store) Register(o Option) error {
	if _, ok := s.options[o.Name()]; ok {
		return fmt.Errorf("%w: '%s'", ErrDuplicateOption, o.Name())
	}
	s.options[o.Name()] = o
	return nil
}

func (s *Store) Unregister(o Option) error {
	if cur, ok := s.options[o.Name()]; !ok || cur != o {
		return fmt.Errorf("%w: '%s'", ErrUnknownOption, o.Name())
	}
	delete(s.options, o.Name())
	return nil
}

func (s *Store) Fetch(name string) (Option, error) {
	o, ok := s.options[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownOption, name)
	}
	return o, nil
}

// All yields the options sorted by name.
func (s *Store) All() iter.Seq[Option] {
	opts := make([]Option, 0, len(s.options))
	for _, o := range s.options {
		opts = append(opts, o)
	}
	slices.SortFunc(opts, func(a, b Option) int { return cmp.Compare(a.Name(), b.Name()) })
	return slices.Values(opts)
}

// Object returns the options as a UCL object keyed by name. Options
// still at their default are left out unless all is true.
func (s *Store) Object(all bool) ucl.Object {
	m := ucl.NewObject()
	for o := range s.All() {
		if all || !o.IsDefault() {
			m.Insert(o.Name(), o.Object())
		}
	}
	return m.Object()
}

// Read sets options from the configuration file at path. A missing
// file leaves every option at its default. Entries naming no registered
// option are skipped.
func (s *Store) Read(path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		if errs.IsErrno(err, unix.ENOENT) {
			return nil
		}
		return errs.Wrapf(err, "cannot read %s", path)
	}
	obj, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if obj.Type() != ucl.ObjectType {
		return fmt.Errorf("%s: expected object, not %s", path, obj.Type())
	}
	for k, v := range obj.Entries() {
		o, err := s.Fetch(k)
		if err != nil {
			s.logger.Debug("ignoring configuration entry", "path", path, "key", k)
			continue
		}
		if err := o.SetObject(v); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if debug.Config() {
			debug.Logf("config %s = %s\n", k, o)
		}
	}
	return nil
}

// Write saves the non-default options to path in configuration format,
// replacing the file atomically.
func (s *Store) Write(path string) error {
	text := encode.MustString(s.Object(false), encode.EncodeFormat(format.ConfigFormat))
	return posix.SafeWriteFile(path, []byte(text))
}
