package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nihil-go/nihil/token"
	"github.com/nihil-go/nihil/ucl"
)

// Option is a named configuration value.
type Option interface {
	Name() string
	Description() string
	Type() ucl.Type
	// IsDefault reports whether the option has never been set.
	IsDefault() bool
	String() string
	SetString(string) error
	Object() ucl.Object
	SetObject(ucl.Object) error
	// Close removes the option from its store.
	Close() error
}

type option struct {
	store     *Store
	name      string
	desc      string
	isDefault bool
}

func (o *option) Name() string        { return o.name }
func (o *option) Description() string { return o.desc }
func (o *option) IsDefault() bool     { return o.isDefault }

func (o *option) fail(err error) error {
	return &OptionError{Name: o.name, Err: err}
}

func register[T Option](s *Store, o T) (T, error) {
	if err := s.Register(o); err != nil {
		var zero T
		return zero, err
	}
	return o, nil
}

type StringOption struct {
	option
	p *string
}

// NewString registers an option with s which stores its value in *p.
// The value of *p at this point is the default.
func NewString(s *Store, p *string, name, desc string) (*StringOption, error) {
	return register(s, &StringOption{option: option{store: s, name: name, desc: desc, isDefault: true}, p: p})
}

func (o *StringOption) Type() ucl.Type     { return ucl.StringType }
func (o *StringOption) String() string     { return *o.p }
func (o *StringOption) Object() ucl.Object { return ucl.NewString(*o.p).Object() }
func (o *StringOption) Close() error       { return o.store.Unregister(o) }

func (o *StringOption) SetString(v string) error {
	*o.p = v
	o.isDefault = false
	return nil
}

func (o *StringOption) SetObject(obj ucl.Object) error {
	s, err := ucl.Cast[ucl.String](obj)
	if err != nil {
		return o.fail(err)
	}
	return o.SetString(s.Value())
}

type IntegerOption struct {
	option
	p *int64
}

func NewInteger(s *Store, p *int64, name, desc string) (*IntegerOption, error) {
	return register(s, &IntegerOption{option: option{store: s, name: name, desc: desc, isDefault: true}, p: p})
}

func (o *IntegerOption) Type() ucl.Type     { return ucl.IntegerType }
func (o *IntegerOption) String() string     { return strconv.FormatInt(*o.p, 10) }
func (o *IntegerOption) Object() ucl.Object { return ucl.NewInteger(*o.p).Object() }
func (o *IntegerOption) Close() error       { return o.store.Unregister(o) }

// SetString accepts the UCL integer syntax, including multiplier
// suffixes such as 10k or 4mb.
func (o *IntegerOption) SetString(v string) error {
	n, ok, err := token.ParseNumber(strings.TrimSpace(v))
	switch {
	case err != nil:
		return o.fail(err)
	case !ok || n.IsFloat:
		return o.fail(fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, v))
	}
	*o.p = n.Int
	o.isDefault = false
	return nil
}

func (o *IntegerOption) SetObject(obj ucl.Object) error {
	i, err := ucl.Cast[ucl.Integer](obj)
	if err != nil {
		return o.fail(err)
	}
	*o.p = i.Value()
	o.isDefault = false
	return nil
}

type BooleanOption struct {
	option
	p *bool
}

func NewBoolean(s *Store, p *bool, name, desc string) (*BooleanOption, error) {
	return register(s, &BooleanOption{option: option{store: s, name: name, desc: desc, isDefault: true}, p: p})
}

func (o *BooleanOption) Type() ucl.Type     { return ucl.BooleanType }
func (o *BooleanOption) String() string     { return strconv.FormatBool(*o.p) }
func (o *BooleanOption) Object() ucl.Object { return ucl.NewBoolean(*o.p).Object() }
func (o *BooleanOption) Close() error       { return o.store.Unregister(o) }

// SetString accepts true, yes, on and 1, or false, no, off and 0.
func (o *BooleanOption) SetString(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		*o.p = true
	case "false", "no", "off", "0":
		*o.p = false
	default:
		return o.fail(fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v))
	}
	o.isDefault = false
	return nil
}

func (o *BooleanOption) SetObject(obj ucl.Object) error {
	b, err := ucl.Cast[ucl.Boolean](obj)
	if err != nil {
		return o.fail(err)
	}
	*o.p = b.Value()
	o.isDefault = false
	return nil
}
