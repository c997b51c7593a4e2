package parse

import (
	"maps"

	"github.com/nihil-go/nihil/format"
)

type parseOpts struct {
	format           format.Format
	formatSet        bool
	vars             map[string]string
	env              func(string) (string, bool)
	noImplicitArrays bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseConfig() ParseOption {
	return ParseFormat(format.ConfigFormat)
}

// ParseFormat selects the input syntax. JSON and config input both go
// through the UCL grammar; YAML input is decoded as YAML.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}

// Variable registers a value for $name and ${name} in strings.
func Variable(name, value string) ParseOption {
	return func(o *parseOpts) {
		if o.vars == nil {
			o.vars = map[string]string{}
		}
		o.vars[name] = value
	}
}

func Variables(vars map[string]string) ParseOption {
	return func(o *parseOpts) {
		if o.vars == nil {
			o.vars = map[string]string{}
		}
		maps.Copy(o.vars, vars)
	}
}

// LookupEnv resolves variables not registered with Variable through f,
// typically os.LookupEnv.
func LookupEnv(f func(string) (string, bool)) ParseOption {
	return func(o *parseOpts) { o.env = f }
}

// NoImplicitArrays makes a repeated key replace the earlier value
// instead of collecting all values into an array.
func NoImplicitArrays() ParseOption {
	return func(o *parseOpts) { o.noImplicitArrays = true }
}

func (o *parseOpts) expanding() bool {
	return len(o.vars) > 0 || o.env != nil
}

func (o *parseOpts) lookup(name string) (string, bool) {
	if v, ok := o.vars[name]; ok {
		return v, true
	}
	if o.env != nil {
		return o.env(name)
	}
	return "", false
}
