package format

import (
	"errors"
	"fmt"
)

// Format is an output style for UCL objects.
type Format int

const (
	JSONFormat Format = iota
	CompactJSONFormat
	ConfigFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

var formatNames = [...]string{
	JSONFormat:        "json",
	CompactJSONFormat: "compact",
	ConfigFormat:      "config",
	YAMLFormat:        "yaml",
}

var formatAliases = map[string]Format{
	"j":   JSONFormat,
	"J":   CompactJSONFormat,
	"c":   ConfigFormat,
	"ucl": ConfigFormat,
	"y":   YAMLFormat,
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(formatNames) }

// ParseFormat accepts a format name or one of its short aliases.
func ParseFormat(v string) (Format, error) {
	if f, ok := formatAliases[v]; ok {
		return f, nil
	}
	for i, name := range formatNames {
		if name == v {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formatNames[f]), nil
}

func (f *Format) UnmarshalText(d []byte) (err error) {
	*f, err = ParseFormat(string(d))
	return err
}

func (f Format) IsJSON() bool   { return f == JSONFormat || f == CompactJSONFormat }
func (f Format) IsConfig() bool { return f == ConfigFormat }
func (f Format) IsYAML() bool   { return f == YAMLFormat }

// Suffix is the file name extension of documents in f.
func (f Format) Suffix() string {
	switch {
	case f.IsJSON():
		return ".json"
	case f.IsConfig():
		return ".ucl"
	case f.IsYAML():
		return ".yaml"
	}
	return ""
}

// FromSuffix returns the format whose Suffix is s, also accepting
// ".conf" and ".yml".
func FromSuffix(s string) (Format, bool) {
	switch s {
	case ".json":
		return JSONFormat, true
	case ".ucl", ".conf":
		return ConfigFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	}
	return 0, false
}

// AllFormats lists the formats, preferred first.
func AllFormats() []Format {
	return []Format{ConfigFormat, JSONFormat, CompactJSONFormat, YAMLFormat}
}
