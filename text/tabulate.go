package text

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var ErrBadTableFormat = errors.New("bad table format")

type align int

const (
	alignLeft align = iota
	alignRight
)

type column struct {
	prefix string
	name   string
	align  align
	width  int
}

// Tabulate writes rows to w as a table. The format is a sequence of
// column specifications of the form {:name}, {<:name} or {>:name},
// separated by literal text. The first output line holds the column
// names. Columns are padded to their widest cell, except that a
// left-aligned cell ending its row is not padded. Rows may be shorter
// than the format; cells past the last column are an error.
func Tabulate(format string, rows [][]string, w io.Writer) error {
	cols, suffix, err := parseTableFormat(format)
	if err != nil {
		return err
	}
	header := make([]string, len(cols))
	for i := range cols {
		header[i] = cols[i].name
	}
	all := append([][]string{header}, rows...)
	for _, row := range all {
		if len(row) > len(cols) {
			return fmt.Errorf("%w: row has %d cells, format has %d columns", ErrBadTableFormat, len(row), len(cols))
		}
		for i, cell := range row {
			cols[i].width = max(cols[i].width, utf8.RuneCountInString(cell))
		}
	}
	var b strings.Builder
	for _, row := range all {
		for i, cell := range row {
			col := &cols[i]
			b.WriteString(col.prefix)
			pad := strings.Repeat(" ", col.width-utf8.RuneCountInString(cell))
			switch {
			case col.align == alignRight:
				b.WriteString(pad)
				b.WriteString(cell)
			case i == len(row)-1:
				b.WriteString(cell)
			default:
				b.WriteString(cell)
				b.WriteString(pad)
			}
		}
		if len(row) == len(cols) {
			b.WriteString(suffix)
		}
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())
	return err
}

func parseTableFormat(format string) ([]column, string, error) {
	var cols []column
	rest := format
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if len(cols) == 0 {
				return nil, "", fmt.Errorf("%w: no columns in %q", ErrBadTableFormat, format)
			}
			return cols, rest, nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return nil, "", fmt.Errorf("%w: unterminated column in %q", ErrBadTableFormat, format)
		}
		spec := rest[open+1 : open+end]
		col := column{prefix: rest[:open]}
		switch {
		case strings.HasPrefix(spec, "<:"):
			col.name = spec[2:]
		case strings.HasPrefix(spec, ">:"):
			col.name, col.align = spec[2:], alignRight
		case strings.HasPrefix(spec, ":"):
			col.name = spec[1:]
		default:
			return nil, "", fmt.Errorf("%w: bad column %q", ErrBadTableFormat, spec)
		}
		cols = append(cols, col)
		rest = rest[open+end+1:]
	}
}
