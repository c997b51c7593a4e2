package token

import (
	"fmt"
	"slices"
)

// PosDoc maps byte offsets of a document to lines and columns.
type PosDoc struct {
	src      []byte
	newlines []int
}

func NewPosDoc(src []byte) *PosDoc {
	pd := &PosDoc{src: src}
	for i, c := range src {
		if c == '\n' {
			pd.newlines = append(pd.newlines, i)
		}
	}
	return pd
}

// LineCol returns the zero based line and column of the byte at off.
func (pd *PosDoc) LineCol(off int) (line, col int) {
	line, _ = slices.BinarySearch(pd.newlines, off)
	if line == 0 {
		return 0, off
	}
	return line, off - pd.newlines[line-1] - 1
}

func (pd *PosDoc) Pos(off int) *Pos {
	return &Pos{Offset: off, Doc: pd}
}

// Pos is a byte offset in a document.
type Pos struct {
	Offset int
	Doc    *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.Doc.LineCol(p.Offset)
}

// String renders p as 1-based "line:col", followed by the text around
// it.
func (p Pos) String() string {
	if p.Doc == nil {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	l, c := p.LineCol()
	near := p.Doc.src[max(0, p.Offset-5):min(p.Offset+5, len(p.Doc.src))]
	return fmt.Sprintf("%d:%d near %q", l+1, c+1, near)
}
