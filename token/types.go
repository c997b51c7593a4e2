package token

import "fmt"

type TokenType int

const (
	TAtom TokenType = iota
	TString
	TSingle
	THeredoc
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TAssign
	TSemi
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TAtom:    "TAtom",
		TString:  "TString",
		TSingle:  "TSingle",
		THeredoc: "THeredoc",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TAssign:  "TAssign",
		TSemi:    "TSemi",
		TComma:   "TComma",
	}[t]
}

// IsString reports whether tokens of type t carry a string value.
func (t TokenType) IsString() bool {
	switch t {
	case TAtom, TString, TSingle, THeredoc:
		return true
	}
	return false
}

// IsQuoted reports whether t is a quoted string or heredoc, whose value
// is never reinterpreted as a number or keyword.
func (t TokenType) IsQuoted() bool {
	return t == TString || t == TSingle || t == THeredoc
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	// Value is the decoded text of string tokens.
	Value string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	if t.Type.IsString() {
		return t.Value
	}
	return string(t.Bytes)
}
