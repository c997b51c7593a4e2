package ucl

import (
	"errors"
	"testing"
)

func pathDoc() Object {
	server := NewObject()
	server.Insert("name", NewString("alpha").Object())
	server.Insert("port", NewInteger(80).Object())
	servers := NewArray(server.Object())
	doc := NewObject()
	doc.Insert("servers", servers.Object())
	doc.Insert("matrix", NewArray(NewArray(NewInteger(1).Object(), NewInteger(2).Object()).Object()).Object())
	return doc.Object()
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want Object
	}{
		{"servers[0].name", NewString("alpha").Object()},
		{"servers.0.port", NewInteger(80).Object()},
		{"matrix[0][1]", NewInteger(2).Object()},
		{"matrix.0.0", NewInteger(1).Object()},
		{"", doc},
	}
	for _, tt := range tests {
		got, err := GetPath(doc, tt.path)
		if err != nil {
			t.Errorf("%q: %v", tt.path, err)
			continue
		}
		if !Equal(tt.want, got) {
			t.Errorf("%q: got %#v want %#v", tt.path, got, tt.want)
		}
	}
}

func TestGetPathErrors(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want error
	}{
		{"missing", ErrKeyNotFound},
		{"servers[3]", ErrOutOfRange},
		{"servers[0].name.x", ErrTypeMismatch},
		{"servers[x]", ErrBadPath},
		{"servers..name", ErrBadPath},
		{"servers[0", ErrBadPath},
	}
	for _, tt := range tests {
		if _, err := GetPath(doc, tt.path); !errors.Is(err, tt.want) {
			t.Errorf("%q: got %v want %v", tt.path, err, tt.want)
		}
	}
}
