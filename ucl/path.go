package ucl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// GetPath returns a new reference to the value at path below o. A path
// is a sequence of dot separated keys, each optionally followed by
// bracketed array indices, as in "servers[0].name". Purely numeric
// segments index arrays as well, so "servers.0.name" is equivalent. The
// empty path denotes o itself.
func GetPath(o Object, path string) (Object, error) {
	cur := o.Ref()
	if path == "" {
		return cur, nil
	}
	for _, seg := range strings.Split(path, ".") {
		key, idxs, err := splitSegment(seg)
		if err != nil {
			return Object{}, fmt.Errorf("%w: %q: %w", ErrBadPath, path, err)
		}
		if key != "" {
			next, err := pathStep(cur, key)
			if err != nil {
				return Object{}, fmt.Errorf("%s: %w", path, err)
			}
			cur = next
		}
		for _, i := range idxs {
			next, err := cur.Index(i)
			if err != nil {
				return Object{}, fmt.Errorf("%s: %w", path, err)
			}
			cur = next
		}
	}
	return cur, nil
}

func pathStep(cur Object, key string) (Object, error) {
	if cur.Type() == ArrayType {
		if i, err := strconv.Atoi(key); err == nil {
			return cur.Index(i)
		}
	}
	if cur.Type() != ObjectType {
		return Object{}, mismatch(ObjectType, cur.Type())
	}
	next, ok := cur.Lookup(key)
	if !ok {
		return Object{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return next, nil
}

func splitSegment(seg string) (string, []int, error) {
	key := seg
	var idxs []int
	if open := strings.IndexByte(seg, '['); open >= 0 {
		key = seg[:open]
		rest := seg[open:]
		for rest != "" {
			end := strings.IndexByte(rest, ']')
			if rest[0] != '[' || end < 0 {
				return "", nil, fmt.Errorf("malformed index in %q", seg)
			}
			i, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return "", nil, fmt.Errorf("malformed index in %q", seg)
			}
			idxs = append(idxs, i)
			rest = rest[end+1:]
		}
	}
	if key == "" && len(idxs) == 0 {
		return "", nil, fmt.Errorf("empty segment")
	}
	return key, idxs, nil
}
