package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SegmentKind tells how a path segment addresses its container.
type SegmentKind int

const (
	// Key names an object member.
	Key SegmentKind = iota
	// Index names an array position. Against an object it names the member
	// spelled like the index.
	Index
	// AppendMarker ("-") is the position one past the last array element.
	AppendMarker
	// Wildcard ("*") stands for every index of an array.
	Wildcard
)

func (k SegmentKind) String() string {
	switch k {
	case Key:
		return "key"
	case Index:
		return "index"
	case AppendMarker:
		return "append marker"
	case Wildcard:
		return "wildcard"
	}
	return "SegmentKind(" + strconv.Itoa(int(k)) + ")"
}

// Segment is one step of a Path.
type Segment struct {
	Kind SegmentKind
	// Token is the segment exactly as written in the path string.
	Token string
	// Key is the member name used when the segment addresses an object.
	Key string
	// Index is the array position for Index segments.
	Index int
}

// Path is a parsed path. The empty path denotes the root.
type Path []Segment

// String renders the path back to the string it was parsed from.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.Token)
	}
	return b.String()
}

// HasWildcard reports whether any segment of p is a Wildcard.
func (p Path) HasWildcard() bool {
	return p.wildcardIndex() >= 0
}

func (p Path) wildcardIndex() int {
	for i, s := range p {
		if s.Kind == Wildcard {
			return i
		}
	}
	return -1
}

// Last returns the final segment of p. p must not be empty.
func (p Path) Last() Segment {
	return p[len(p)-1]
}

// Context says what an operation does with a path, which decides the special
// segments it may contain.
type Context int

const (
	// Target paths must point at existing values: remove and replace paths,
	// move and copy sources.
	Target Context = iota
	// Destination paths receive a value: add paths, move and copy
	// destinations. They may end with an AppendMarker.
	Destination
	// Test paths are compared against and may use Wildcards anywhere but in
	// the last position.
	Test
)

// ParseOptions tunes ParsePath.
type ParseOptions struct {
	// Unescape applies RFC 6901 decoding ("~1" is "/", "~0" is "~") to member
	// names. Without it tokens are used verbatim.
	Unescape bool
}

// ParsePath splits a path string into typed segments and checks that special
// segments are used where ctx allows them.
func ParsePath(path string, ctx Context, opts ParseOptions) (Path, error) {
	if path == "" {
		return nil, nil
	}
	if path[0] != '/' {
		return nil, MalformedError(path, "path must be empty or start with '/'")
	}

	tokens := strings.Split(path[1:], "/")
	p := make(Path, len(tokens))
	for i, token := range tokens {
		seg, err := parseSegment(path, token, opts)
		if err != nil {
			return nil, err
		}
		last := i == len(tokens)-1

		switch seg.Kind {
		case AppendMarker:
			if ctx != Destination {
				return nil, MalformedError(path, "'-' is only allowed in add, move and copy destinations")
			}
			if !last {
				return nil, MalformedError(path, "'-' must be the last segment")
			}
		case Wildcard:
			if ctx != Test {
				return nil, MalformedError(path, "'*' is only allowed in test paths")
			}
			if last {
				return nil, MalformedError(path, "'*' cannot be the last segment")
			}
		}
		p[i] = seg
	}
	return p, nil
}

func parseSegment(path, token string, opts ParseOptions) (Segment, error) {
	switch token {
	case "-":
		return Segment{Kind: AppendMarker, Token: token, Key: token}, nil
	case "*":
		return Segment{Kind: Wildcard, Token: token, Key: token}, nil
	}

	if isDigits(token) {
		idx, err := strconv.Atoi(token)
		if err != nil {
			// Past the int range; no array is that long.
			idx = math.MaxInt
		}
		return Segment{Kind: Index, Token: token, Key: token, Index: idx}, nil
	}

	key := token
	if opts.Unescape {
		var err error
		if key, err = unescapeKey(token); err != nil {
			return Segment{}, MalformedError(path, "%v", err)
		}
	}
	return Segment{Kind: Key, Token: token, Key: key}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func unescapeKey(token string) (string, error) {
	if !strings.Contains(token, "~") {
		return token, nil
	}
	var b strings.Builder
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(token) {
			return "", fmt.Errorf("invalid escape sequence in %q", token)
		}
		switch token[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid escape sequence in %q", token)
		}
		i++
	}
	return b.String(), nil
}
