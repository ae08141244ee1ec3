package stackbuf

import (
	"bytes"
	"strings"

	"github.com/rawbytedev/stackbuf/internal/common"
)

// Queries never mutate and never read past the valid prefix. The views
// returned by Split* and Cut* stay valid until the next mutation.

// Contains reports whether the content holds byte c.
func (b *Buffer[A]) Contains(c byte) bool {
	return bytes.IndexByte(b.Bytes(), c) >= 0
}

// ContainsBytes reports whether the content holds pat as a subsequence.
func (b *Buffer[A]) ContainsBytes(pat []byte) bool {
	return bytes.Contains(b.Bytes(), pat)
}

// ContainsString is ContainsBytes for string patterns, without copying.
func (b *Buffer[A]) ContainsString(pat string) bool {
	return strings.Contains(common.UnsafeString(b.Bytes()), pat)
}

// IndexByte returns the offset of the first c in the content, or -1.
func (b *Buffer[A]) IndexByte(c byte) int {
	return bytes.IndexByte(b.Bytes(), c)
}

// Index returns the offset of the first occurrence of pat, or -1.
func (b *Buffer[A]) Index(pat []byte) int {
	return bytes.Index(b.Bytes(), pat)
}

// HasPrefix reports whether the content starts with pat.
func (b *Buffer[A]) HasPrefix(pat []byte) bool {
	return bytes.HasPrefix(b.Bytes(), pat)
}

// HasSuffix reports whether the content ends with pat.
func (b *Buffer[A]) HasSuffix(pat []byte) bool {
	return bytes.HasSuffix(b.Bytes(), pat)
}

// HasPrefixString is HasPrefix for string patterns.
func (b *Buffer[A]) HasPrefixString(pat string) bool {
	return strings.HasPrefix(common.UnsafeString(b.Bytes()), pat)
}

// HasSuffixString is HasSuffix for string patterns.
func (b *Buffer[A]) HasSuffixString(pat string) bool {
	return strings.HasSuffix(common.UnsafeString(b.Bytes()), pat)
}

// Split partitions the content at every delim, excluding the delimiter
// from the pieces. k occurrences yield k+1 zero-copy views.
func (b *Buffer[A]) Split(delim byte) [][]byte {
	p := b.Bytes()
	out := make([][]byte, 0, 4)
	start := 0
	for i, c := range p {
		if c == delim {
			out = append(out, p[start:i])
			start = i + 1
		}
	}
	return append(out, p[start:])
}

// SplitAfter partitions like Split but keeps the delimiter at the end
// of the left-hand piece of each split.
func (b *Buffer[A]) SplitAfter(delim byte) [][]byte {
	p := b.Bytes()
	out := make([][]byte, 0, 4)
	start := 0
	for i, c := range p {
		if c == delim {
			out = append(out, p[start:i+1])
			start = i + 1
		}
	}
	return append(out, p[start:])
}

// SplitBefore partitions like Split but keeps the delimiter at the
// start of the right-hand piece of each split.
func (b *Buffer[A]) SplitBefore(delim byte) [][]byte {
	p := b.Bytes()
	out := make([][]byte, 0, 4)
	start := 0
	for i, c := range p {
		if c == delim {
			out = append(out, p[start:i])
			start = i
		}
	}
	return append(out, p[start:])
}

// Cut splits at the first delim, returning the content before and after
// it. found is false when delim is absent, and before is the whole content.
func (b *Buffer[A]) Cut(delim byte) (before, after []byte, found bool) {
	p := b.Bytes()
	if i := bytes.IndexByte(p, delim); i >= 0 {
		return p[:i], p[i+1:], true
	}
	return p, nil, false
}

// CutBytes is Cut for a multi-byte separator.
func (b *Buffer[A]) CutBytes(sep []byte) (before, after []byte, found bool) {
	return bytes.Cut(b.Bytes(), sep)
}

// CutString is Cut for a string separator, without copying it.
func (b *Buffer[A]) CutString(sep string) (before, after []byte, found bool) {
	p := b.Bytes()
	if i := strings.Index(common.UnsafeString(p), sep); i >= 0 {
		return p[:i], p[i+len(sep):], true
	}
	return p, nil, false
}

// SplitStrings materializes Split's pieces as owned strings, for
// callers that need them to outlive the buffer.
func (b *Buffer[A]) SplitStrings(delim byte) []string {
	views := b.Split(delim)
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = string(v)
	}
	return out
}
