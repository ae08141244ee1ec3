// Package stackbuf provides a fixed-capacity byte buffer stored inline,
// without heap allocation or pointer indirection.
//
// The capacity is carried in the type: Buffer[[64]byte] holds up to 64
// bytes directly inside the value. The buffer tracks how many of those
// bytes are valid content; storage past that length is unspecified
// garbage and is never read by any operation. Equality, ordering,
// hashing and formatting all see only the valid prefix.
//
// A Buffer is a plain value with no internal synchronization. Callers
// sharing one across goroutines must synchronize externally.
package stackbuf

import (
	"bytes"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/rawbytedev/stackbuf/internal/common"
)

// Buffer is a fixed-capacity byte buffer. A must be a byte-array type
// such as [32]byte; constructors panic with ErrNotByteArray otherwise.
// The zero value is an empty buffer ready to use.
type Buffer[A any] struct {
	arr A
	n   int
}

// Common capacities.
type (
	B16  = Buffer[[16]byte]
	B32  = Buffer[[32]byte]
	B64  = Buffer[[64]byte]
	B128 = Buffer[[128]byte]
	B256 = Buffer[[256]byte]
)

func checkArray[A any]() {
	t := reflect.TypeOf((*A)(nil)).Elem()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(ErrNotByteArray)
	}
}

// New returns an empty buffer.
func New[A any]() Buffer[A] {
	checkArray[A]()
	return Buffer[A]{}
}

// From copies up to Cap() bytes of p into a new buffer. Input past the
// capacity is silently truncated; use FromExact to detect that.
func From[A any](p []byte) Buffer[A] {
	b := New[A]()
	b.n = copy(b.storage(), p)
	return b
}

// FromString is From for string input.
func FromString[A any](s string) Buffer[A] {
	b := New[A]()
	b.n = copy(b.storage(), s)
	return b
}

// FromExact is the length-checked variant of From: it returns
// ErrCapacity instead of truncating when p does not fit.
func FromExact[A any](p []byte) (Buffer[A], error) {
	b := New[A]()
	if len(p) > b.Cap() {
		return b, capacityErr(b.Cap(), len(p))
	}
	b.n = copy(b.storage(), p)
	return b, nil
}

// Convert copies a buffer into one of a different capacity, chosen
// explicitly by the type argument at the call site. Content past the
// target capacity is silently truncated; widening keeps all content.
func Convert[B, A any](src *Buffer[A]) Buffer[B] {
	dst := New[B]()
	dst.n = copy(dst.storage(), src.Bytes())
	return dst
}

// storage aliases the inline array as a byte slice covering the whole
// capacity. No heap allocation and no copy; the slice is only valid
// while b is.
func (b *Buffer[A]) storage() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.arr)), int(unsafe.Sizeof(b.arr)))
}

// Len returns the number of valid content bytes.
func (b *Buffer[A]) Len() int { return b.n }

// Cap returns the fixed capacity.
func (b *Buffer[A]) Cap() int { return int(unsafe.Sizeof(b.arr)) }

// Available returns how many more bytes fit.
func (b *Buffer[A]) Available() int { return b.Cap() - b.n }

// IsEmpty reports whether the buffer holds no content.
func (b *Buffer[A]) IsEmpty() bool { return b.n == 0 }

// IsFull reports whether the content has reached the capacity.
func (b *Buffer[A]) IsFull() bool { return b.n == b.Cap() }

// Bytes returns the valid prefix as a zero-copy view. The view is
// invalidated by any subsequent mutation of the buffer.
func (b *Buffer[A]) Bytes() []byte { return b.storage()[:b.n] }

// Raw returns the entire inline storage, mutable, for callers that fill
// the buffer outside the append path. Pair with IncreaseLen or AutoLen
// to resync the length afterwards.
func (b *Buffer[A]) Raw() []byte { return b.storage() }

// String returns a copy of the valid prefix.
func (b *Buffer[A]) String() string { return string(b.Bytes()) }

// UnsafeString aliases the valid prefix as a string without copying.
// The result is invalidated by any subsequent mutation.
func (b *Buffer[A]) UnsafeString() string { return common.UnsafeString(b.Bytes()) }

// Slice returns a bounds-checked zero-copy view of content [start:end).
func (b *Buffer[A]) Slice(start, end int) ([]byte, error) {
	if start < 0 || start > end {
		return nil, indexErr(b.n, start)
	}
	if end > b.n {
		return nil, indexErr(b.n, end)
	}
	return b.storage()[start:end], nil
}

// Last returns the final content byte, or 0 for an empty buffer.
func (b *Buffer[A]) Last() byte {
	if b.n == 0 {
		return 0
	}
	return b.storage()[b.n-1]
}

// Clear zeroes the storage and resets the length. Zeroing matters for
// AutoLen, which relies on a NUL sentinel.
func (b *Buffer[A]) Clear() {
	var zero A
	b.arr = zero
	b.n = 0
}

// IncreaseLen extends the valid length by k without writing bytes,
// claiming content already placed via Raw.
func (b *Buffer[A]) IncreaseLen(k int) error {
	if k < 0 || b.n+k > b.Cap() {
		return capacityErr(b.Cap(), b.n+k)
	}
	b.n += k
	return nil
}

// DecreaseLen shrinks the valid length by k without touching bytes.
func (b *Buffer[A]) DecreaseLen(k int) error {
	if k < 0 || k > b.n {
		return underflowErr(b.n, k)
	}
	b.n -= k
	return nil
}

// AutoLen recomputes the length by scanning for the first NUL byte,
// for callers that wrote raw bytes into a cleared buffer. O(Cap).
func (b *Buffer[A]) AutoLen() {
	s := b.storage()
	if i := bytes.IndexByte(s, 0); i >= 0 {
		b.n = i
		return
	}
	b.n = len(s)
}

// Equal reports content equality over the valid prefixes only; garbage
// tail bytes never participate.
func (b *Buffer[A]) Equal(other *Buffer[A]) bool {
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// Compare orders two buffers lexicographically over their valid
// prefixes, like bytes.Compare.
func (b *Buffer[A]) Compare(other *Buffer[A]) int {
	return bytes.Compare(b.Bytes(), other.Bytes())
}

// Sum64 hashes the valid prefix with xxHash. Equal buffers hash equal,
// so the result is usable as a map key for buffer content.
func (b *Buffer[A]) Sum64() uint64 {
	return xxhash.Sum64(b.Bytes())
}

// Checksum returns the byte-sum of the valid prefix.
func (b *Buffer[A]) Checksum() uint64 {
	return common.ByteSum(b.Bytes())
}
