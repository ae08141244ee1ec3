package stackbuf

import "github.com/rawbytedev/stackbuf/internal/common"

// Every mutation here fails atomically: on error the buffer is
// byte-for-byte unchanged.

// Append copies the content of other onto the end of b.
func (b *Buffer[A]) Append(other *Buffer[A]) error {
	return b.AppendBytes(other.Bytes())
}

// AppendBytes copies p onto the end of b.
func (b *Buffer[A]) AppendBytes(p []byte) error {
	if b.n+len(p) > b.Cap() {
		return capacityErr(b.Cap(), b.n+len(p))
	}
	b.n += copy(b.storage()[b.n:], p)
	return nil
}

// AppendString copies s onto the end of b.
func (b *Buffer[A]) AppendString(s string) error {
	if b.n+len(s) > b.Cap() {
		return capacityErr(b.Cap(), b.n+len(s))
	}
	b.n += copy(b.storage()[b.n:], s)
	return nil
}

// AppendByte appends a single byte.
func (b *Buffer[A]) AppendByte(c byte) error {
	if b.n >= b.Cap() {
		return capacityErr(b.Cap(), b.n+1)
	}
	b.storage()[b.n] = c
	b.n++
	return nil
}

// Prepend copies the content of other in front of b's content.
func (b *Buffer[A]) Prepend(other *Buffer[A]) error {
	return b.PrependBytes(other.Bytes())
}

// PrependBytes copies p in front of b's content, shifting it right.
func (b *Buffer[A]) PrependBytes(p []byte) error {
	if b.n+len(p) > b.Cap() {
		return capacityErr(b.Cap(), b.n+len(p))
	}
	s := b.storage()
	copy(s[len(p):b.n+len(p)], s[:b.n])
	copy(s, p)
	b.n += len(p)
	return nil
}

// PrependString copies s in front of b's content.
func (b *Buffer[A]) PrependString(s string) error {
	if b.n+len(s) > b.Cap() {
		return capacityErr(b.Cap(), b.n+len(s))
	}
	st := b.storage()
	copy(st[len(s):b.n+len(s)], st[:b.n])
	copy(st, s)
	b.n += len(s)
	return nil
}

// Insert copies the content of other into b at position at.
func (b *Buffer[A]) Insert(at int, other *Buffer[A]) error {
	return b.InsertBytes(at, other.Bytes())
}

// InsertBytes copies p into b at position at, shifting the tail right.
// at may equal Len, which appends.
func (b *Buffer[A]) InsertBytes(at int, p []byte) error {
	if at < 0 || at > b.n {
		return indexErr(b.n, at)
	}
	if b.n+len(p) > b.Cap() {
		return capacityErr(b.Cap(), b.n+len(p))
	}
	s := b.storage()
	copy(s[at+len(p):b.n+len(p)], s[at:b.n])
	copy(s[at:], p)
	b.n += len(p)
	return nil
}

// InsertByte inserts a single byte at position at.
func (b *Buffer[A]) InsertByte(at int, c byte) error {
	return b.InsertBytes(at, []byte{c})
}

// Pop removes and returns the last byte.
func (b *Buffer[A]) Pop() (byte, error) {
	if b.n == 0 {
		return 0, underflowErr(0, 1)
	}
	b.n--
	return b.storage()[b.n], nil
}

// PopN removes the last k bytes and returns them as an owned copy, in
// their original order.
func (b *Buffer[A]) PopN(k int) ([]byte, error) {
	if k < 0 || k > b.n {
		return nil, underflowErr(b.n, k)
	}
	s := b.storage()
	out := append([]byte(nil), s[b.n-k:b.n]...)
	b.n -= k
	return out, nil
}

// TakeHead removes the first k bytes, shifting the rest left, and
// returns them as an owned copy.
func (b *Buffer[A]) TakeHead(k int) ([]byte, error) {
	if k < 0 || k > b.n {
		return nil, underflowErr(b.n, k)
	}
	s := b.storage()
	out := append([]byte(nil), s[:k]...)
	copy(s, s[k:b.n])
	b.n -= k
	return out, nil
}

// Take removes and returns the byte at position at, shifting the tail left.
func (b *Buffer[A]) Take(at int) (byte, error) {
	if at < 0 || at >= b.n {
		return 0, indexErr(b.n, at)
	}
	s := b.storage()
	c := s[at]
	copy(s[at:], s[at+1:b.n])
	b.n--
	return c, nil
}

// TrimLeft removes leading ASCII spaces.
func (b *Buffer[A]) TrimLeft() {
	s := b.storage()
	i := 0
	for i < b.n && common.IsSpace(s[i]) {
		i++
	}
	if i > 0 {
		copy(s, s[i:b.n])
		b.n -= i
	}
}

// TrimRight removes trailing ASCII spaces.
func (b *Buffer[A]) TrimRight() {
	s := b.storage()
	for b.n > 0 && common.IsSpace(s[b.n-1]) {
		b.n--
	}
}

// Trim removes leading and trailing ASCII spaces.
func (b *Buffer[A]) Trim() {
	b.TrimLeft()
	b.TrimRight()
}

// TrimAll trims both ends and collapses inner space runs to one space.
func (b *Buffer[A]) TrimAll() {
	b.Trim()
	s := b.storage()
	w := 0
	prevSpace := false
	for _, c := range s[:b.n] {
		if common.IsSpace(c) {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		s[w] = c
		w++
	}
	b.n = w
}

// Upper maps ASCII letters in the content to uppercase.
func (b *Buffer[A]) Upper() {
	s := b.storage()
	for i := 0; i < b.n; i++ {
		s[i] = common.ToUpper(s[i])
	}
}

// Lower maps ASCII letters in the content to lowercase.
func (b *Buffer[A]) Lower() {
	s := b.storage()
	for i := 0; i < b.n; i++ {
		s[i] = common.ToLower(s[i])
	}
}

// Title lowercases the content and uppercases the first byte.
func (b *Buffer[A]) Title() {
	b.Lower()
	if b.n > 0 {
		s := b.storage()
		s[0] = common.ToUpper(s[0])
	}
}

// Proper lowercases the content and uppercases the first byte of every
// space-separated word.
func (b *Buffer[A]) Proper() {
	s := b.storage()[:b.n]
	startWord := true
	for i, c := range s {
		if common.IsSpace(c) {
			startWord = true
			continue
		}
		if startWord {
			s[i] = common.ToUpper(c)
			startWord = false
		} else {
			s[i] = common.ToLower(c)
		}
	}
}
