package common

import "unsafe"

// IsSpace reports whether c is the ASCII space byte. Trimming is
// byte-level on purpose: the buffer makes no unicode promises.
func IsSpace(c byte) bool {
	return c == ' '
}

// ToUpper maps an ASCII lowercase letter to uppercase, other bytes pass through.
func ToUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

// ToLower maps an ASCII uppercase letter to lowercase, other bytes pass through.
func ToLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

// ByteSum returns the sum of all bytes in b.
func ByteSum(b []byte) uint64 {
	var sum uint64
	for _, c := range b {
		sum += uint64(c)
	}
	return sum
}

// UnsafeString aliases b as a string without copying. The caller must
// ensure b is not mutated while the string is alive.
func UnsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
