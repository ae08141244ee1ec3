package common

import "testing"

func TestCaseMapping(t *testing.T) {
	if ToUpper('a') != 'A' || ToUpper('z') != 'Z' {
		t.Fatalf("ToUpper letter mapping broken")
	}
	if ToUpper('A') != 'A' || ToUpper('1') != '1' || ToUpper(' ') != ' ' {
		t.Fatalf("ToUpper must pass non-lowercase through")
	}
	if ToLower('A') != 'a' || ToLower('Z') != 'z' {
		t.Fatalf("ToLower letter mapping broken")
	}
	if ToLower('a') != 'a' || ToLower('~') != '~' {
		t.Fatalf("ToLower must pass non-uppercase through")
	}
}

func TestByteSum(t *testing.T) {
	if got := ByteSum([]byte{1, 2, 3}); got != 6 {
		t.Fatalf("ByteSum = %d, want 6", got)
	}
	if got := ByteSum(nil); got != 0 {
		t.Fatalf("ByteSum(nil) = %d, want 0", got)
	}
}

func TestUnsafeString(t *testing.T) {
	b := []byte("hello")
	if s := UnsafeString(b); s != "hello" {
		t.Fatalf("UnsafeString = %q", s)
	}
	if s := UnsafeString(nil); s != "" {
		t.Fatalf("UnsafeString(nil) = %q", s)
	}
}
