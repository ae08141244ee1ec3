package stackbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned by any operation that would grow the
	// content past the buffer capacity. The buffer is left unchanged.
	ErrCapacity = errors.New("not enough capacity")

	// ErrUnderflow is returned by any operation that would remove more
	// bytes than the buffer currently holds. The buffer is left unchanged.
	ErrUnderflow = errors.New("buffer underflow")

	// ErrIndex is returned for positions outside the valid content range.
	ErrIndex = errors.New("invalid index")

	// ErrNotByteArray is the panic value raised when a Buffer is
	// instantiated with a type argument that is not a byte array.
	ErrNotByteArray = errors.New("type argument must be a byte array, e.g. [64]byte")
)

func capacityErr(capacity, want int) error {
	return fmt.Errorf("%w: capacity is %d but trying to store %d", ErrCapacity, capacity, want)
}

func underflowErr(n, want int) error {
	return fmt.Errorf("%w: len is %d but trying to remove %d", ErrUnderflow, n, want)
}

func indexErr(n, idx int) error {
	return fmt.Errorf("%w: len is %d but index is %d", ErrIndex, n, idx)
}
