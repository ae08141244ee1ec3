package stackbuf

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	b := FromString[[8]byte]("12345")
	b.Reverse()
	require.Equal(t, "54321", b.String())
	require.Equal(t, 5, b.Len())

	empty := New[[8]byte]()
	empty.Reverse()
	require.Equal(t, 0, empty.Len())
}

func TestReverseInvolution(t *testing.T) {
	condition := func(p []byte) bool {
		b := From[[64]byte](p)
		want := From[[64]byte](p)
		b.Reverse()
		b.Reverse()
		return b.Equal(&want)
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func TestSort(t *testing.T) {
	b := FromString[[8]byte]("cgahb")
	b.Sort()
	require.Equal(t, "abcgh", b.String())

	b.SortDesc()
	require.Equal(t, "hgcba", b.String())

	empty := New[[8]byte]()
	empty.Sort()
	empty.SortDesc()
	require.Equal(t, 0, empty.Len())
}

func TestSortDescIsReversedSort(t *testing.T) {
	// holds generally for bytes: duplicates are indistinguishable
	condition := func(p []byte) bool {
		asc := From[[64]byte](p)
		desc := From[[64]byte](p)
		asc.Sort()
		desc.SortDesc()
		asc.Reverse()
		return asc.Equal(&desc)
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func TestISortMatchesSort(t *testing.T) {
	condition := func(p []byte) bool {
		a := From[[64]byte](p)
		b := From[[64]byte](p)
		a.Sort()
		b.ISort()
		if !a.Equal(&b) {
			return false
		}
		a.SortDesc()
		b.ISortDesc()
		return a.Equal(&b)
	}
	err := quick.Check(condition, &quick.Config{})
	require.NoError(t, err)
}

func TestISort(t *testing.T) {
	b := FromString[[8]byte]("efAdcb")
	b.ISort()
	require.Equal(t, "Abcdef", b.String())
	b.ISortDesc()
	require.Equal(t, "fedcbA", b.String())
}
