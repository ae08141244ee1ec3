package stackbuf

import (
	"cmp"
	"slices"
)

// Reverse reverses the content in place.
func (b *Buffer[A]) Reverse() {
	slices.Reverse(b.Bytes())
}

// Sort orders the content bytes ascending.
func (b *Buffer[A]) Sort() {
	slices.Sort(b.Bytes())
}

// SortDesc orders the content bytes descending.
func (b *Buffer[A]) SortDesc() {
	slices.SortFunc(b.Bytes(), func(x, y byte) int { return cmp.Compare(y, x) })
}

// ISort orders ascending with an in-place insertion sort. Quadratic,
// but branch-cheap and allocation-free for the short runs this buffer
// is meant for.
func (b *Buffer[A]) ISort() {
	insertionSort(b.Bytes(), false)
}

// ISortDesc is the descending insertion sort.
func (b *Buffer[A]) ISortDesc() {
	insertionSort(b.Bytes(), true)
}

func insertionSort(p []byte, desc bool) {
	for i := 1; i < len(p); i++ {
		c := p[i]
		j := i - 1
		for j >= 0 && ((desc && p[j] < c) || (!desc && p[j] > c)) {
			p[j+1] = p[j]
			j--
		}
		p[j+1] = c
	}
}
