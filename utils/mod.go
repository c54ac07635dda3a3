package utils

import (
	"slices"

	"golang.org/x/exp/constraints"
)

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// SortedCopy returns an ascending copy of slice, leaving slice untouched.
func SortedCopy[T constraints.Ordered](slice []T) []T {
	sorted := slices.Clone(slice)
	slices.Sort(sorted)
	return sorted
}

// SameMultiset reports whether a and b hold the same elements with the same
// multiplicities, in any order.
func SameMultiset[T constraints.Ordered](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(SortedCopy(a), SortedCopy(b))
}

// Prepend returns a new slice holding head followed by tail.
func Prepend[T any](head T, tail []T) []T {
	out := make([]T, 0, len(tail)+1)
	out = append(out, head)
	return append(out, tail...)
}
