// Package internal holds iterator helpers shared by the ucrom packages.
package internal

import (
	"iter"
	"slices"
)

// Flatten yields the elements of each sequence of seqs in turn.
func Flatten[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Concat joins sequences end to end.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return Flatten(slices.Values(seqs))
}

// Count consumes a sequence and returns its length.
func Count[T any](seq iter.Seq[T]) (count int) {
	for range seq {
		count++
	}
	return
}
