package internal

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))
	assert.Equal(3, Count(seq))

	var first []int
	for val := range seq {
		first = append(first, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestFlatten(t *testing.T) {
	assert := assert.New(t)

	groups := func(yield func(iter.Seq[string]) bool) {
		for _, group := range [][]string{{"a"}, nil, {"b", "c"}} {
			if !yield(slices.Values(group)) {
				return
			}
		}
	}
	assert.Equal([]string{"a", "b", "c"}, slices.Collect(Flatten(groups)))
	assert.Equal(3, Count(Flatten(groups)))
}

func TestCount(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Count(slices.Values([]string(nil))))
	assert.Equal(2, Count(slices.Values([]string{"x", "y"})))
}
