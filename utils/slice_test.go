package utils_test

import (
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, utils.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 }))
	assert.Nil(t, utils.Filter([]int{1, 3}, func(v int) bool { return v%2 == 0 }))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, utils.Map([]int{1, 2, 3}, func(v int) int { return v * 2 }))
	assert.Empty(t, utils.Map(nil, func(v int) int { return v }))
}

func TestFind(t *testing.T) {
	v, ok := utils.Find([]string{"a", "b"}, func(s string) bool { return s == "b" })
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = utils.Find([]string{"a", "b"}, func(s string) bool { return s == "c" })
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	assert.True(t, utils.Contains([]int{1, 2, 3}, 2))
	assert.False(t, utils.Contains([]int{1, 2, 3}, 4))
}

func TestAny(t *testing.T) {
	assert.True(t, utils.Any([]int{1, 2, 3}, func(v int) bool { return v > 2 }))
	assert.False(t, utils.Any([]int{1, 2}, func(v int) bool { return v > 2 }))
}
