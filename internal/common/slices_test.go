package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]string(nil)))
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]string{"/a"}))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"/a", "/b"})
	assert.True(t, ok)
	assert.Equal(t, "/a", v)

	v, ok = First([]string{})
	assert.False(t, ok)
	assert.Empty(t, v)
}
