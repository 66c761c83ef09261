package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPathPrefix(t *testing.T) {
	tests := []struct {
		prefix   string
		path     string
		expected bool
	}{
		// Segment boundaries
		{"/foo", "/foo", true},
		{"/foo", "/foobar", false},
		{"/foo", "/foo/bar", true},
		{"/foo", "/foo/", true},
		{"/foo", "/foo?tab=1", true},
		{"/foo/bar", "/foo", false},
		{"/foo", "/bar/foo", false},

		// Trailing slash prefix is a plain string prefix
		{"/", "/anything", true},
		{"/foo/", "/foo/bar", true},
		{"/foo/", "/foo", false},

		// Dynamic segments
		{"/users/:id", "/users/42", true},
		{"/users/:id", "/users/42/profile", true},
		{"/users/:id", "/users", false},
		{"/files/*", "/files/a/b/c", true},

		// Case-insensitive static segments
		{"/Shop", "/shop/cart", true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"_"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasPathPrefix(tt.prefix, tt.path))
		})
	}
}

func TestTrimTrailingSlash(t *testing.T) {
	assert.Equal(t, "/app", TrimTrailingSlash("/app/"))
	assert.Equal(t, "/app/", TrimTrailingSlash("/app//"))
	assert.Equal(t, "/app", TrimTrailingSlash("/app"))
	assert.Empty(t, TrimTrailingSlash("/"))
}
