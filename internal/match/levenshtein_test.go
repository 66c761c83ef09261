package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"ABC", "abc", 3},
		{"hsah", "hash", 2},
		{"brwoser", "browser", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("micro_app", "microApp"), 0.0001)
	assert.InDelta(t, 1.0, Similarity("", ""), 0.0001)
	assert.Less(t, Similarity("path", "microApp"), DefaultThreshold)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"browser", "hash", "memory"}

	assert.Equal(t, []string{"browser"}, Suggest("brwoser", candidates, 0.7))
	assert.Equal(t, []string{"hash"}, Suggest("hsah", candidates, 0.5))
	assert.Empty(t, Suggest("browser", candidates, 0.7))
	assert.Empty(t, Suggest("qwerty", candidates, DefaultThreshold))
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"microApp", "microapp"},
		{"micro_app", "microapp"},
		{"Micro-App", "microapp"},
		{"micro app", "microapp"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}
