package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := NewGenerator()

	id := g.New("job")
	require.True(t, strings.HasPrefix(id, "job_"))
	random := strings.TrimPrefix(id, "job_")
	assert.Len(t, random, size)
	for _, r := range random {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestNewIsUnique(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.New("app")
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
