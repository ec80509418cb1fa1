package wordpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolWordsAreLowercaseAlphabetic(t *testing.T) {
	p := New()
	assert.Greater(t, p.Len(), 0)
	seen := make(map[string]bool)
	for _, w := range p.words {
		assert.GreaterOrEqual(t, len(w), 3, "word %q too short", w)
		assert.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
		for _, c := range w {
			if c < 'a' || c > 'z' {
				t.Errorf("word %q contains non-alphabetic character %q", w, c)
			}
		}
	}
}

func TestPickWordReturnsPoolMember(t *testing.T) {
	p := New()
	members := make(map[string]bool, p.Len())
	for _, w := range p.words {
		members[w] = true
	}
	for i := 0; i < 100; i++ {
		w := p.PickWord()
		assert.NotEmpty(t, w)
		assert.True(t, members[w], "picked word %q not in pool", w)
	}
}
