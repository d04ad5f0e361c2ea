package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackStack(t *testing.T) {
	b := NewBackStack()

	_, ok := b.Pop()
	assert.False(t, ok, "pop on empty stack")

	first := b.Push("website_settings")
	second := b.Push("site_detail")
	assert.NotEqual(t, first.ID, second.ID)

	popped, ok := b.Pop()
	assert.True(t, ok)
	assert.Equal(t, second, popped)

	popped, ok = b.Pop()
	assert.True(t, ok)
	assert.Equal(t, first, popped)

	_, ok = b.Pop()
	assert.False(t, ok)
}
