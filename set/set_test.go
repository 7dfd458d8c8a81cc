package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSliceKeepsFirstOccurrence(t *testing.T) {
	s := FromSlice([]string{"u2", "u1", "u2", "u3", "u1"})
	assert.Equal(t, []string{"u2", "u1", "u3"}, s.ToSlice())
}

func TestAdd(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(1))
	assert.Equal(t, []int{1}, s.ToSlice())

	out := s.ToSlice()
	out[0] = 9
	assert.Equal(t, []int{1}, s.ToSlice())
}
