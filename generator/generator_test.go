package generator

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNicknameFitsLimit(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		name := NicknameFrom(r)
		assert.NotEmpty(t, name)
		assert.LessOrEqual(t, utf8.RuneCountInString(name), MaxLength, name)
		assert.NotContains(t, name, "/")
	}
}

func TestAlternative(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	alt := AlternativeFrom(r, "Aray")
	assert.True(t, strings.HasPrefix(alt, "Aray"), alt)
	assert.NotEqual(t, "Aray", alt)

	long := AlternativeFrom(r, strings.Repeat("ñ", MaxLength))
	assert.Equal(t, MaxLength, utf8.RuneCountInString(long))

	assert.NotEmpty(t, AlternativeFrom(r, "   "))
}
