package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{"empty", nil, 30, [][]int{}},
		{"exact", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"remainder", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"larger than input", []int{1, 2}, 30, [][]int{{1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunk(tt.items, tt.size))
		})
	}
}

func TestToPointer(t *testing.T) {
	p := ToPointer("aray")
	assert.Equal(t, "aray", *p)
}

func TestPrettyPrint(t *testing.T) {
	var buf bytes.Buffer
	err := PrettyPrint(&buf, map[string]int{"rio": 3})
	assert.NoError(t, err)
	assert.Equal(t, "{\n    \"rio\": 3\n}\n", buf.String())

	assert.Error(t, PrettyPrint(&buf, make(chan int)))
}
