package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	assert.Equal(t, int64(42), Transfer(int64(42)))
	assert.Equal(t, int64(42), Transfer(float64(42)))
	assert.Equal(t, int64(1234567890123), Transfer("1234567890123"))
	assert.Equal(t, int64(-1), Transfer("not-a-number"))
	assert.Equal(t, int64(-1), Transfer(nil))
}

func TestNextIDIsUniqueAndOrdered(t *testing.T) {
	prev := NextID()
	for i := 0; i < 1000; i++ {
		id := NextID()
		assert.Greater(t, id, prev)
		prev = id
	}
}
