package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInts(t *testing.T) {
	assert.Equal(t, "", Ints(nil))
	assert.Equal(t, "4", Ints([]int{4}))
	assert.Equal(t, "0, 1, -2", Ints([]int{0, 1, -2}))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, "11", Distance(11, true))
	assert.Equal(t, "∞", Distance(0, false))
}
