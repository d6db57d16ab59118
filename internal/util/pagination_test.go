package util_test

import (
	"testing"

	"storefront/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	offset, limit := util.Calculate(1, 10)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)

	offset, limit = util.Calculate(3, 25)
	assert.Equal(t, 50, offset)
	assert.Equal(t, 25, limit)

	// Zero and negative inputs fall back to page 1, size 10.
	offset, limit = util.Calculate(0, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)

	offset, limit = util.Calculate(-5, -1)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)

	// Page size is capped at 100.
	_, limit = util.Calculate(1, 5000)
	assert.Equal(t, 100, limit)
}
