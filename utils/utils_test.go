package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "0", FormatRupiah(0))
	assert.Equal(t, "999", FormatRupiah(999))
	assert.Equal(t, "1.000", FormatRupiah(1000))
	assert.Equal(t, "150.000", FormatRupiah(150000))
	assert.Equal(t, "1.850.000", FormatRupiah(1850000))
	assert.Equal(t, "-25.000", FormatRupiah(-25000))
}
