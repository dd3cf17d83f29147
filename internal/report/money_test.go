package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 999,99", FormatBRL(999.99))
	assert.Equal(t, "R$ 1.234,50", FormatBRL(1234.5))
	assert.Equal(t, "R$ 12.345,60", FormatBRL(12345.6))
	assert.Equal(t, "R$ 1.000.000,01", FormatBRL(1000000.011))
	assert.Equal(t, "-R$ 10,00", FormatBRL(-10))
	assert.Equal(t, "R$ 0,00", FormatBRL(-0.001))
}
