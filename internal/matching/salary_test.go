package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SalaryFigure(t *testing.T) {
	cases := []struct {
		display string
		value   int64
	}{
		{"₹12,00,000", 1200000},
		{"₹8,50,000 - ₹11,00,000", 850000},
		{"$120,000/yr", 120000},
		{"no data", 0},
		{"", 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.value, SalaryFigure(c.display), "display %q", c.display)
	}
}
