package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"1234.56", "$1,234.56"},
		{"1234567.8", "$1,234,567.80"},
		{"999", "$999.00"},
		{"1000", "$1,000.00"},
		{"-2841", "-$2,841.00"},
		{"0.005", "$0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatUSD(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got)
		})
	}
}
