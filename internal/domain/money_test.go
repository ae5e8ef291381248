package domain_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stripe-accounting-export/internal/domain"
)

func TestAmountFormatter_Format(t *testing.T) {
	amounts := domain.NewFrenchAmountFormatter()

	tests := []struct {
		name       string
		minorUnits int64
		expected   string
	}{
		{name: "cents only", minorUnits: 50, expected: "0,50 €"},
		{name: "zero", minorUnits: 0, expected: "0,00 €"},
		{name: "round amount", minorUnits: 2000, expected: "20,00 €"},
		{name: "amount with cents", minorUnits: 12345, expected: "123,45 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, amounts.Format(tt.minorUnits))
		})
	}
}

func TestAmountFormatter_Format_Thousands(t *testing.T) {
	amounts := domain.NewFrenchAmountFormatter()

	// 1234567 cents = 12 345,67 €. The exact grouping character depends
	// on the CLDR tables, so only the round trip is asserted here.
	got := amounts.Format(1234567)
	assert.True(t, strings.HasSuffix(got, " €"))
	assert.InDelta(t, 12345.67, parseAmount(t, got), 0.001)
}

// parseAmount converts a formatted currency string back to a number,
// stripping the euro sign and locale separators.
func parseAmount(t *testing.T, formatted string) float64 {
	t.Helper()
	s := strings.TrimSuffix(formatted, " €")
	for _, sep := range []string{" ", "\u00a0", "\u202f"} {
		s = strings.ReplaceAll(s, sep, "")
	}
	s = strings.ReplaceAll(s, ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	assert.NoError(t, err)
	return value
}
