package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stripe-accounting-export/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		items    string
		expected domain.Category
	}{
		{
			name:     "empty description defaults to goods",
			items:    "",
			expected: domain.CategoryGoods,
		},
		{
			name:     "training is a service",
			items:    "Formation avancée",
			expected: domain.CategoryServices,
		},
		{
			name:     "ceremony is a service",
			items:    "Cérémonie du printemps",
			expected: domain.CategoryServices,
		},
		{
			name:     "ticket counts as dues",
			items:    "Billet concert",
			expected: domain.CategoryDues,
		},
		{
			name:     "membership fee counts as dues",
			items:    "Cotisation annuelle",
			expected: domain.CategoryDues,
		},
		{
			name:     "membership counts as dues",
			items:    "Adhésion 2024",
			expected: domain.CategoryDues,
		},
		{
			name:     "donation",
			items:    "Don libre",
			expected: domain.CategoryDonations,
		},
		{
			name:     "plain product is goods",
			items:    "Produit A",
			expected: domain.CategoryGoods,
		},
		{
			name:     "matching is case-insensitive",
			items:    "FORMATION DÉBUTANT",
			expected: domain.CategoryServices,
		},
		{
			name:     "services keyword wins over dues keyword",
			items:    "Billet pour la formation",
			expected: domain.CategoryServices,
		},
		{
			name:     "dues keyword wins over donation keyword",
			items:    "Cotisation et don",
			expected: domain.CategoryDues,
		},
		{
			name:     "keyword inside concatenated descriptions",
			items:    "Produit A, Don de soutien, Produit B",
			expected: domain.CategoryDonations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Classify(tt.items))
		})
	}
}
