package domain

import "strings"

// Category is the bookkeeping post assigned to a sale entry.
type Category string

const (
	CategoryServices  Category = "prestations de services"
	CategoryDues      Category = "cotisations"
	CategoryDonations Category = "dons manuels"
	CategoryGoods     Category = "ventes de marchandises"
)

// Classify maps concatenated item descriptions to a bookkeeping category.
// The keyword priority is a business rule: services before dues before
// donations, anything else (including empty input) is a goods sale.
func Classify(items string) Category {
	lower := strings.ToLower(items)
	switch {
	case strings.Contains(lower, "formation") || strings.Contains(lower, "cérémonie"):
		return CategoryServices
	case strings.Contains(lower, "billet") || strings.Contains(lower, "cotisation") || strings.Contains(lower, "adhésion"):
		return CategoryDues
	case strings.Contains(lower, "don"):
		return CategoryDonations
	default:
		return CategoryGoods
	}
}
