package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// minorUnitsPerEuro converts processor amounts (cents) to euros.
const minorUnitsPerEuro = 100

// AmountFormatter renders minor-unit amounts as locale-aware currency
// strings, e.g. 12345 -> "123,45 €" under the French locale.
type AmountFormatter struct {
	printer *message.Printer
}

// NewAmountFormatter builds a formatter for the given locale.
func NewAmountFormatter(tag language.Tag) *AmountFormatter {
	return &AmountFormatter{printer: message.NewPrinter(tag)}
}

// NewFrenchAmountFormatter builds the formatter used by the report:
// two fixed decimals, French separators, trailing euro sign.
func NewFrenchAmountFormatter() *AmountFormatter {
	return NewAmountFormatter(language.French)
}

// Format converts minor units to a major-unit currency string.
func (f *AmountFormatter) Format(minorUnits int64) string {
	major := decimal.NewFromInt(minorUnits).Div(decimal.NewFromInt(minorUnitsPerEuro))
	value, _ := major.Float64()
	return f.printer.Sprintf("%.2f €", value)
}
