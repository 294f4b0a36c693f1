package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Asset represents an ativo as exchanged with the REST service
type Asset struct {
	Name  string  `json:"nome" yaml:"nome"`
	Value float64 `json:"valor" yaml:"valor"`
	Date  string  `json:"data" yaml:"data"`
}

// Currency is the label shown next to every value
const Currency = "BRL"

// FormattedValue returns the value with exactly two decimals ("32.50")
func (a Asset) FormattedValue() string {
	return decimal.NewFromFloat(a.Value).StringFixed(2)
}

// DisplayValue returns the value with its currency label ("32.50 BRL")
func (a Asset) DisplayValue() string {
	return a.FormattedValue() + " " + Currency
}

// ClipboardLine renders the asset as a single line suitable for pasting
func (a Asset) ClipboardLine() string {
	return fmt.Sprintf("%s\t%s\t%s", a.Name, a.FormattedValue(), a.Date)
}

// MatchesName reports whether the asset name contains term, ignoring case
func (a Asset) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(a.Name), strings.ToLower(term))
}

// TotalValue sums the values of all assets using decimal arithmetic
func TotalValue(assets []Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(decimal.NewFromFloat(a.Value))
	}
	return total
}
