package utils

import (
	"github.com/shopspring/decimal"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// FormatAmount renders an amount the way the activity trail and exports show
// money, e.g. "৳1250.50".
func FormatAmount(amount decimal.Decimal) string {
	return domain.CurrencySymbol + amount.Round(2).String()
}
