package smartledger

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ledger currency. Amounts are stored as int64 minor units
// of this currency.
const Currency = money.CNY

// FormatAmount renders a minor-unit amount in the ledger currency's
// display format, symbol included.
func FormatAmount(minor int64) string {
	return money.New(minor, Currency).Display()
}

// FormatSignedAmount is FormatAmount with an explicit sign for positive
// values, for signed report columns.
func FormatSignedAmount(minor int64) string {
	if minor > 0 {
		return "+" + FormatAmount(minor)
	}
	return FormatAmount(minor)
}

// AmountString returns the major-unit decimal text of a minor-unit amount
// without trailing zeros, e.g. 1250 -> "12.5". This is the form users type
// and search for.
func AmountString(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-2).String()
}

// AmountText returns the major-unit decimal text with the full currency
// fraction, e.g. 1250 -> "12.50".
func AmountText(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-2).StringFixed(2)
}
