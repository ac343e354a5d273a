package renderer

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

// Absent is displayed in place of a value that cannot be computed.
const Absent = "—"

// FormatMoney formats an amount in currency c: a space as the thousands
// separator, a comma as the decimal separator and the symbol last, e.g.
// "1 234,50 $". Crypto currencies have 8 fraction digits, others 2.
func FormatMoney(v decimal.NullDecimal, c dca.Currency) string {
	if !v.Valid {
		return Absent
	}
	fraction := 2
	if c.IsCrypto() {
		fraction = 8
	}
	minor := v.Decimal.Shift(int32(fraction)).RoundBank(0).IntPart()
	return money.NewFormatter(fraction, ",", " ", c.Symbol(), "1 $").Format(minor)
}

// FormatQuantity formats a quantity with up to 8 fraction digits, trailing
// zeros removed, and a comma as the decimal separator.
func FormatQuantity(v decimal.NullDecimal) string {
	if !v.Valid {
		return Absent
	}
	s := v.Decimal.StringFixedBank(8)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return strings.ReplaceAll(s, ".", ",")
}

// FormatPercent formats a percentage with one fraction digit, e.g. "15.0%".
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixedBank(1) + "%"
}

// FormatDate formats a timestamp the way it is persisted.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Absent
	}
	return date.Format(t)
}
