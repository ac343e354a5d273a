package dca

import (
	"fmt"
	"strings"
)

// Currency is one of the fixed set of currencies an asset can be tracked in.
//
// The zero value is not a valid currency.
type Currency int

const (
	PLN Currency = iota + 1
	USD
	EUR
	GBP
	BTC
	ETH
)

// DefaultCurrency is the currency of a new asset.
const DefaultCurrency = USD

type currencyInfo struct {
	code   string // persisted
	symbol string // displayed
	name   string
	crypto bool
}

var currencies = map[Currency]currencyInfo{
	PLN: {"PLN", "zł", "Polski złoty", false},
	USD: {"USD", "$", "US Dollar", false},
	EUR: {"EUR", "€", "Euro", false},
	GBP: {"GBP", "£", "British Pound", false},
	BTC: {"BTC", "₿", "Bitcoin", true},
	ETH: {"ETH", "Ξ", "Ethereum", true},
}

// Currencies returns all the supported currencies in declaration order.
func Currencies() []Currency { return []Currency{PLN, USD, EUR, GBP, BTC, ETH} }

// ParseCurrency returns the currency whose persistence code is 'code'.
// Matching ignores case and surrounding spaces.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies() {
		if currencies[c].code == code {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown currency %q: %w", code, ErrInvalidArgument)
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	_, ok := currencies[c]
	return ok
}

// Code is the stable identifier used to persist the currency.
func (c Currency) Code() string { return currencies[c].code }

// Symbol is the display symbol, like "$" or "zł".
func (c Currency) Symbol() string { return currencies[c].symbol }

// Name is the currency's full name.
func (c Currency) Name() string { return currencies[c].name }

// IsCrypto reports whether c is a crypto currency.
func (c Currency) IsCrypto() bool { return currencies[c].crypto }

// String returns "symbol (code)", e.g. "$ (USD)".
func (c Currency) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Currency(%d)", int(c))
	}
	return c.Symbol() + " (" + c.Code() + ")"
}

// MarshalText implements encoding.TextMarshaler using the persistence code.
func (c Currency) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid currency %d", int(c))
	}
	return []byte(c.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Currency) UnmarshalText(text []byte) error {
	v, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
