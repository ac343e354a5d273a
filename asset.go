package dca

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Asset is one tracked instrument with its settings and full ledger.
type Asset struct {
	Name      string // unique, also the name of the persisted record
	Currency  Currency
	Drawdown  decimal.Decimal // percentage in [0, 100]
	Ledger    *Ledger
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAsset creates an asset with an empty ledger.
func NewAsset(name string, cur Currency, drawdown decimal.Decimal) (*Asset, error) {
	if err := ValidName(name); err != nil {
		return nil, err
	}
	if !cur.Valid() {
		return nil, fmt.Errorf("invalid currency %d: %w", int(cur), ErrInvalidArgument)
	}
	if err := ValidDrawdown(drawdown); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Asset{
		Name:      name,
		Currency:  cur,
		Drawdown:  drawdown,
		Ledger:    NewLedger(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// illegalNameChars cannot appear in a file name on common file systems.
const illegalNameChars = `<>:"/\|?*`

// ValidName returns an error wrapping ErrInvalidArgument if 'name' cannot be
// used as an asset name.
func ValidName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("asset name cannot be empty: %w", ErrInvalidArgument)
	}
	if i := strings.IndexAny(name, illegalNameChars); i >= 0 {
		return fmt.Errorf("asset name %q contains illegal character %q: %w", name, name[i], ErrInvalidArgument)
	}
	return nil
}

// Clone returns a deep copy of the asset.
func (a *Asset) Clone() *Asset {
	c := *a
	c.Ledger = NewLedger()
	c.Ledger.Restore(a.Ledger.All()...)
	return &c
}
