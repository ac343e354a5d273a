package dca

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is one executed buy.
//
// Quantity is computed once, when the purchase is created, and stored. It is
// a historical fact that is never recomputed from Investment and Price.
type Purchase struct {
	ID         int
	Investment decimal.Decimal // money committed
	Price      decimal.Decimal // unit price paid
	Quantity   decimal.Decimal // Investment / Price at creation
	Timestamp  time.Time
}

// NewPurchase creates a purchase, with the quantity derived from investment
// and price. It returns an error wrapping ErrInvalidArgument if either value
// is not strictly positive.
func NewPurchase(id int, investment, price decimal.Decimal, on time.Time) (Purchase, error) {
	if !investment.IsPositive() {
		return Purchase{}, fmt.Errorf("investment must be positive, got %s: %w", investment, ErrInvalidArgument)
	}
	if !price.IsPositive() {
		return Purchase{}, fmt.Errorf("price must be positive, got %s: %w", price, ErrInvalidArgument)
	}
	return Purchase{
		ID:         id,
		Investment: investment,
		Price:      price,
		Quantity:   investment.Div(price),
		Timestamp:  on,
	}, nil
}

// Ledger is the ordered list of purchases of one asset.
//
// In a Ledger purchases are in the order they were added, which is not
// necessarily the order of their timestamps.
type Ledger struct {
	purchases []Purchase
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{purchases: make([]Purchase, 0)}
}

// Add creates a new purchase stamped now and appends it to the ledger.
//
// Its ID is one more than the greatest ID in the ledger, so removing the last
// purchase and adding a new one reuses the removed ID.
func (l *Ledger) Add(investment, price decimal.Decimal) (Purchase, error) {
	p, err := NewPurchase(l.nextID(), investment, price, time.Now())
	if err != nil {
		return Purchase{}, err
	}
	l.purchases = append(l.purchases, p)
	return p, nil
}

func (l *Ledger) nextID() int {
	top := 0
	for _, p := range l.purchases {
		top = max(top, p.ID)
	}
	return top + 1
}

// Restore appends purchases verbatim, keeping their ID and stored quantity.
// It is meant for decoders, no validation is made.
func (l *Ledger) Restore(ps ...Purchase) {
	l.purchases = append(l.purchases, ps...)
}

// Remove removes the purchase with this id. It reports whether it was found.
func (l *Ledger) Remove(id int) bool {
	i := slices.IndexFunc(l.purchases, func(p Purchase) bool { return p.ID == id })
	if i < 0 {
		return false
	}
	l.purchases = slices.Delete(l.purchases, i, i+1)
	return true
}

// All returns a copy of all purchases in ledger order.
func (l *Ledger) All() []Purchase {
	return slices.Clone(l.purchases)
}

// Last returns the most recently appended purchase.
func (l *Ledger) Last() (Purchase, bool) {
	if len(l.purchases) == 0 {
		return Purchase{}, false
	}
	return l.purchases[len(l.purchases)-1], true
}

// Count returns the number of purchases.
func (l *Ledger) Count() int { return len(l.purchases) }

// Clear removes all purchases.
func (l *Ledger) Clear() { l.purchases = l.purchases[:0] }
