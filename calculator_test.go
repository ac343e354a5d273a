package dca

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func purchases(t *testing.T, pairs ...[2]string) []Purchase {
	t.Helper()
	l := NewLedger()
	for _, p := range pairs {
		if _, err := l.Add(D(p[0]), D(p[1])); err != nil {
			t.Fatal(err)
		}
	}
	return l.All()
}

func TestBreakEven(t *testing.T) {
	if got := BreakEven(nil); got.Valid {
		t.Errorf("BreakEven(empty) = %s, want absent", got.Decimal)
	}

	single := purchases(t, [2]string{"100", "10"})
	if got := BreakEven(single); !got.Valid || !got.Decimal.Equal(D(10)) {
		t.Errorf("BreakEven(single) = %v, want 10", got)
	}

	ps := purchases(t, [2]string{"100", "10"}, [2]string{"200", "8"}, [2]string{"50", "12.5"})
	want := TotalInvestment(ps).Div(TotalQuantity(ps))
	if got := BreakEven(ps); !got.Valid || !got.Decimal.Equal(want) {
		t.Errorf("BreakEven() = %v, want %s", got, want)
	}
	// 350 invested for 10+25+4 = 39 units.
	if !TotalInvestment(ps).Equal(D(350)) || !TotalQuantity(ps).Equal(D(39)) {
		t.Errorf("totals = %s, %s want 350, 39", TotalInvestment(ps), TotalQuantity(ps))
	}

	zero := []Purchase{{ID: 1, Investment: D(10), Price: D(1), Quantity: D(0)}}
	if got := BreakEven(zero); got.Valid {
		t.Errorf("BreakEven(zero quantity) = %s, want absent", got.Decimal)
	}
}

// TestTotals_NoDrift asserts that many small purchases add up exactly.
func TestTotals_NoDrift(t *testing.T) {
	var ps []Purchase
	for i := range 1000 {
		ps = append(ps, Purchase{ID: i + 1, Investment: D("0.1"), Price: D(1), Quantity: D("0.1")})
	}
	if got := TotalInvestment(ps); !got.Equal(D(100)) {
		t.Errorf("TotalInvestment() = %s, want 100", got)
	}
	if got := BreakEven(ps); !got.Decimal.Equal(D(1)) {
		t.Errorf("BreakEven() = %s, want 1", got.Decimal)
	}
}

func TestNextPurchasePrice(t *testing.T) {
	testCases := []struct {
		last     decimal.NullDecimal
		drawdown string
		want     decimal.NullDecimal
	}{
		{some(D(100)), "15", some(D(85))},
		{some(D(100)), "0", some(D(100))},
		{some(D(100)), "100", some(D(0))},
		{some(D("50000")), "12.5", some(D("43750"))},
		{none, "15", none},
		{some(D(0)), "15", none},
		{some(D(-1)), "15", none},
	}
	for _, tc := range testCases {
		got, err := NextPurchasePrice(tc.last, D(tc.drawdown))
		if err != nil {
			t.Errorf("NextPurchasePrice(%v, %s) unexpected error: %v", tc.last, tc.drawdown, err)
			continue
		}
		if got.Valid != tc.want.Valid || !got.Decimal.Equal(tc.want.Decimal) {
			t.Errorf("NextPurchasePrice(%v, %s) = %v, want %v", tc.last, tc.drawdown, got, tc.want)
		}
	}
}

func TestNextPurchasePrice_InvalidDrawdown(t *testing.T) {
	for _, d := range []string{"150", "-1", "100.01"} {
		_, err := NextPurchasePrice(some(D(100)), D(d))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NextPurchasePrice(100, %s) error = %v, want ErrInvalidArgument", d, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	a, err := NewAsset("sum", BTC, D(20))
	if err != nil {
		t.Fatal(err)
	}
	s, err := Summarize(a)
	if err != nil {
		t.Fatal(err)
	}
	if s.Count != 0 || s.TotalInvestment.Valid || s.BreakEven.Valid || s.NextPrice.Valid {
		t.Errorf("Summarize(empty) = %+v, want only absent values", s)
	}

	a.Ledger.Add(D(100), D(10))
	a.Ledger.Add(D(200), D(8))
	s, err = Summarize(a)
	if err != nil {
		t.Fatal(err)
	}
	if s.Count != 2 || !s.TotalInvestment.Decimal.Equal(D(300)) || !s.TotalQuantity.Decimal.Equal(D(35)) {
		t.Errorf("Summarize() totals = %+v", s)
	}
	if !s.LastPrice.Decimal.Equal(D(8)) || !s.NextPrice.Decimal.Equal(D("6.4")) {
		t.Errorf("Summarize() last/next = %s/%s, want 8/6.4", s.LastPrice.Decimal, s.NextPrice.Decimal)
	}
	if s.Currency != BTC || s.Asset != "sum" {
		t.Errorf("Summarize() identity = %s %s", s.Asset, s.Currency)
	}
}
