package renderer

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden .md files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// sampleAsset is an asset with two purchases, with deterministic dates.
func sampleAsset(t *testing.T) *dca.Asset {
	t.Helper()
	a, err := dca.NewAsset("BTC", dca.USD, dca.D(20))
	if err != nil {
		t.Fatal(err)
	}
	a.Ledger.Restore(
		dca.Purchase{ID: 1, Investment: dca.D(100), Price: dca.D(10), Quantity: dca.D(10), Timestamp: date.MustParse("2025-01-10 12:00:00")},
		dca.Purchase{ID: 2, Investment: dca.D(200), Price: dca.D(8), Quantity: dca.D(25), Timestamp: date.MustParse("2025-02-10 12:30:00")},
	)
	a.UpdatedAt = date.MustParse("2025-02-10 12:30:00")
	return a
}

func TestRenderReport(t *testing.T) {
	r, err := NewReport(sampleAsset(t))
	if err != nil {
		t.Fatal(err)
	}
	got := RenderReport(r, ReportOptions{})

	const golden = "testdata/report.md"
	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatal(err)
	}
	if got != string(want) {
		if *fixGolden {
			if err := os.WriteFile(golden, []byte(got), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		t.Errorf("RenderReport() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderReport_Empty(t *testing.T) {
	a, err := dca.NewAsset("Gold", dca.EUR, dca.DefaultDrawdown)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewReport(a)
	if err != nil {
		t.Fatal(err)
	}
	got := RenderReport(r, ReportOptions{})
	for _, want := range []string{
		"# Gold",
		"No purchases yet.",
		"| Total invested | — |",
		"| Break-even price | — |",
		"| Next purchase price | — |",
		"| Drawdown | 15.0% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderReport() does not contain %q:\n%s", want, got)
		}
	}

	got = RenderReport(r, ReportOptions{SkipPurchases: true})
	if strings.Contains(got, "## Purchases") {
		t.Errorf("RenderReport(SkipPurchases) contains the purchases section:\n%s", got)
	}
}

func TestRenderList(t *testing.T) {
	if got, want := RenderList([]string{"BTC", "ETH"}), "# Assets\n\n- BTC\n- ETH\n"; got != want {
		t.Errorf("RenderList() = %q, want %q", got, want)
	}
	if got, want := RenderList(nil), "# Assets\n\nNo assets yet.\n"; got != want {
		t.Errorf("RenderList(nil) = %q, want %q", got, want)
	}
}

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		v    string
		c    dca.Currency
		want string
	}{
		{"100", dca.USD, "100,00 $"},
		{"1234.5", dca.PLN, "1 234,50 zł"},
		{"1234567.891", dca.EUR, "1 234 567,89 €"},
		{"0.05", dca.GBP, "0,05 £"},
		{"0.125", dca.USD, "0,12 $"},
		{"0.135", dca.USD, "0,14 $"},
		{"0.00012345", dca.BTC, "0,00012345 ₿"},
		{"1500.1", dca.ETH, "1 500,10000000 Ξ"},
	}
	for _, tc := range testCases {
		if got := FormatMoney(decimal.NewNullDecimal(dca.D(tc.v)), tc.c); got != tc.want {
			t.Errorf("FormatMoney(%s, %s) = %q, want %q", tc.v, tc.c.Code(), got, tc.want)
		}
	}
	if got := FormatMoney(decimal.NullDecimal{}, dca.USD); got != Absent {
		t.Errorf("FormatMoney(absent) = %q, want %q", got, Absent)
	}
}

func TestFormatQuantity(t *testing.T) {
	testCases := []struct {
		v, want string
	}{
		{"10", "10"},
		{"0", "0"},
		{"2.5", "2,5"},
		{"0.002", "0,002"},
		{"33.3333333333333333", "33,33333333"},
		{"0.000000001", "0"},
		{"1200", "1200"},
	}
	for _, tc := range testCases {
		if got := FormatQuantity(decimal.NewNullDecimal(dca.D(tc.v))); got != tc.want {
			t.Errorf("FormatQuantity(%s) = %q, want %q", tc.v, got, tc.want)
		}
	}
	if got := FormatQuantity(decimal.NullDecimal{}); got != Absent {
		t.Errorf("FormatQuantity(absent) = %q, want %q", got, Absent)
	}
}

func TestFormatPercent(t *testing.T) {
	for v, want := range map[string]string{"15": "15.0%", "12.5": "12.5%", "0": "0.0%", "33.33": "33.3%"} {
		if got := FormatPercent(dca.D(v)); got != want {
			t.Errorf("FormatPercent(%s) = %q, want %q", v, got, want)
		}
	}
}

func TestHTML(t *testing.T) {
	r, err := NewReport(sampleAsset(t))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := HTML(&b, "BTC <report>", RenderReport(r, ReportOptions{})); err != nil {
		t.Fatal(err)
	}
	got := b.String()
	for _, want := range []string{
		"<title>BTC &lt;report&gt;</title>",
		"<h1>BTC</h1>",
		"<table>",
		"8,57 $</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, got)
		}
	}
}
