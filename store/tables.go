package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// An asset file holds two logical tables whatever its encoding: the settings
// as (parameter, value) rows, and the purchases.
//
// Table, column and parameter labels are the ones of existing asset files and
// must not change.
const (
	SettingsTable  = "Settings"
	PurchasesTable = "Purchases"

	colParameter = "Параметр"
	colValue     = "Значение"

	keyCurrency = "Валюта"
	keyDrawdown = "Процент просадки"
	keyCreated  = "Дата создания"
	keyUpdated  = "Дата обновления"

	colIndex      = "№"
	colDate       = "Дата"
	colInvestment = "Сумма вложений"
	colPrice      = "Цена покупки"
	colQuantity   = "Количество"
)

var (
	settingsColumns = []string{colParameter, colValue}
	settingKeys     = []string{keyCurrency, keyDrawdown, keyCreated, keyUpdated}
	purchaseColumns = []string{colIndex, colDate, colInvestment, colPrice, colQuantity}
)

// tables is the encoding independent content of an asset file.
type tables struct {
	settings    map[string]string   // parameter -> value
	purchases   []map[string]string // column -> value, in file order
	settingsErr error               // the settings table could not be read
	purchaseErr error               // the purchases table could not be read
	problems    []error             // other decoding problems, e.g. a bad line
}

// toTables flattens an asset.
func toTables(a *dca.Asset) tables {
	t := tables{
		settings: map[string]string{
			keyCurrency: a.Currency.Code(),
			keyDrawdown: a.Drawdown.String(),
			keyCreated:  date.Format(a.CreatedAt),
			keyUpdated:  date.Format(a.UpdatedAt),
		},
	}
	// The index column holds the purchase ID, which is the 1-based display
	// index as long as no purchase has been removed.
	for _, p := range a.Ledger.All() {
		t.purchases = append(t.purchases, map[string]string{
			colIndex:      strconv.Itoa(p.ID),
			colDate:       date.Format(p.Timestamp),
			colInvestment: p.Investment.String(),
			colPrice:      p.Price.String(),
			colQuantity:   p.Quantity.String(),
		})
	}
	return t
}

// settingRows returns the settings in their canonical order.
func (t tables) settingRows() [][]string {
	rows := make([][]string, 0, len(settingKeys))
	for _, k := range settingKeys {
		rows = append(rows, []string{k, t.settings[k]})
	}
	return rows
}

// purchaseRows returns the purchases as rows ordered like purchaseColumns.
func (t tables) purchaseRows() [][]string {
	rows := make([][]string, 0, len(t.purchases))
	for _, p := range t.purchases {
		row := make([]string, len(purchaseColumns))
		for i, col := range purchaseColumns {
			row[i] = p[col]
		}
		rows = append(rows, row)
	}
	return rows
}

// asset rebuilds an asset from its tables.
//
// Malformed values never abort: they are replaced by defaults or the row is
// skipped, and the problem is reported in the returned error, wrapping
// dca.ErrMalformedRecord. The asset is always non nil.
func (t tables) asset(name string, now time.Time) (*dca.Asset, error) {
	problems := append([]error(nil), t.problems...)
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	a := &dca.Asset{
		Name:      name,
		Currency:  dca.DefaultCurrency,
		Drawdown:  dca.DefaultDrawdown,
		Ledger:    dca.NewLedger(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if t.settingsErr != nil {
		report("cannot read %s table: %w", SettingsTable, t.settingsErr)
	} else {
		if v, ok := t.setting(keyCurrency); !ok {
			report("missing currency, using %s", a.Currency.Code())
		} else if c, err := dca.ParseCurrency(v); err != nil {
			report("unknown currency %q, using %s", v, a.Currency.Code())
		} else {
			a.Currency = c
		}

		if v, ok := t.setting(keyDrawdown); !ok {
			report("missing drawdown, using %s", a.Drawdown)
		} else if d, err := parseDecimal(v); err != nil || dca.ValidDrawdown(d) != nil {
			report("invalid drawdown %q, using %s", v, a.Drawdown)
		} else {
			a.Drawdown = d
		}

		a.CreatedAt = t.settingTime(keyCreated, now, report)
		a.UpdatedAt = t.settingTime(keyUpdated, now, report)
	}

	if t.purchaseErr != nil {
		report("cannot read %s table: %w", PurchasesTable, t.purchaseErr)
	}
	for i, row := range t.purchases {
		// blank index rows are tolerated, they are usually trailing rows.
		if strings.TrimSpace(row[colIndex]) == "" {
			continue
		}
		p, err := parsePurchase(row, now)
		if err != nil {
			report("skipping purchase row %d: %w", i+1, err)
			continue
		}
		a.Ledger.Restore(p)
	}

	if len(problems) > 0 {
		return a, fmt.Errorf("asset %q: %w: %w", name, dca.ErrMalformedRecord, errors.Join(problems...))
	}
	return a, nil
}

func (t tables) setting(key string) (string, bool) {
	v, ok := t.settings[key]
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (t tables) settingTime(key string, now time.Time, report func(string, ...any)) time.Time {
	v, ok := t.setting(key)
	if !ok {
		report("missing %q, using now", key)
		return now
	}
	ts, err := parseTime(v)
	if err != nil {
		report("invalid %q, using now: %w", key, err)
		return now
	}
	return ts
}

func parsePurchase(row map[string]string, now time.Time) (dca.Purchase, error) {
	index, err := parseDecimal(row[colIndex])
	if err != nil || !index.IsInteger() || !index.IsPositive() {
		return dca.Purchase{}, fmt.Errorf("invalid index %q", row[colIndex])
	}
	p := dca.Purchase{ID: int(index.IntPart()), Timestamp: now}
	for col, dst := range map[string]*decimal.Decimal{
		colInvestment: &p.Investment,
		colPrice:      &p.Price,
		colQuantity:   &p.Quantity,
	} {
		if *dst, err = parseDecimal(row[col]); err != nil {
			return dca.Purchase{}, fmt.Errorf("invalid %q: %w", col, err)
		}
	}
	if v := strings.TrimSpace(row[colDate]); v != "" {
		// an unreadable date is not worth losing the purchase.
		if ts, err := parseTime(v); err == nil {
			p.Timestamp = ts
		}
	}
	return p, nil
}

// parseDecimal parses a stored number. Commas are accepted as the decimal
// separator for hand edited files.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, errors.New("empty value")
	}
	return decimal.NewFromString(s)
}

// parseTime parses a stored timestamp, either as text or as a spreadsheet
// serial date (date typed cells).
func parseTime(s string) (time.Time, error) {
	t, err := date.Parse(s)
	if err == nil {
		return t, nil
	}
	serial, derr := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if derr != nil {
		return time.Time{}, err
	}
	st, derr := excelize.ExcelDateToTime(serial, false)
	if derr != nil {
		return time.Time{}, err
	}
	// serial dates are wall clock times.
	return time.Date(st.Year(), st.Month(), st.Day(), st.Hour(), st.Minute(), st.Second(), 0, time.Local), nil
}
