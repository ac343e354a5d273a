package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// jsonlCodec stores the tables as JSON lines, one object per line. The
// 'table' property tells which table the line belongs to:
//
//	{"table":"settings","currency":"USD","drawdown":15,"created":"2025-08-01 10:00:00","updated":"2025-08-02 09:30:00"}
//	{"table":"purchase","index":1,"date":"2025-08-01 10:05:00","investment":100,"price":10,"quantity":10}
//
// Numbers are written unquoted with all their digits.
type jsonlCodec struct{}

const (
	lineSettings = "settings"
	linePurchase = "purchase"
)

// jsonKeys maps the logical columns to their JSON property.
var jsonKeys = map[string]string{
	keyCurrency:   "currency",
	keyDrawdown:   "drawdown",
	keyCreated:    "created",
	keyUpdated:    "updated",
	colIndex:      "index",
	colDate:       "date",
	colInvestment: "investment",
	colPrice:      "price",
	colQuantity:   "quantity",
}

// numeric columns are written as JSON numbers.
var numeric = map[string]bool{
	keyDrawdown:   true,
	colIndex:      true,
	colInvestment: true,
	colPrice:      true,
	colQuantity:   true,
}

func (jsonlCodec) ext() string { return ".jsonl" }

func (jsonlCodec) encode(w io.Writer, t tables) error {
	if err := encodeLine(w, lineSettings, settingKeys, t.settings); err != nil {
		return err
	}
	for _, p := range t.purchases {
		if err := encodeLine(w, linePurchase, purchaseColumns, p); err != nil {
			return err
		}
	}
	return nil
}

// encodeLine writes one JSON object with the keys in the 'columns' order,
// followed by a newline.
func encodeLine(w io.Writer, table string, columns []string, values map[string]string) error {
	r := newRecord(table)
	for _, col := range columns {
		if numeric[col] {
			r.number(jsonKeys[col], values[col])
		} else {
			r.text(jsonKeys[col], values[col])
		}
	}
	line, err := r.line()
	if err != nil {
		return fmt.Errorf("failed to marshal %s line: %w", table, err)
	}
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("failed to write %s line: %w", table, err)
	}
	return nil
}

func (jsonlCodec) decode(r io.Reader) (tables, error) {
	var t tables
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		dec := json.NewDecoder(bytes.NewReader(lineBytes))
		dec.UseNumber()
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			t.problems = append(t.problems, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}

		switch table, _ := obj["table"].(string); table {
		case lineSettings:
			// the last settings line wins.
			t.settings = columns(obj, settingKeys)
		case linePurchase:
			t.purchases = append(t.purchases, columns(obj, purchaseColumns))
		default:
			t.problems = append(t.problems, fmt.Errorf("line %d: unknown table %q", lineNum, table))
		}
	}
	if err := scanner.Err(); err != nil {
		return tables{}, fmt.Errorf("error reading from input: %w", err)
	}
	if t.settings == nil {
		t.settingsErr = fmt.Errorf("no %s line", lineSettings)
	}
	return t, nil
}

// columns converts a decoded line back to logical columns.
func columns(obj map[string]any, cols []string) map[string]string {
	row := make(map[string]string, len(cols))
	for _, col := range cols {
		switch v := obj[jsonKeys[col]].(type) {
		case nil:
		case string:
			row[col] = v
		case json.Number:
			row[col] = v.String()
		default:
			row[col] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
	return row
}
