package store

import (
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxCodec stores the two tables in two sheets of a workbook.
type xlsxCodec struct{}

func (xlsxCodec) ext() string { return ".xlsx" }

func (xlsxCodec) encode(w io.Writer, t tables) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	// The default sheet becomes the purchases, so that it opens first.
	if err := f.SetSheetName(f.GetSheetName(0), PurchasesTable); err != nil {
		return err
	}
	if _, err := f.NewSheet(SettingsTable); err != nil {
		return err
	}
	if err := writeSheet(f, PurchasesTable, purchaseColumns, t.purchaseRows()); err != nil {
		return err
	}
	if err := writeSheet(f, SettingsTable, settingsColumns, t.settingRows()); err != nil {
		return err
	}
	return f.Write(w)
}

// writeSheet writes the header and the rows. The header is written even
// without rows.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	for r, row := range append([][]string{header}, rows...) {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if r > 0 && isNumber(v) {
				// numbers are kept as their exact decimal text, a float
				// would lose digits.
				err = f.SetCellDefault(sheet, cell, v)
			} else {
				err = f.SetCellStr(sheet, cell, v)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func isNumber(v string) bool {
	_, err := parseDecimal(v)
	return err == nil && !strings.Contains(v, ",")
}

func (xlsxCodec) decode(r io.Reader) (tables, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return tables{}, err
	}
	defer f.Close()

	var t tables

	// Raw values: numbers as stored, not as displayed.
	opts := excelize.Options{RawCellValue: true}

	if rows, err := f.GetRows(SettingsTable, opts); err != nil {
		t.settingsErr = err
	} else {
		t.settings = make(map[string]string)
		cols := columnIndex(rows, settingsColumns)
		for _, row := range body(rows) {
			if k := strings.TrimSpace(cell(row, cols[colParameter])); k != "" {
				t.settings[k] = cell(row, cols[colValue])
			}
		}
	}

	if rows, err := f.GetRows(PurchasesTable, opts); err != nil {
		t.purchaseErr = err
	} else {
		cols := columnIndex(rows, purchaseColumns)
		for _, row := range body(rows) {
			p := make(map[string]string, len(purchaseColumns))
			for _, col := range purchaseColumns {
				p[col] = cell(row, cols[col])
			}
			t.purchases = append(t.purchases, p)
		}
	}
	return t, nil
}

// columnIndex locates each column by its header label. Columns whose label is
// not found keep their canonical position.
func columnIndex(rows [][]string, columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}
	for i, col := range columns {
		idx[col] = i
		if j := slices.IndexFunc(header, func(h string) bool { return strings.TrimSpace(h) == col }); j >= 0 {
			idx[col] = j
		}
	}
	return idx
}

// body returns the rows after the header.
func body(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// cell returns row[i] or "" for a short row, GetRows trims trailing empty
// cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
