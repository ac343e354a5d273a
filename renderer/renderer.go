package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/dca"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// Report is everything displayed about an asset.
type Report struct {
	dca.Summary
	Purchases []dca.Purchase
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReport computes the report of an asset.
func NewReport(a *dca.Asset) (*Report, error) {
	s, err := dca.Summarize(a)
	if err != nil {
		return nil, err
	}
	return &Report{
		Summary:   s,
		Purchases: a.Ledger.All(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}

// ReportOptions selects the sections of a report.
type ReportOptions struct {
	SkipPurchases bool // Do not render the purchases table.
}

// RenderReport renders the report to a markdown string.
func RenderReport(r *Report, opts ReportOptions) string {
	partials := map[string]string{
		"report_title":    "report_title.md",
		"report_results":  "report_results.md",
		"report_planning": "report_planning.md",
	}
	// An empty file name results in an empty template.
	if !opts.SkipPurchases {
		partials["report_purchases"] = "report_purchases.md"
	} else {
		partials["report_purchases"] = ""
	}
	return renderTemplate("report", "report.md", partials, r)
}

// RenderList renders the list of asset names to a markdown string.
func RenderList(names []string) string {
	return renderTemplate("list", "list.md", nil, names)
}

var funcs = template.FuncMap{
	"money":    moneyFunc,
	"quantity": quantityFunc,
	"percent":  FormatPercent,
	"date":     FormatDate,
}

func moneyFunc(c dca.Currency, v any) string { return FormatMoney(nullable(v), c) }
func quantityFunc(v any) string { return FormatQuantity(nullable(v)) }

// nullable accepts both the decimal types found in templates.
func nullable(v any) decimal.NullDecimal {
	switch v := v.(type) {
	case decimal.Decimal:
		return decimal.NewNullDecimal(v)
	case decimal.NullDecimal:
		return v
	default:
		return decimal.NullDecimal{}
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
