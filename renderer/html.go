package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}</body>
</html>
`))

// HTML converts a markdown report into a standalone HTML page.
func HTML(w io.Writer, title, md string) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return fmt.Errorf("could not convert report to HTML: %w", err)
	}
	return page.Execute(w, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
}
