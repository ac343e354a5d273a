package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders md for the terminal. The raw markdown is returned if
// it cannot be rendered.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (g *Globals) printMarkdown(md string) {
	fmt.Fprint(g.Stdout, renderMarkdown(md))
}
