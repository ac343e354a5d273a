// Package docs embeds the dca manual. Each topic is a markdown file named
// after it, the readme being the index of the others.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Index is the topic listing the other topics.
const Index = "readme"

// All stands for every topic but the index.
const All = "*"

// Topics returns the sorted names of the topics, the index excluded.
func Topics() []string {
	files, _ := fs.Glob(manual, "*.md")
	var names []string
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != Index {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Read returns the named topics, separated by a blank line. [All] expands to
// every topic and no name at all means the index.
func Read(names ...string) (string, error) {
	if len(names) == 0 {
		names = []string{Index}
	}
	var parts []string
	for _, name := range names {
		if name == All {
			all, err := Read(Topics()...)
			if err != nil {
				return "", err
			}
			parts = append(parts, all)
			continue
		}
		content, err := manual.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("topic %q not found", name)
		}
		parts = append(parts, strings.TrimRight(string(content), "\n"))
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}
