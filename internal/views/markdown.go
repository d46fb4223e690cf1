package views

import (
	"fmt"
	"strings"
)

// Markdown renders a view as a markdown document.
func Markdown(v View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", v.Title)

	for _, s := range v.Sections {
		if s.Kind == SectionHeader {
			if s.Subtitle != "" {
				fmt.Fprintf(&b, "_%s_\n\n", s.Subtitle)
			}
			continue
		}

		if s.Heading != "" {
			fmt.Fprintf(&b, "### %s\n\n", s.Heading)
		}
		for _, f := range s.Fields {
			fmt.Fprintf(&b, "- **%s:** %s\n", f.Label, f.Value)
		}
		if len(s.Fields) > 0 {
			b.WriteString("\n")
		}
		for _, item := range s.Items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		if len(s.Items) > 0 {
			b.WriteString("\n")
		}
		if s.Affirmation != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Affirmation)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
