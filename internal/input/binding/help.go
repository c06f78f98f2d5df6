package binding

import (
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dshills/linebind/internal/input/chars"
)

// HelpRow is one line of a binding listing.
type HelpRow struct {
	// Sequence is the bound raw sequence in escaped display form,
	// e.g. `\C-u` or `\e\C-?`.
	Sequence string

	// Key is the name the binding was declared with.
	Key string

	// Action is the bound action.
	Action string

	// Description is the binding's documentation, if any.
	Description string

	// Category groups rows for display.
	Category string
}

// ListBindings returns a display row for every bound sequence, ordered
// by raw sequence. Sequences are rendered with chars.EscapeSequence.
func ListBindings(reg *Registry) []HelpRow {
	resolved := reg.Resolved()

	rows := make([]HelpRow, 0, len(resolved))
	for _, res := range resolved {
		rows = append(rows, HelpRow{
			Sequence:    chars.EscapeSequence(res.Sequence),
			Key:         res.Key,
			Action:      res.Action,
			Description: res.Description,
			Category:    res.Category,
		})
	}
	return rows
}

// FormatHelp renders the registry's bindings as aligned text grouped by
// category. Rows without a category are grouped under "Other".
func FormatHelp(reg *Registry) string {
	rows := ListBindings(reg)
	if len(rows) == 0 {
		return ""
	}

	byCategory := make(map[string][]HelpRow)
	for _, row := range rows {
		cat := row.Category
		if cat == "" {
			cat = "Other"
		}
		byCategory[cat] = append(byCategory[cat], row)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)

	for i, cat := range categories {
		if i > 0 {
			w.Write([]byte("\n"))
		}
		w.Write([]byte(cat + "\n"))
		for _, row := range byCategory[cat] {
			line := "  " + row.Sequence + "\t" + row.Action + "\t" + row.Description + "\n"
			w.Write([]byte(line))
		}
	}
	w.Flush()

	return sb.String()
}
