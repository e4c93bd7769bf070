// Package asciidoc provides the small set of AsciiDoc markup primitives the
// reference manual is built from: anchors, cross references, inline
// literals, passthrough escaping, and the fixed-format quick-reference
// table block.
//
// This is a Tier 1 (Leaf) package in the refgen architecture: stdlib only.
package asciidoc

import (
	"fmt"
	"strings"
)

// tableAttrs is the options directive shared by every quick-reference table.
const tableAttrs = `[options="header",width="75%",cols="25%,75%"]`

// tableRule delimits a table block.
const tableRule = "|=============="

// escaper covers the characters that are unsafe inside an HTML-backed
// passthrough block.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Anchor renders an anchor definition line.
func Anchor(id string) string {
	return fmt.Sprintf("[[%s]]", id)
}

// CrossRef renders an inline cross reference to an anchor with a label.
func CrossRef(id, label string) string {
	return fmt.Sprintf("<<%s,%s>>", id, label)
}

// Literal wraps text in inline-literal markup.
func Literal(s string) string {
	return fmt.Sprintf("+%s+", s)
}

// Passthrough wraps a value in a pass-through literal, escaping characters
// the downstream HTML backend would otherwise interpret.
func Passthrough(s string) string {
	return fmt.Sprintf("+pass:[%s]+", escaper.Replace(s))
}

// Table is a two-column quick-reference table block.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable creates a table with the given header row.
func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// AddRow appends one row of cells.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// String renders the table block, header row first, one line per row.
func (t *Table) String() string {
	var out []string
	out = append(out, tableAttrs)
	out = append(out, tableRule)
	out = append(out, "|"+strings.Join(t.header, "|"))
	for _, row := range t.rows {
		out = append(out, "|"+strings.Join(row, "|"))
	}
	out = append(out, tableRule)
	return strings.Join(out, "\n")
}
