// Package manual assembles the AsciiDoc reference manual from a command and
// settings registry: a fixed header block, the settings reference, and the
// commands reference, in that order.
//
// This is a Tier 2 package: it composes the docstring, syntax, and asciidoc
// leaf packages over read-only registry data. It performs no I/O; the
// caller owns the output file.
package manual

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/schmitthub/refgen/internal/asciidoc"
	"github.com/schmitthub/refgen/internal/docstring"
	"github.com/schmitthub/refgen/internal/registry"
	"github.com/schmitthub/refgen/internal/syntax"
)

// debugPreamble introduces the debugging command class.
const debugPreamble = "These commands are mainly intended for debugging. They are " +
	"hidden if the application was started without the `--debug`-flag."

// Config carries the document identity rendered into the header block.
type Config struct {
	Title      string
	Maintainer string
	Homepage   string

	// CommandPrefix is prepended to every usage line inside its literal
	// wrapping, matching how commands are invoked in the documented
	// application (e.g. ":" for a command-line prompt).
	CommandPrefix string
}

// Skip records a command entry excluded from the manual because its
// docstring failed to parse. Generation continues for all other entries.
type Skip struct {
	Command string
	Err     error
}

// Generator renders one complete reference manual.
type Generator struct {
	cfg   Config
	reg   *registry.Registry
	skips []Skip
}

// New creates a Generator over an already-populated registry.
func New(cfg Config, reg *registry.Registry) *Generator {
	return &Generator{cfg: cfg, reg: reg}
}

// Skips returns the command entries dropped during the last Generate call.
func (g *Generator) Skips() []Skip {
	return g.skips
}

// Generate renders the full document. On error the partial output is
// discarded; the caller never sees an incomplete manual.
func (g *Generator) Generate() ([]byte, error) {
	g.skips = nil

	var buf bytes.Buffer
	g.writeHeader(&buf)
	if err := g.writeSettings(&buf); err != nil {
		return nil, err
	}
	g.writeCommands(&buf)
	return buf.Bytes(), nil
}

func (g *Generator) writeHeader(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "= %s\n", g.cfg.Title)
	fmt.Fprintf(buf, "%s\n", g.cfg.Maintainer)
	buf.WriteString(":toc:\n")
	fmt.Fprintf(buf, ":homepage: %s\n", g.cfg.Homepage)
}

// === Commands reference ===

// cmdEntry pairs a command with its parsed docstring and reconstructed
// usage syntax.
type cmdEntry struct {
	cmd   registry.Command
	doc   *docstring.Doc
	usage syntax.Usage
}

func (g *Generator) writeCommands(buf *bytes.Buffer) {
	var normal, hidden, debug []cmdEntry
	for _, cmd := range g.reg.Commands {
		doc, err := docstring.Parse(cmd.Doc)
		if err != nil {
			g.skips = append(g.skips, Skip{Command: cmd.Name, Err: err})
			continue
		}
		entry := cmdEntry{
			cmd:   cmd,
			doc:   doc,
			usage: syntax.Reconstruct(cmd.Name, cmd.Params, cmd.MinArgs, cmd.MaxArgs),
		}
		switch {
		case cmd.Hidden:
			hidden = append(hidden, entry)
		case cmd.Debug:
			debug = append(debug, entry)
		default:
			normal = append(normal, entry)
		}
	}
	sortEntries(normal)
	sortEntries(hidden)
	sortEntries(debug)

	buf.WriteString("\n")
	buf.WriteString("== Commands\n")
	buf.WriteString("\n")
	buf.WriteString("=== Normal commands\n")
	g.writeCommandClass(buf, normal)
	buf.WriteString("\n")
	buf.WriteString("=== Hidden commands\n")
	g.writeCommandClass(buf, hidden)
	buf.WriteString("\n")
	buf.WriteString("=== Debugging commands\n")
	buf.WriteString(debugPreamble + "\n")
	buf.WriteString("\n")
	g.writeCommandClass(buf, debug)
}

func sortEntries(entries []cmdEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].cmd.Name < entries[j].cmd.Name
	})
}

func (g *Generator) writeCommandClass(buf *bytes.Buffer, entries []cmdEntry) {
	buf.WriteString(".Quick reference\n")
	buf.WriteString(commandQuickRef(entries) + "\n")
	for _, entry := range entries {
		buf.WriteString(g.commandDoc(entry) + "\n")
	}
}

func commandQuickRef(entries []cmdEntry) string {
	table := asciidoc.NewTable("Command", "Description")
	for _, entry := range entries {
		name := entry.cmd.Name
		table.AddRow(asciidoc.CrossRef("cmd-"+name, name), entry.doc.Short())
	}
	return table.String()
}

// commandDoc renders one detail block: anchor, heading, usage line, the
// parsed descriptions, and the argument bullet list with defaults.
func (g *Generator) commandDoc(entry cmdEntry) string {
	name := entry.cmd.Name
	output := []string{
		asciidoc.Anchor("cmd-" + name),
		"==== " + name,
		asciidoc.Literal(g.cfg.CommandPrefix + entry.usage.String()),
		"",
		entry.doc.Short(),
		"",
		entry.doc.Long(),
	}
	if args := entry.doc.Args(); len(args) > 0 {
		output = append(output, "")
		for _, arg := range args {
			item := fmt.Sprintf("* %s: %s", asciidoc.Literal(arg.Name), arg.Desc())
			if def, ok := entry.usage.Defaults[arg.Name]; ok {
				item += fmt.Sprintf(" (default: %s)", asciidoc.Literal(def))
			}
			output = append(output, item)
		}
		output = append(output, "")
	}
	output = append(output, "")
	return strings.Join(output, "\n")
}

// === Settings reference ===

func (g *Generator) writeSettings(buf *bytes.Buffer) error {
	buf.WriteString("\n")
	buf.WriteString("== Settings\n")
	buf.WriteString(settingQuickRef(g.reg.Sections) + "\n")
	for _, sect := range g.reg.Sections {
		buf.WriteString("\n")
		fmt.Fprintf(buf, "=== %s\n", sect.Name)
		buf.WriteString(sect.Description + "\n")
		if !sect.Described() {
			continue
		}
		for _, opt := range sect.Options {
			if err := writeOption(buf, sect.Name, opt); err != nil {
				return err
			}
		}
	}
	return nil
}

func settingQuickRef(sections []registry.Section) string {
	var out []string
	for _, sect := range sections {
		if !sect.Described() {
			continue
		}
		out = append(out, fmt.Sprintf(".Quick reference for section ``%s''", sect.Name))
		table := asciidoc.NewTable("Setting", "Description")
		for _, opt := range sect.Options {
			id := fmt.Sprintf("setting-%s-%s", sect.Name, opt.Name)
			table.AddRow(asciidoc.CrossRef(id, opt.Name), opt.Description)
		}
		out = append(out, table.String())
	}
	return strings.Join(out, "\n")
}

func writeOption(buf *bytes.Buffer, section string, opt registry.Option) error {
	if opt.Description == "" {
		return fmt.Errorf("settings section %q: option %q: %w",
			section, opt.Name, registry.ErrMissingDescription)
	}
	buf.WriteString("\n")
	buf.WriteString(asciidoc.Anchor(fmt.Sprintf("setting-%s-%s", section, opt.Name)) + "\n")
	fmt.Fprintf(buf, "==== %s\n", opt.Name)
	buf.WriteString(opt.Description + "\n")
	buf.WriteString("\n")
	if len(opt.ValidValues) > 0 {
		buf.WriteString("Valid values:\n")
		buf.WriteString("\n")
		for _, vv := range opt.ValidValues {
			if vv.Description != "" {
				fmt.Fprintf(buf, " * %s: %s\n", asciidoc.Literal(vv.Value), vv.Description)
			} else {
				fmt.Fprintf(buf, " * %s\n", asciidoc.Literal(vv.Value))
			}
		}
		buf.WriteString("\n")
	}
	if opt.Default != "" {
		fmt.Fprintf(buf, "Default: %s\n", asciidoc.Passthrough(opt.Default))
	} else {
		buf.WriteString("Default: empty\n")
	}
	return nil
}
