// Package docstring parses the structured documentation text attached to a
// command handler into its sections.
//
// This is a Tier 1 (Leaf) package in the refgen architecture:
//   - It imports ONLY stdlib packages
//   - It does NOT import any internal packages
//
// The expected format is a short description on the first line(s), a blank
// line, an optional long description, and an optional "Args:" section with
// one "name: description" entry per argument. "Emit:" and "Raise:" sections
// and everything after a bare "//" line are skipped until the next "Args:"
// header. Parsing stops at the first blank line inside the argument section.
package docstring

import (
	"fmt"
	"strings"
)

// state is the position of the parser inside the docstring grammar.
type state int

const (
	stateShort state = iota
	stateDesc
	stateDescHidden
	stateMisc
	stateArgStart
	stateArgInside
)

const (
	argsMarker  = "Args:"
	emitMarker  = "Emit:"
	raiseMarker = "Raise:"
	hideMarker  = "//"

	// continuationColumn is the indentation column separating a continuation
	// line from the start of a new argument entry inside the "Args:" section.
	continuationColumn = 4
)

// Arg holds the accumulated description lines for one documented argument.
// Lines are stored in input order; Desc joins them with single spaces.
type Arg struct {
	Name  string
	Lines []string
}

// Desc returns the space-joined description for the argument.
func (a Arg) Desc() string {
	return strings.Join(a.Lines, " ")
}

// Doc is the structured form of a parsed docstring.
type Doc struct {
	short []string
	long  []string
	args  []Arg
	index map[string]int
}

// Short returns the short description, with multiple leading non-blank lines
// joined by single spaces.
func (d *Doc) Short() string {
	return strings.Join(d.short, " ")
}

// Long returns the long description paragraph. Blank lines inside the
// description body are dropped, not treated as paragraph breaks.
func (d *Doc) Long() string {
	return strings.Join(d.long, " ")
}

// Args returns the documented arguments in the order they appeared.
func (d *Doc) Args() []Arg {
	return d.args
}

// Arg looks up one documented argument by name.
func (d *Doc) Arg(name string) (Arg, bool) {
	i, ok := d.index[name]
	if !ok {
		return Arg{}, false
	}
	return d.args[i], true
}

// ParseError reports a malformed line inside the "Args:" section, such as an
// argument header without a colon. It is scoped to the docstring being
// parsed; callers decide whether to skip the owning entry or abort.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed argument line %q: missing colon", e.Line)
}

// Parse runs the section state machine over the raw docstring text.
//
// The returned Doc is complete even when the text never reaches an "Args:"
// header; in that case Args is empty. A *ParseError is returned for a
// malformed argument header, with the already-parsed sections discarded.
func Parse(text string) (*Doc, error) {
	d := &Doc{index: make(map[string]int)}
	cur := stateShort
	curArg := -1

	for _, line := range strings.Split(text, "\n") {
		switch cur {
		case stateShort:
			if line == "" {
				cur = stateDesc
			} else {
				d.short = append(d.short, strings.TrimSpace(line))
			}
		case stateDesc:
			switch {
			case strings.HasPrefix(line, argsMarker):
				cur = stateArgStart
			case strings.HasPrefix(line, emitMarker), strings.HasPrefix(line, raiseMarker):
				cur = stateMisc
			case strings.TrimSpace(line) == hideMarker:
				cur = stateDescHidden
			case strings.TrimSpace(line) != "":
				d.long = append(d.long, strings.TrimSpace(line))
			}
		case stateMisc, stateDescHidden:
			// Section bodies are intentionally not captured; only the next
			// "Args:" header is recognized.
			if strings.HasPrefix(line, argsMarker) {
				cur = stateArgStart
			}
		case stateArgStart:
			i, err := d.openArg(line)
			if err != nil {
				return nil, err
			}
			curArg = i
			cur = stateArgInside
		case stateArgInside:
			if line == "" {
				// The first blank line inside the argument section ends
				// parsing; the remainder of the input is not processed.
				return d, nil
			}
			if len(line) > continuationColumn && line[continuationColumn] == ' ' {
				d.args[curArg].Lines = append(d.args[curArg].Lines, strings.TrimSpace(line))
				continue
			}
			i, err := d.openArg(line)
			if err != nil {
				return nil, err
			}
			curArg = i
		}
	}
	return d, nil
}

// openArg splits an argument header line on its first colon and opens a new
// entry for the named argument, returning its index. A repeated name resets
// the existing entry in place, keeping its original position.
func (d *Doc) openArg(line string) (int, error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return 0, &ParseError{Line: line}
	}
	name := strings.TrimSpace(line[:idx])
	frag := strings.TrimSpace(line[idx+1:])
	if i, ok := d.index[name]; ok {
		d.args[i].Lines = []string{frag}
		return i, nil
	}
	d.args = append(d.args, Arg{Name: name, Lines: []string{frag}})
	d.index[name] = len(d.args) - 1
	return len(d.args) - 1, nil
}
