// Package syntax reconstructs a command's usage line from its parameter
// metadata and positional-argument bounds.
//
// This is a Tier 1 (Leaf) package in the refgen architecture: it imports
// only stdlib and the registry data model.
package syntax

import (
	"fmt"
	"strings"

	"github.com/schmitthub/refgen/internal/registry"
)

// Usage is a reconstructed command invocation.
//
// Tokens holds the command name followed by one token per documented
// parameter: `<name>` for required positions, `[<name>]` for optional ones.
// Defaults maps parameter names to their declared default values, including
// parameters that produced no token.
type Usage struct {
	Tokens   []string
	Defaults map[string]string
}

// String renders the usage line with single-space separators.
func (u Usage) String() string {
	return strings.Join(u.Tokens, " ")
}

// Reconstruct walks the parameters in declaration order, keeping a 1-based
// positional index that elided parameters do not consume. A position within
// MinArgs renders required; a position within MaxArgs (or any position when
// MaxArgs is nil) renders optional; a position beyond MaxArgs is omitted
// from the usage line entirely. The last case is not an error: the
// parameter exists in code but is unreachable within the declared bounds.
func Reconstruct(name string, params []registry.Param, minArgs int, maxArgs *int) Usage {
	u := Usage{
		Tokens:   []string{name},
		Defaults: make(map[string]string),
	}
	i := 1
	for _, p := range params {
		if p.Default != nil {
			u.Defaults[p.Name] = *p.Default
		}
		if p.Elide {
			continue
		}
		switch {
		case i <= minArgs:
			u.Tokens = append(u.Tokens, fmt.Sprintf("<%s>", p.Name))
		case maxArgs == nil || i <= *maxArgs:
			u.Tokens = append(u.Tokens, fmt.Sprintf("[<%s>]", p.Name))
		}
		i++
	}
	return u
}
