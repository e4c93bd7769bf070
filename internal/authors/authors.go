// Package authors maintains the marker-delimited authors block inside an
// existing document. Contribution records (one author name per commit) are
// reduced to frequency counts, sorted ascending by count, and written as a
// bullet list between the start and end sentinel lines; everything outside
// the markers passes through unchanged.
package authors

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/schmitthub/refgen/internal/fsio"
)

// ErrMarkerIntegrity is returned when the start or end sentinel is missing,
// appears more than once, or the pair is mis-ordered. The target file is
// never modified in that case.
var ErrMarkerIntegrity = errors.New("authors marker integrity")

// Markers are the sentinel lines delimiting the rewritten region. They are
// matched against whitespace-trimmed document lines.
type Markers struct {
	Start string
	End   string
}

// Count is the number of contributions recorded for one author.
type Count struct {
	Name string
	N    int
}

// Tally reduces contribution records to per-author counts, ordered by
// ascending count. Authors with equal counts keep their first-seen order,
// so the output is deterministic for a given record sequence.
func Tally(records []string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, name := range records {
		if i, ok := index[name]; ok {
			counts[i].N++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, Count{Name: name, N: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N < counts[j].N
	})
	return counts
}

// Rewrite replaces the marker-bounded region of the file at path with one
// bullet line per author. The rewrite is atomic: output is assembled in
// full, validated, and swapped into place; on any error the original file
// is left untouched. An advisory lock on path+".lock" guards against
// concurrent invocations against the same document.
func Rewrite(path string, counts []Count, m Markers) error {
	return fsio.WithFileLock(path, func() error {
		return rewriteLocked(path, counts, m)
	})
}

func rewriteLocked(path string, counts []Count, m Markers) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	start, end, err := findMarkers(lines, m)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := make([]string, 0, len(lines)+len(counts))
	out = append(out, lines[:start+1]...)
	for _, c := range counts {
		out = append(out, "* "+c.Name)
	}
	out = append(out, lines[end:]...)

	return fsio.AtomicWriteFile(path, []byte(strings.Join(out, "\n")), info.Mode().Perm())
}

// findMarkers locates the single start and end sentinel, enforcing that
// each appears exactly once and in order.
func findMarkers(lines []string, m Markers) (start, end int, err error) {
	start, end = -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case m.Start:
			if start >= 0 {
				return 0, 0, fmt.Errorf("%w: duplicate start marker %q", ErrMarkerIntegrity, m.Start)
			}
			start = i
		case m.End:
			if end >= 0 {
				return 0, 0, fmt.Errorf("%w: duplicate end marker %q", ErrMarkerIntegrity, m.End)
			}
			end = i
		}
	}
	switch {
	case start < 0:
		return 0, 0, fmt.Errorf("%w: start marker %q not found", ErrMarkerIntegrity, m.Start)
	case end < 0:
		return 0, 0, fmt.Errorf("%w: end marker %q not found", ErrMarkerIntegrity, m.End)
	case end < start:
		return 0, 0, fmt.Errorf("%w: end marker %q precedes start marker %q", ErrMarkerIntegrity, m.End, m.Start)
	}
	return start, end, nil
}
