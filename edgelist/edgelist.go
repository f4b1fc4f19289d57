// Package edgelist loads directed graphs from whitespace-separated edge
// records, the interchange format for training and testing connection
// snapshots.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/friendrec/digraph"
)

// ErrBadRecord is returned when a record does not hold exactly two
// whitespace-separated fields (source-id, destination-id).
var ErrBadRecord = errors.New("edgelist: malformed edge record")

// Read parses one edge record per line from r into a fresh Graph.
// Fields are split on arbitrary whitespace; blank lines are skipped.
// Duplicate records collapse under the graph's set semantics. Each call
// produces an independent graph: two loads share only the id space,
// never vertex instances.
func Read(r io.Reader) (*digraph.Graph, error) {
	g := digraph.New()
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrBadRecord, line, len(fields))
		}
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read failed: %w", err)
	}

	return g, nil
}

// ReadFile opens path and loads it via Read.
func ReadFile(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %s: %w", path, err)
	}

	return g, nil
}
