// Package edgelist reads the plain-text edge-list format cmd/scan accepts:
// one "u v" pair per line, whitespace-separated, vertex ids 0-based and
// dense. Blank lines and lines starting with '#' are skipped.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-scan/pkg/scangraph"
)

// Read parses an edge-list file into a CSRGraph. numVertices is inferred
// as one plus the largest vertex id seen.
func Read(path string) (*scangraph.CSRGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an edge list from r. Exported separately from Read so tests
// and callers with an in-memory reader don't need a file on disk.
func Parse(r io.Reader) (*scangraph.CSRGraph, error) {
	var edges [][2]int
	maxVertex := -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edgelist: line %d: expected 2 fields, got %d", lineNo, len(fields))
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
		edges = append(edges, [2]int{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	return scangraph.NewCSRGraph(maxVertex+1, edges)
}
