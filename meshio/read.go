package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/funneltree/mesh"
)

// Read parses the spec.md §6 text mesh format from r: a header line
// `v f e` (e may be present but is ignored), then v point lines of three
// space-separated floats, then f face lines of the form `3 a b c` (a
// literal leading 3 followed by three 0-based vertex indices).
func Read(r io.Reader) ([]mesh.Point, []mesh.Triangle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024), 1024*1024)

	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("meshio: empty input, expected header line")
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("meshio: malformed header %q, want at least \"v f\"", scanner.Text())
	}
	numVerts, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: header vertex count: %w", err)
	}
	numFaces, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, nil, fmt.Errorf("meshio: header face count: %w", err)
	}

	points := make([]mesh.Point, 0, numVerts)
	for i := 0; i < numVerts; i++ {
		if !scanner.Scan() {
			return nil, nil, fmt.Errorf("meshio: expected %d point lines, got %d", numVerts, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return nil, nil, fmt.Errorf("meshio: point line %d: want 3 coordinates, got %q", i, scanner.Text())
		}
		var p mesh.Point
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("meshio: point line %d, coord %d: %w", i, j, err)
			}
			p[j] = v
		}
		points = append(points, p)
	}

	triangles := make([]mesh.Triangle, 0, numFaces)
	for i := 0; i < numFaces; i++ {
		if !scanner.Scan() {
			return nil, nil, fmt.Errorf("meshio: expected %d face lines, got %d", numFaces, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			return nil, nil, fmt.Errorf("meshio: face line %d: want \"3 a b c\", got %q", i, scanner.Text())
		}
		if fields[0] != "3" {
			return nil, nil, fmt.Errorf("meshio: face line %d: leading count must be 3, got %q", i, fields[0])
		}
		var tri mesh.Triangle
		for j := 0; j < 3; j++ {
			v, err := strconv.Atoi(fields[j+1])
			if err != nil {
				return nil, nil, fmt.Errorf("meshio: face line %d, vertex %d: %w", i, j, err)
			}
			tri[j] = mesh.VertexIndex(v)
		}
		triangles = append(triangles, tri)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("meshio: scan: %w", err)
	}
	return points, triangles, nil
}
