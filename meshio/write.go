package meshio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/funneltree/mesh"
)

// Write emits points and triangles in the spec.md §6 text format. The edge
// count field in the header is computed as E = 3F/2 (each face has three
// edges, each shared by two faces in a closed triangle mesh) rather than
// tracked separately, since spec §6
// says it "may be ignored" by a reader.
func Write(w io.Writer, points []mesh.Point, triangles []mesh.Triangle) error {
	edges := len(triangles) * 3 / 2
	if _, err := fmt.Fprintf(w, "%d %d %d\n", len(points), len(triangles), edges); err != nil {
		return fmt.Errorf("meshio: write header: %w", err)
	}
	for i, p := range points {
		if _, err := fmt.Fprintf(w, "%g %g %g\n", p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("meshio: write point %d: %w", i, err)
		}
	}
	for i, tri := range triangles {
		if _, err := fmt.Fprintf(w, "3 %d %d %d\n", tri[0], tri[1], tri[2]); err != nil {
			return fmt.Errorf("meshio: write face %d: %w", i, err)
		}
	}
	return nil
}
