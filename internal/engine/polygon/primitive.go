package polygon

// Primitive is the kind of primitive a run of vertices is assembled into.
type Primitive int

// Primitive kinds. Only the triangle family can be drawn by the polygon
// renderer; the others exist so that callers sharing a primitive enum with
// line and point renderers get a clean rejection instead of a bad draw.
const (
	Points Primitive = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	TrianglesAdjacency
	TriangleStripAdjacency
)

var primitiveNames = [...]string{
	Points:                 "points",
	Lines:                  "lines",
	LineStrip:              "line_strip",
	LineLoop:               "line_loop",
	Triangles:              "triangles",
	TriangleStrip:          "triangle_strip",
	TriangleFan:            "triangle_fan",
	TrianglesAdjacency:     "triangles_adjacency",
	TriangleStripAdjacency: "triangle_strip_adjacency",
}

// String returns the snake_case name of the primitive.
func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return "unknown"
	}
	return primitiveNames[p]
}

// IsPolygon reports whether p assembles filled triangles.
func (p Primitive) IsPolygon() bool {
	switch p {
	case Triangles, TriangleStrip, TriangleFan, TrianglesAdjacency, TriangleStripAdjacency:
		return true
	}
	return false
}

// validTupleSize reports whether n components per vertex is supported:
// 2 planar (x, y), 3 spatial (x, y, z) or 4 homogeneous (x, y, z, w).
func validTupleSize(n int) bool {
	return n == 2 || n == 3 || n == 4
}
