package scangraph

// TwoTrianglesFixture builds the six-vertex reference graph used throughout
// this module's tests: two triangles {0,1,2} and {3,4,5} joined at the
// edge (2,3)-(3,4)-(3,5), i.e. vertex 3 bridges both triangles.
//
// Undirected edges: (0,1) (0,2) (1,2) (2,3) (3,4) (3,5) (4,5).
func TwoTrianglesFixture() *CSRGraph {
	g, err := NewCSRGraph(6, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{2, 3},
		{3, 4}, {3, 5}, {4, 5},
	})
	if err != nil {
		panic("scangraph: two-triangles fixture is malformed: " + err.Error())
	}
	return g
}
