package homology_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flagcx/flagio"
	"github.com/katalvlaran/flagcx/homology"
)

// ExampleExtractPersistence loads the canonical 3-vertex .flag file and
// shows how the max edge length trims the filtration.
func ExampleExtractPersistence() {
	const file = "dim 0\n1.0 2.0 3.0\ndim 1\n0 1 5.0\n"

	m, err := flagio.Load(strings.NewReader(file))
	if err != nil {
		fmt.Println("load:", err)
		return
	}

	set, _ := homology.ExtractPersistence(m, 10)
	fmt.Println("vertices:", set.Vertices)
	fmt.Println("edges within 10:", set.Edges)

	set, _ = homology.ExtractPersistence(m, 4)
	fmt.Println("edges within 4:", len(set.Edges))

	// Output:
	// vertices: [1 2 3]
	// edges within 10: [{0 1 5}]
	// edges within 4: 0
}

// ExampleFiltrations lists the closed registry of filtration algorithms.
func ExampleFiltrations() {
	fmt.Println(strings.Join(homology.Filtrations(), " "))

	// Output:
	// dimension max max3 max_plus_one pmean pmoment product remove_edges sum vertex_degree zero
}
