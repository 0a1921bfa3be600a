package specbin_test

import (
	"fmt"

	"github.com/cwbudde/algo-binned/specbin"
)

func ExampleLogEdges() {
	edges, _ := specbin.LogEdges(100, 1600, 4)
	for _, e := range edges {
		fmt.Printf("%.0f ", e)
	}
	fmt.Println()

	// Output:
	// 100 200 400 800 1600
}
