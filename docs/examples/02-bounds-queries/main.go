package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/shapefile/pkg/shp"
)

func main() {
	// Read and index the whole file
	fs, err := shp.ReadAll("coastline.shp", shp.DefaultOpenOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Features: %d\n", fs.Count())

	// Define viewport (Boston Harbor area)
	viewport := shp.Bounds{
		MinX: -71.1, MaxX: -71.0,
		MinY: 42.3, MaxY: 42.4,
	}

	// Query R-tree index for visible features (O(log n))
	features := fs.FeaturesInBounds(viewport)

	fmt.Printf("Visible features: %d\n", len(features))

	for _, feature := range features {
		fmt.Printf("  record %d: %s %+v\n",
			feature.RecordNumber,
			feature.Geometry.Type,
			feature.Bounds)
	}
}
