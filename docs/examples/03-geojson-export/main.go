package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/shapefile/pkg/shp"
)

func main() {
	// Read and index the whole file
	fs, err := shp.ReadAll("coastline.shp", shp.DefaultOpenOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Serialize as a GeoJSON FeatureCollection
	data, err := fs.MarshalGeoJSON()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("coastline.geojson", data, 0o644); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Exported %d features (%d bytes)\n", fs.Count(), len(data))
}
