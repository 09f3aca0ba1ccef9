package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/shapefile/pkg/shp"
)

func main() {
	// Open shapefile
	r, err := shp.Open("coastline.shp")
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	// Print file info
	h := r.Header()
	fmt.Printf("Shape type: %s\n", h.ShapeType)
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		h.Box.MinX, h.Box.MinY, h.Box.MaxX, h.Box.MaxY)

	// Iterate records
	count := 0
	for r.Advance() {
		g := r.Geometry()
		fmt.Printf("  record %d: %s\n", r.RecordNumber(), g.Type)
		count++
	}
	if err := r.Err(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Records: %d\n", count)
}
