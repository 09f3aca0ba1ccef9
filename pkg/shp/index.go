package shp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhconnelly/rtreego"
)

// Feature is one decoded shapefile record held by a FeatureSet.
type Feature struct {
	RecordNumber int32 // record number field from the stream
	Geometry     Geometry
	Bounds       Bounds // bounding box of the record's coordinates
}

// FeatureSet holds all records of a shapefile in memory with an R-tree
// spatial index for fast bounding-box queries.
//
// The streaming Reader is the right tool for one pass over a large file;
// FeatureSet trades memory for O(log n) repeated spatial lookups.
type FeatureSet struct {
	features []Feature
	rtree    *rtreego.Rtree
	bounds   Bounds
	header   Header
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
}

// Bounds implements the rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	b := f.feature.Bounds
	point := rtreego.Point{b.MinX, b.MinY}

	// R-tree rectangles need non-zero extents; give point features a
	// small epsilon footprint.
	const epsilon = 1e-9
	width := b.MaxX - b.MinX
	height := b.MaxY - b.MinY
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

// ReadAll opens the shapefile at path, drains every record and returns
// an indexed FeatureSet. Null records are kept (with zero bounds they
// are excluded from the spatial index but still present in Features).
func ReadAll(path string, opts OpenOptions) (*FeatureSet, error) {
	r, err := OpenWithOptions(path, opts)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fs := &FeatureSet{
		rtree:  rtreego.NewTree(2, 25, 50),
		header: r.Header(),
	}

	seenBounds := false
	for r.Advance() {
		feature := Feature{
			RecordNumber: r.RecordNumber(),
			Geometry:     r.Geometry(),
		}
		if b, ok := geometryBounds(feature.Geometry); ok {
			feature.Bounds = b
			if !seenBounds {
				fs.bounds = b
				seenBounds = true
			} else {
				fs.bounds = fs.bounds.Union(b)
			}
			fs.rtree.Insert(&indexedFeature{feature: feature})
		}
		fs.features = append(fs.features, feature)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return fs, nil
}

// Features returns all records in stream order.
func (fs *FeatureSet) Features() []Feature {
	return fs.features
}

// Count returns the number of records in the set.
func (fs *FeatureSet) Count() int {
	return len(fs.features)
}

// Bounds returns the union of all feature bounds. Unlike the file
// header's box, this is computed from the decoded coordinates.
func (fs *FeatureSet) Bounds() Bounds {
	return fs.bounds
}

// Header returns the source file's header.
func (fs *FeatureSet) Header() Header {
	return fs.header
}

// FeaturesInBounds returns the features whose bounds intersect the given
// box, via the R-tree.
func (fs *FeatureSet) FeaturesInBounds(bounds Bounds) []Feature {
	width := bounds.MaxX - bounds.MinX
	height := bounds.MaxY - bounds.MinY
	if width <= 0 {
		width = 1e-9
	}
	if height <= 0 {
		height = 1e-9
	}
	rect, err := rtreego.NewRect(rtreego.Point{bounds.MinX, bounds.MinY}, []float64{width, height})
	if err != nil {
		return nil
	}

	spatials := fs.rtree.SearchIntersect(rect)
	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		result = append(result, spatial.(*indexedFeature).feature)
	}
	return result
}

// DiscoverShapefiles finds all .shp files in a directory tree.
//
// Example:
//
//	paths, err := shp.DiscoverShapefiles("/data/gis")
//	for _, path := range paths {
//	    fs, err := shp.ReadAll(path, shp.DefaultOpenOptions())
//	    ...
//	}
func DiscoverShapefiles(root string) ([]string, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".shp") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	return paths, nil
}
