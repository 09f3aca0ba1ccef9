package shp

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	geojson "github.com/paulmach/go.geojson"
)

// GeoJSON converts the geometry to its GeoJSON equivalent.
//
// Shapefile ring winding is inverted on the way out: RFC 7946 wants
// counterclockwise exterior rings and clockwise holes, the opposite of
// the shapefile convention. Null geometries convert to nil.
func (g Geometry) GeoJSON() *geojson.Geometry {
	switch g.Type {
	case GeometryPoint:
		return geojson.NewPointGeometry([]float64{g.Point.X, g.Point.Y})
	case GeometryMultiPoint:
		return geojson.NewMultiPointGeometry(coordSlice(g.Points)...)
	case GeometryLineString:
		return geojson.NewLineStringGeometry(coordSlice(g.Line))
	case GeometryMultiLineString:
		lines := make([][][]float64, len(g.Lines))
		for i, line := range g.Lines {
			lines[i] = coordSlice(line)
		}
		return geojson.NewMultiLineStringGeometry(lines...)
	case GeometryPolygon:
		if len(g.Polygons) == 0 {
			return geojson.NewPolygonGeometry([][][]float64{})
		}
		return geojson.NewPolygonGeometry(polygonRings(g.Polygons[0]))
	case GeometryMultiPolygon:
		polys := make([][][][]float64, len(g.Polygons))
		for i, poly := range g.Polygons {
			polys[i] = polygonRings(poly)
		}
		return geojson.NewMultiPolygonGeometry(polys...)
	default:
		return nil
	}
}

// polygonRings lists a polygon's rings GeoJSON-style: exterior first,
// then holes, each reversed to RFC 7946 winding.
func polygonRings(p Polygon) [][][]float64 {
	rings := make([][][]float64, 0, 1+len(p.Holes))
	rings = append(rings, coordSlice(p.Shell.Reversed()))
	for _, hole := range p.Holes {
		rings = append(rings, coordSlice(hole.Reversed()))
	}
	return rings
}

func coordSlice(cs []Coordinate) [][]float64 {
	out := make([][]float64, len(cs))
	for i, c := range cs {
		out[i] = []float64{c.X, c.Y}
	}
	return out
}

// GeoJSONBuilder is a GeometryBuilder producing *geojson.Geometry
// values, for callers that consume GeoJSON types directly:
//
//	r, err := shp.OpenWithOptions(path, shp.OpenOptions{
//	    Builder:          shp.GeoJSONBuilder{},
//	    ValidateGeometry: true,
//	})
//	for r.Advance() {
//	    g := r.Value().(*geojson.Geometry)
//	    ...
//	}
type GeoJSONBuilder struct{}

// Build implements GeometryBuilder.
func (GeoJSONBuilder) Build(g Geometry) (interface{}, error) {
	return g.GeoJSON(), nil
}

// FeatureCollection converts the set to a GeoJSON feature collection.
// Each feature carries its shapefile record number as the "record"
// property; null-geometry records are skipped.
func (fs *FeatureSet) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range fs.features {
		geometry := f.Geometry.GeoJSON()
		if geometry == nil {
			continue
		}
		feature := geojson.NewFeature(geometry)
		feature.ID = strconv.FormatInt(int64(f.RecordNumber), 10)
		feature.SetProperty("record", f.RecordNumber)
		fc.AddFeature(feature)
	}
	return fc
}

// MarshalGeoJSON serializes the set as a GeoJSON FeatureCollection
// document.
func (fs *FeatureSet) MarshalGeoJSON() ([]byte, error) {
	data, err := json.Marshal(fs.FeatureCollection())
	if err != nil {
		return nil, fmt.Errorf("marshal feature collection: %w", err)
	}
	return data, nil
}
