package shp

// TransformFunc maps a coordinate to a new coordinate, e.g. a map
// projection. Supplied once at open and applied uniformly to every
// record for the life of the reader; it cannot be changed mid-stream.
type TransformFunc func(x, y float64) (float64, float64)

// GeometryBuilder adapts decoded geometries to a caller-defined geometry
// model. When set in OpenOptions, the built value for the current record
// is available from Reader.Value.
//
// GeoJSONBuilder is a ready-made implementation producing GeoJSON
// geometries.
type GeometryBuilder interface {
	Build(g Geometry) (interface{}, error)
}

// OpenOptions configures reading behavior.
type OpenOptions struct {
	// Transform, when non-nil, is applied to every coordinate of every
	// decoded geometry before it is returned.
	Transform TransformFunc

	// Builder, when non-nil, additionally converts each geometry to a
	// caller-defined representation exposed via Reader.Value.
	Builder GeometryBuilder

	// ValidateGeometry rejects records with non-finite coordinates or
	// holes outside their shell's envelope.
	// Default: true.
	ValidateGeometry bool
}

// DefaultOpenOptions returns open options with defaults.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		Transform:        nil,
		Builder:          nil,
		ValidateGeometry: true,
	}
}
