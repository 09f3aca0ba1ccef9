package decoder

// TransformFunc maps a coordinate to a new coordinate. Supplied once at
// open time and applied uniformly to every decoded record for the life
// of the reader; it cannot be changed mid-stream.
type TransformFunc func(x, y float64) (float64, float64)

// stageFunc is one post-decode pipeline stage. Stages run in order over
// the freshly decoded geometry; a stage error fails that advance.
type stageFunc func(g *Geometry) error

// transformStage builds the stage applying fn to every coordinate of the
// geometry in place. The record's envelope is transformed alongside so
// the two stay consistent.
func transformStage(fn TransformFunc, env *Envelope) stageFunc {
	return func(g *Geometry) error {
		g.eachCoordinate(func(c *Coordinate) {
			c.X, c.Y = fn(c.X, c.Y)
		})
		if !env.Empty() {
			x0, y0 := fn(env.MinX, env.MinY)
			x1, y1 := fn(env.MaxX, env.MaxY)
			env.Init()
			env.Expand(x0, y0)
			env.Expand(x1, y1)
		}
		return nil
	}
}

// validateStage builds the stage rejecting geometries with non-finite
// coordinates or holes outside their shell's envelope.
func validateStage() stageFunc {
	return func(g *Geometry) error {
		return validateGeometry(g)
	}
}
