package nmgen

import "github.com/arl/gogeo/f32/d3"

// Config specifies the derived, per-build configuration of a contour build.
type Config struct {
	// The width of the field along the x-axis.
	// [Limit: >= 0] [Units: vx]
	Width int32

	// The height of the field along the z-axis.
	// [Limit: >= 0] [Units: vx]
	Height int32

	// The size of the non-navigable border around the heightfield.
	// [Limit: >=0] [Units: vx]
	BorderSize int32

	// The xz-plane cell size to use for fields.
	// [Limit: > 0] [Units: wu]
	Cs float32

	// The y-axis cell size to use for fields.
	// [Limit: > 0] [Units: wu]
	Ch float32

	// The minimum bounds of the field's AABB. [(x, y, z)] [Units: wu]
	BMin [3]float32

	// The maximum bounds of the field's AABB. [(x, y, z)] [Units: wu]
	BMax [3]float32

	// The maximum allowed length for contour edges along the border of the
	// mesh. [Limit: >=0] [Units: vx]
	MaxEdgeLen int32

	// The maximum distance a simplified contour's border edges should
	// deviate from the original raw contour. [Limit: >=0] [Units: vx]
	MaxSimplificationError float32
}

// NewConfig derives a build configuration from user settings and the bounds
// of the area to build.
func NewConfig(s Settings, bmin, bmax d3.Vec3) Config {
	var cfg Config
	cfg.Cs = s.CellSize
	cfg.Ch = s.CellHeight
	cfg.MaxEdgeLen = int32(float32(s.EdgeMaxLen) / s.CellSize)
	cfg.MaxSimplificationError = s.EdgeMaxError
	copy(cfg.BMin[:], bmin)
	copy(cfg.BMax[:], bmax)
	cfg.Width, cfg.Height = CalcGridSize(bmin, bmax, cfg.Cs)
	return cfg
}

// GridCellCount returns the total number of cells of the configured grid.
func (cfg *Config) GridCellCount() int32 {
	return cfg.Width * cfg.Height
}
