package nmgen

// Settings contains the user-facing settings of a contour build. Cell sizes
// and EdgeMaxLen are expressed in world units, EdgeMaxError in voxels;
// derived voxel values live in Config.
type Settings struct {
	// Rasterization settings.
	CellSize   float32 `yaml:"cellSize"`
	CellHeight float32 `yaml:"cellHeight"`

	// Polygonization.
	EdgeMaxLen   int32   `yaml:"edgeMaxLen"`
	EdgeMaxError float32 `yaml:"edgeMaxError"`

	// Contour tessellation.
	TessWallEdges bool `yaml:"tessWallEdges"`
	TessAreaEdges bool `yaml:"tessAreaEdges"`
}

// NewSettings returns a new Settings struct filled with default values.
func NewSettings() Settings {
	return Settings{
		CellSize:      0.3,
		CellHeight:    0.2,
		EdgeMaxLen:    12,
		EdgeMaxError:  1.3,
		TessWallEdges: true,
		TessAreaEdges: false,
	}
}

// BuildFlags returns the contour build flags selected by the settings.
func (s Settings) BuildFlags() int32 {
	var flags int32
	if s.TessWallEdges {
		flags |= ContourTessWallEdges
	}
	if s.TessAreaEdges {
		flags |= ContourTessAreaEdges
	}
	return flags
}
