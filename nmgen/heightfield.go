package nmgen

import "github.com/arl/gogeo/f32/d3"

// CompactCell provides information on the content of a cell column in a
// compact heightfield.
type CompactCell struct {
	Index uint32 // Index to the first span in the column.
	Count uint8  // Number of spans in the column.
}

// CompactSpan represents a span of unobstructed space within a compact
// heightfield.
type CompactSpan struct {
	Y   uint16 // The lower extent of the span. (Measured from the heightfield's base.)
	Reg uint16 // The id of the region the span belongs to. (Or zero if not in a region.)
	Con uint32 // Packed neighbor connection data.
	H   uint8  // The height of the span. (Measured from Y.)
}

// CompactHeightfield is a compact, static heightfield representing
// unobstructed space.
type CompactHeightfield struct {
	Width      int32         // The width of the heightfield. (Along the x-axis in cell units.)
	Height     int32         // The height of the heightfield. (Along the z-axis in cell units.)
	SpanCount  int32         // The number of spans in the heightfield.
	BorderSize int32         // The AABB border size used during the build of the field.
	MaxRegions uint16        // The maximum region id of any span within the field.
	BMin       d3.Vec3       // The minimum bounds in world space. [(x, y, z)]
	BMax       d3.Vec3       // The maximum bounds in world space. [(x, y, z)]
	Cs         float32       // The size of each cell. (On the xz-plane.)
	Ch         float32       // The height of each cell. (The minimum increment along the y-axis.)
	Cells      []CompactCell // Array of cells. [Size: Width*Height]
	Spans      []CompactSpan // Array of spans. [Size: SpanCount]
	Areas      []uint8       // Array containing area id data. [Size: SpanCount]
}
