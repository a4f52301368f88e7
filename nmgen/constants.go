package nmgen

// Contour build flags.
// See BuildContours.
const (
	// ContourTessWallEdges tessellates solid (impassable) edges during
	// contour simplification.
	ContourTessWallEdges int32 = 0x01

	// ContourTessAreaEdges tessellates edges between areas during contour
	// simplification.
	ContourTessAreaEdges int32 = 0x02
)

// ContourRegMask is applied to the region id field of contour vertices in
// order to extract the region id. The region id field of a vertex may have
// several flags applied to it, so the field value can't be used directly.
// See Contour.Verts, Contour.RVerts.
const ContourRegMask int32 = 0xffff

// BorderReg marks a heightfield region as a border region. Spans belonging to
// such a region are part of the non-navigable padding around the field and
// never produce contours.
const BorderReg uint16 = 0x8000

// Flags applied to the region id field of contour vertices.
const (
	// BorderVertex marks a vertex sitting on a tile border; it must be kept
	// so that contours across tile seams line up.
	BorderVertex int32 = 0x10000

	// AreaBorder marks a vertex whose leading edge crosses into another
	// area.
	AreaBorder int32 = 0x20000
)

// MeshNullIdx indicates an invalid index within a mesh; it terminates a
// polygon's vertex list.
// Note: This does not necessarily indicate an error.
const MeshNullIdx uint16 = 0xffff

// NullArea represents the null area.
// When a data element is given this value it is considered to no longer be
// assigned to a usable area. (E.g. It is unwalkable.)
const NullArea uint8 = 0

// WalkableArea is the default area id used to indicate a walkable span.
// This is also the maximum allowed area id.
const WalkableArea uint8 = 63

// NotConnected is the value returned by GetCon if the specified direction is
// not connected to another span. (Has no neighbor.)
const NotConnected int32 = 0x3f

// maxContourIter bounds the contour walk. Legitimate input stays far below
// it; reaching it means the span connectivity is corrupt.
const maxContourIter int32 = 40000
