package nmgen

import (
	"github.com/arl/assertgo"
	"github.com/arl/gogeo/f32/d3"
)

// The 4 cardinal directions are enumerated 0 to 3, clockwise, starting from
// west: 0 = west, 1 = north, 2 = east, 3 = south.
var (
	xOffset = [4]int32{-1, 0, 1, 0}
	yOffset = [4]int32{0, 1, 0, -1}
)

// GetDirOffsetX returns the width (x-axis) offset to apply to a cell position
// to move in the given direction.
func GetDirOffsetX(dir int32) int32 {
	return xOffset[dir&0x3]
}

// GetDirOffsetY returns the height (z-axis) offset to apply to a cell
// position to move in the given direction.
func GetDirOffsetY(dir int32) int32 {
	return yOffset[dir&0x3]
}

// SetCon sets the neighbor connection data of s for the given direction.
//  dir   The direction to set. [Limits: 0 <= value < 4]
//  i     The index of the neighbor span, or NotConnected.
func SetCon(s *CompactSpan, dir, i int32) {
	shift := uint32(dir * 6)
	con := s.Con
	s.Con = (con &^ (0x3f << shift)) | (uint32(i&0x3f) << shift)
}

// GetCon returns the neighbor connection data of s for the given direction,
// or NotConnected if there is no connection.
func GetCon(s *CompactSpan, dir int32) int32 {
	shift := uint32(dir * 6)
	return int32((s.Con >> shift) & 0x3f)
}

// CalcBounds calculates the bounding box of an array of vertices.
//  verts  An array of vertices. [(x, y, z) * nv]
//  nv     The number of vertices in the verts array.
//  bmin   Filled with the minimum bounds of the AABB. [(x, y, z)] [Units: wu]
//  bmax   Filled with the maximum bounds of the AABB. [(x, y, z)] [Units: wu]
func CalcBounds(verts []float32, nv int32, bmin, bmax d3.Vec3) {
	assert.True(len(bmin) == 3 && len(bmax) == 3, "CalcBounds: bmin and bmax are not big enough")
	assert.True(len(verts) >= int(3*nv), "len(verts) should be at least equal to 3*nv")

	copy(bmin, verts[:3])
	copy(bmax, verts[:3])

	for i := int32(1); i < nv; i++ {
		v := verts[i*3:]
		d3.Vec3Min(bmin, v)
		d3.Vec3Max(bmax, v)
	}
}

// CalcGridSize calculates the grid size based on the bounding box and grid
// cell size.
//  bmin  The minimum bounds of the AABB. [(x, y, z)] [Units: wu]
//  bmax  The maximum bounds of the AABB. [(x, y, z)] [Units: wu]
//  cs    The xz-plane cell size. [Limit: > 0] [Units: wu]
// Returns the width (x-axis) and height (z-axis) in cell units.
func CalcGridSize(bmin, bmax d3.Vec3, cs float32) (w, h int32) {
	w = int32((bmax[0]-bmin[0])/cs + 0.5)
	h = int32((bmax[2]-bmin[2])/cs + 0.5)
	return w, h
}

func iMin(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func iMax(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func iAbs(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}
