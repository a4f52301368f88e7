package nmgen

import (
	"fmt"

	"github.com/arl/assertgo"
	"github.com/arl/gogeo/f32/d3"
)

// Contour represents a simple, non-overlapping contour in field space.
type Contour struct {
	Verts   []int32 // Simplified contour vertex and connection data. [Size: 4 * NVerts]
	NVerts  int32   // The number of vertices in the simplified contour.
	RVerts  []int32 // Raw contour vertex and connection data. [Size: 4 * NRVerts]
	NRVerts int32   // The number of vertices in the raw contour.
	Reg     uint16  // The region id of the contour.
	Area    uint8   // The area id of the contour.
}

// ContourSet represents a group of related contours. It is immutable once
// built: contours are read through NumContours and Contour, and the set
// cannot be grown, shrunk or cleared.
type ContourSet struct {
	conts      []Contour
	bmin, bmax d3.Vec3
	cs, ch     float32
	width      int32
	height     int32
	borderSize int32
	maxError   float32
}

// NumContours returns the number of contours in the set.
func (cset *ContourSet) NumContours() int32 {
	return int32(len(cset.conts))
}

// Contour returns the i-th contour of the set.
func (cset *ContourSet) Contour(i int32) *Contour {
	return &cset.conts[i]
}

// BMin returns the minimum bounds of the set in world space.
func (cset *ContourSet) BMin() d3.Vec3 {
	return d3.NewVec3From(cset.bmin)
}

// BMax returns the maximum bounds of the set in world space.
func (cset *ContourSet) BMax() d3.Vec3 {
	return d3.NewVec3From(cset.bmax)
}

// CellSize returns the size of each cell on the xz-plane.
func (cset *ContourSet) CellSize() float32 {
	return cset.cs
}

// CellHeight returns the height of each cell, the minimum increment along the
// y-axis.
func (cset *ContourSet) CellHeight() float32 {
	return cset.ch
}

// Width returns the width of the set, along the x-axis in cell units.
func (cset *ContourSet) Width() int32 {
	return cset.width
}

// Height returns the height of the set, along the z-axis in cell units.
func (cset *ContourSet) Height() int32 {
	return cset.height
}

// BorderSize returns the AABB border size used to generate the source data
// from which the contours were derived.
func (cset *ContourSet) BorderSize() int32 {
	return cset.borderSize
}

// MaxError returns the max edge error this contour set was simplified with.
func (cset *ContourSet) MaxError() float32 {
	return cset.maxError
}

// cornerHeight returns the height of the corner emitted when leaving span i
// at (x, y) in direction dir, and whether that corner is a border vertex.
//
// The corner is shared by up to 4 spans: the current one, its dir neighbor,
// its dir+1 neighbor and the diagonal between them.
func cornerHeight(x, y, i, dir int32, chf *CompactHeightfield) (ch int32, isBorderVertex bool) {
	s := &chf.Spans[i]
	ch = int32(s.Y)
	dirp := (dir + 1) & 0x3

	var regs [4]uint32

	// Combine region and area codes in order to prevent border vertices
	// which are in between two areas to be removed.
	regs[0] = uint32(chf.Spans[i].Reg) | (uint32(chf.Areas[i]) << 16)

	if GetCon(s, dir) != NotConnected {
		ax := x + GetDirOffsetX(dir)
		ay := y + GetDirOffsetY(dir)
		ai := int32(chf.Cells[ax+ay*chf.Width].Index) + GetCon(s, dir)
		as := &chf.Spans[ai]
		ch = iMax(ch, int32(as.Y))
		regs[1] = uint32(chf.Spans[ai].Reg) | (uint32(chf.Areas[ai]) << 16)
		if GetCon(as, dirp) != NotConnected {
			ax2 := ax + GetDirOffsetX(dirp)
			ay2 := ay + GetDirOffsetY(dirp)
			ai2 := int32(chf.Cells[ax2+ay2*chf.Width].Index) + GetCon(as, dirp)
			ch = iMax(ch, int32(chf.Spans[ai2].Y))
			regs[2] = uint32(chf.Spans[ai2].Reg) | (uint32(chf.Areas[ai2]) << 16)
		}
	}
	if GetCon(s, dirp) != NotConnected {
		ax := x + GetDirOffsetX(dirp)
		ay := y + GetDirOffsetY(dirp)
		ai := int32(chf.Cells[ax+ay*chf.Width].Index) + GetCon(s, dirp)
		as := &chf.Spans[ai]
		ch = iMax(ch, int32(as.Y))
		regs[3] = uint32(chf.Spans[ai].Reg) | (uint32(chf.Areas[ai]) << 16)
		if GetCon(as, dir) != NotConnected {
			ax2 := ax + GetDirOffsetX(dir)
			ay2 := ay + GetDirOffsetY(dir)
			ai2 := int32(chf.Cells[ax2+ay2*chf.Width].Index) + GetCon(as, dir)
			ch = iMax(ch, int32(chf.Spans[ai2].Y))
			regs[2] = uint32(chf.Spans[ai2].Reg) | (uint32(chf.Areas[ai2]) << 16)
		}
	}

	// Check if the vertex is a special edge vertex, these vertices will be
	// removed later.
	for j := int32(0); j < 4; j++ {
		a := j
		b := (j + 1) & 0x3
		c := (j + 2) & 0x3
		d := (j + 3) & 0x3

		// The vertex is a border vertex if there are two same exterior cells
		// in a row, followed by two interior cells and none of the regions
		// are out of bounds.
		twoSameExts := (regs[a]&regs[b]&uint32(BorderReg)) != 0 && regs[a] == regs[b]
		twoInts := ((regs[c] | regs[d]) & uint32(BorderReg)) == 0
		intsSameArea := (regs[c] >> 16) == (regs[d] >> 16)
		noZeros := regs[a] != 0 && regs[b] != 0 && regs[c] != 0 && regs[d] != 0
		if twoSameExts && twoInts && intsSameArea && noZeros {
			isBorderVertex = true
			break
		}
	}

	return ch, isBorderVertex
}

// walkContour traces the boundary of the region owning span i, starting at
// cell (x, y), and appends the raw contour vertices to points.
//
// flags[i] must have at least one edge bit set; visited edges are cleared as
// the walk progresses.
func walkContour(x, y, i int32, chf *CompactHeightfield, flags []uint8, points *[]int32) error {
	// Choose the first non-connected edge.
	var dir int32
	for (flags[i] & (1 << uint(dir))) == 0 {
		dir++
	}

	startDir := dir
	starti := i

	area := chf.Areas[i]

	for iter := int32(0); iter+1 < maxContourIter; iter++ {
		if (flags[i] & (1 << uint(dir))) != 0 {
			// Choose the edge corner.
			isAreaBorder := false
			px := x
			py, isBorderVertex := cornerHeight(x, y, i, dir, chf)
			pz := y
			switch dir {
			case 0:
				pz++
			case 1:
				px++
				pz++
			case 2:
				px++
			}
			var r int32
			s := &chf.Spans[i]
			if GetCon(s, dir) != NotConnected {
				ax := x + GetDirOffsetX(dir)
				ay := y + GetDirOffsetY(dir)
				ai := int32(chf.Cells[ax+ay*chf.Width].Index) + GetCon(s, dir)
				r = int32(chf.Spans[ai].Reg)
				if area != chf.Areas[ai] {
					isAreaBorder = true
				}
			}
			if isBorderVertex {
				r |= BorderVertex
			}
			if isAreaBorder {
				r |= AreaBorder
			}
			*points = append(*points, px, py, pz, r)

			flags[i] &^= 1 << uint(dir) // Remove visited edges.
			dir = (dir + 1) & 0x3       // Rotate CW.
		} else {
			ni := int32(-1)
			nx := x + GetDirOffsetX(dir)
			ny := y + GetDirOffsetY(dir)
			s := &chf.Spans[i]
			if GetCon(s, dir) != NotConnected {
				ni = int32(chf.Cells[nx+ny*chf.Width].Index) + GetCon(s, dir)
			}
			if ni == -1 {
				return fmt.Errorf("missing connection at (%d, %d) direction %d", x, y, dir)
			}
			x = nx
			y = ny
			i = ni
			dir = (dir + 3) & 0x3 // Rotate CCW.
		}

		if starti == i && startDir == dir {
			return nil
		}
	}
	return fmt.Errorf("contour walk exceeded %d steps, span connectivity is malformed", maxContourIter)
}

// distancePtSeg returns the squared 2D distance (xz-plane) between point
// (x, z) and the segment (px, pz)-(qx, qz).
func distancePtSeg(x, z, px, pz, qx, qz int32) float32 {
	pqx := float32(qx - px)
	pqz := float32(qz - pz)
	dx := float32(x - px)
	dz := float32(z - pz)
	d := pqx*pqx + pqz*pqz
	t := pqx*dx + pqz*dz
	if d > 0 {
		t /= d
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	dx = float32(px) + t*pqx - float32(x)
	dz = float32(pz) + t*pqz - float32(z)

	return dx*dx + dz*dz
}

func simplifyContour(points, simplified *[]int32, maxError float32, maxEdgeLen, buildFlags int32) {
	// Add initial points.
	hasConnections := false
	for i := 0; i < len(*points); i += 4 {
		if ((*points)[i+3] & ContourRegMask) != 0 {
			hasConnections = true
			break
		}
	}

	if hasConnections {
		// The contour has some portals to other regions.
		// Add a new point to every location where the region changes.
		for i, ni := 0, len(*points)/4; i < ni; i++ {
			ii := (i + 1) % ni
			differentRegs := ((*points)[i*4+3] & ContourRegMask) != ((*points)[ii*4+3] & ContourRegMask)
			areaBorders := ((*points)[i*4+3] & AreaBorder) != ((*points)[ii*4+3] & AreaBorder)
			if differentRegs || areaBorders {
				*simplified = append(*simplified,
					(*points)[i*4+0],
					(*points)[i*4+1],
					(*points)[i*4+2],
					int32(i))
			}
		}
	}

	if len(*simplified) == 0 {
		// If there are no connections at all, create some initial points for
		// the simplification process. Find lower-left and upper-right
		// vertices of the contour.
		llx := (*points)[0]
		lly := (*points)[1]
		llz := (*points)[2]
		lli := int32(0)
		urx := (*points)[0]
		ury := (*points)[1]
		urz := (*points)[2]
		uri := int32(0)
		for i := 0; i < len(*points); i += 4 {
			x := (*points)[i+0]
			y := (*points)[i+1]
			z := (*points)[i+2]
			if x < llx || (x == llx && z < llz) {
				llx = x
				lly = y
				llz = z
				lli = int32(i / 4)
			}
			if x > urx || (x == urx && z > urz) {
				urx = x
				ury = y
				urz = z
				uri = int32(i / 4)
			}
		}
		*simplified = append(*simplified, llx, lly, llz, lli)
		*simplified = append(*simplified, urx, ury, urz, uri)
	}

	// Add points until all raw points are within error tolerance to the
	// simplified shape.
	pn := int32(len(*points) / 4)
	for i := 0; i < len(*simplified)/4; {
		ii := (i + 1) % (len(*simplified) / 4)

		ax := (*simplified)[i*4+0]
		az := (*simplified)[i*4+2]
		ai := (*simplified)[i*4+3]

		bx := (*simplified)[ii*4+0]
		bz := (*simplified)[ii*4+2]
		bi := (*simplified)[ii*4+3]

		// Find maximum deviation from the segment.
		var maxd float32
		maxi := int32(-1)
		var ci, cinc, endi int32

		// Traverse the segment in lexilogical order so that the max deviation
		// is calculated similarly when traversing opposite segments.
		if bx > ax || (bx == ax && bz > az) {
			cinc = 1
			ci = (ai + cinc) % pn
			endi = bi
		} else {
			cinc = pn - 1
			ci = (bi + cinc) % pn
			endi = ai
			ax, bx = bx, ax
			az, bz = bz, az
		}

		// Tessellate only outer edges or edges between areas.
		if ((*points)[ci*4+3]&ContourRegMask) == 0 ||
			((*points)[ci*4+3]&AreaBorder) != 0 {
			for ci != endi {
				d := distancePtSeg((*points)[ci*4+0], (*points)[ci*4+2], ax, az, bx, bz)
				if d > maxd {
					maxd = d
					maxi = ci
				}
				ci = (ci + cinc) % pn
			}
		}

		// If the max deviation is larger than accepted error, add new point,
		// else continue to next segment.
		if maxi != -1 && maxd > (maxError*maxError) {
			insertSimplified(simplified, i, (*points)[maxi*4+0], (*points)[maxi*4+1], (*points)[maxi*4+2], maxi)
		} else {
			i++
		}
	}

	// Split too long edges.
	if maxEdgeLen > 0 && (buildFlags&(ContourTessWallEdges|ContourTessAreaEdges)) != 0 {
		for i := 0; i < len(*simplified)/4; {
			ii := (i + 1) % (len(*simplified) / 4)

			ax := (*simplified)[i*4+0]
			az := (*simplified)[i*4+2]
			ai := (*simplified)[i*4+3]

			bx := (*simplified)[ii*4+0]
			bz := (*simplified)[ii*4+2]
			bi := (*simplified)[ii*4+3]

			maxi := int32(-1)
			ci := (ai + 1) % pn

			// Tessellate only outer edges or edges between areas.
			tess := false
			// Wall edges.
			if ((buildFlags & ContourTessWallEdges) != 0) && ((*points)[ci*4+3]&ContourRegMask) == 0 {
				tess = true
			}
			// Edges between areas.
			if ((buildFlags & ContourTessAreaEdges) != 0) && ((*points)[ci*4+3]&AreaBorder) != 0 {
				tess = true
			}

			if tess {
				dx := bx - ax
				dz := bz - az
				if dx*dx+dz*dz > maxEdgeLen*maxEdgeLen {
					// Round based on the segments in lexilogical order so
					// that the max tesselation is consistent regardless in
					// which direction segments are traversed.
					var n int32
					if bi < ai {
						n = bi + pn - ai
					} else {
						n = bi - ai
					}
					if n > 1 {
						if bx > ax || (bx == ax && bz > az) {
							maxi = (ai + n/2) % pn
						} else {
							maxi = (ai + (n+1)/2) % pn
						}
					}
				}
			}

			// If an eligible split point was found, add it, else continue to
			// next segment.
			if maxi != -1 {
				insertSimplified(simplified, i, (*points)[maxi*4+0], (*points)[maxi*4+1], (*points)[maxi*4+2], maxi)
			} else {
				i++
			}
		}
	}

	for i := 0; i < len(*simplified)/4; i++ {
		// The edge vertex flag is taken from the current raw point, and the
		// neighbour region is taken from the next raw point.
		ai := ((*simplified)[i*4+3] + 1) % pn
		bi := (*simplified)[i*4+3]
		(*simplified)[i*4+3] = ((*points)[ai*4+3] & (ContourRegMask | AreaBorder)) |
			((*points)[bi*4+3] & BorderVertex)
	}
}

// insertSimplified inserts vertex (x, y, z, ri) after position i of the
// simplified contour.
func insertSimplified(simplified *[]int32, i int, x, y, z, ri int32) {
	// Add space for the new point.
	*simplified = append(*simplified, make([]int32, 4)...)
	n := len(*simplified) / 4
	for j := n - 1; j > i; j-- {
		(*simplified)[j*4+0] = (*simplified)[(j-1)*4+0]
		(*simplified)[j*4+1] = (*simplified)[(j-1)*4+1]
		(*simplified)[j*4+2] = (*simplified)[(j-1)*4+2]
		(*simplified)[j*4+3] = (*simplified)[(j-1)*4+3]
	}
	// Add the point.
	(*simplified)[(i+1)*4+0] = x
	(*simplified)[(i+1)*4+1] = y
	(*simplified)[(i+1)*4+2] = z
	(*simplified)[(i+1)*4+3] = ri
}

func calcAreaOfPolygon2D(verts []int32, nverts int32) int32 {
	var area int32
	for i, j := int32(0), nverts-1; i < nverts; i++ {
		vi := verts[i*4:]
		vj := verts[j*4:]
		area += vi[0]*vj[2] - vj[0]*vi[2]
		j = i
	}
	return (area + 1) / 2
}

func prev(i, n int32) int32 {
	if i-1 >= 0 {
		return i - 1
	}
	return n - 1
}

func next(i, n int32) int32 {
	if i+1 < n {
		return i + 1
	}
	return 0
}

func area2(a, b, c []int32) int32 {
	return (b[0]-a[0])*(c[2]-a[2]) - (c[0]-a[0])*(b[2]-a[2])
}

// leftOn reports whether c is to the left of, or on, the directed line
// through a to b.
func leftOn(a, b, c []int32) bool {
	return area2(a, b, c) <= 0
}

func vequal(a, b []int32) bool {
	return a[0] == b[0] && a[2] == b[2]
}

// removeDegenerateSegments removes adjacent vertices which are equal on the
// xz-plane, or else the triangulator will get confused.
func removeDegenerateSegments(simplified *[]int32) {
	npts := int32(len(*simplified) / 4)
	for i := int32(0); i < npts; i++ {
		ni := next(i, npts)

		if vequal((*simplified)[i*4:], (*simplified)[ni*4:]) {
			// Degenerate segment, remove.
			for j := i; j < int32(len(*simplified)/4-1); j++ {
				(*simplified)[j*4+0] = (*simplified)[(j+1)*4+0]
				(*simplified)[j*4+1] = (*simplified)[(j+1)*4+1]
				(*simplified)[j*4+2] = (*simplified)[(j+1)*4+2]
				(*simplified)[j*4+3] = (*simplified)[(j+1)*4+3]
			}
			*simplified = (*simplified)[:len(*simplified)-4]
			npts--
		}
	}
}

// getClosestIndices returns the indices of the closest qualifying vertex pair
// between contours a and b, or (-1, -1) when no vertex of b faces a vertex of
// a.
func getClosestIndices(vertsa []int32, nvertsa int32, vertsb []int32, nvertsb int32) (ia, ib int32) {
	closestDist := int32(0xfffffff)
	ia, ib = -1, -1
	for i := int32(0); i < nvertsa; i++ {
		in := next(i, nvertsa)
		ip := prev(i, nvertsa)
		va := vertsa[i*4:]
		// Choose qualifying vertices, i.e. vertices facing b.
		for j := int32(0); j < nvertsb; j++ {
			vb := vertsb[j*4:]
			// vb must be in front of va.
			if leftOn(vertsa[ip*4:], va, vb) && leftOn(va, vertsa[in*4:], vb) {
				dx := vb[0] - va[0]
				dz := vb[2] - va[2]
				d := dx*dx + dz*dz
				if d < closestDist {
					ia = i
					ib = j
					closestDist = d
				}
			}
		}
	}
	return ia, ib
}

// mergeContours splices contour cb into ca, joining them at vertices ia of ca
// and ib of cb. Vertex order of both contours is preserved; cb is emptied.
func mergeContours(ca, cb *Contour, ia, ib int32) {
	maxVerts := ca.NVerts + cb.NVerts + 2
	verts := make([]int32, maxVerts*4)

	var nv int32

	// Copy contour A.
	for i := int32(0); i <= ca.NVerts; i++ {
		dst := verts[nv*4:]
		src := ca.Verts[((ia+i)%ca.NVerts)*4:]
		dst[0] = src[0]
		dst[1] = src[1]
		dst[2] = src[2]
		dst[3] = src[3]
		nv++
	}

	// Copy contour B.
	for i := int32(0); i <= cb.NVerts; i++ {
		dst := verts[nv*4:]
		src := cb.Verts[((ib+i)%cb.NVerts)*4:]
		dst[0] = src[0]
		dst[1] = src[1]
		dst[2] = src[2]
		dst[3] = src[3]
		nv++
	}

	ca.Verts = verts
	ca.NVerts = nv

	cb.Verts = nil
	cb.NVerts = 0
}

// BuildContours builds a contour set from the region outlines in the
// provided compact heightfield.
//
//  Arguments:
//   ctx         The build context to use during the operation.
//   chf         A fully built compact heightfield.
//   maxError    The maximum distance a simplified contour's border edges
//               should deviate from the original raw contour. [Limit: >=0]
//               [Units: vx]
//   maxEdgeLen  The maximum allowed length for contour edges along the border
//               of the mesh. Zero disables edge splitting. [Limit: >=0]
//               [Units: vx]
//   buildFlags  The build flags. (See: ContourTessWallEdges,
//               ContourTessAreaEdges)
//
// The raw contours will match the region outlines exactly. The maxError and
// maxEdgeLen parameters control how closely the simplified contours will
// match the raw contours.
//
// Simplified contours are generated such that the vertices for portals
// between areas match up. (They are considered mandatory vertices.)
//
// see CompactHeightfield, ContourSet, Config
func BuildContours(ctx *BuildContext, chf *CompactHeightfield,
	maxError float32, maxEdgeLen int32, buildFlags int32) (*ContourSet, error) {
	assert.True(ctx != nil, "ctx should not be nil")
	assert.True(chf != nil, "chf should not be nil")

	w := chf.Width
	h := chf.Height
	borderSize := chf.BorderSize

	ctx.StartTimer(TimerBuildContours)
	defer ctx.StopTimer(TimerBuildContours)

	cset := &ContourSet{
		bmin:       d3.NewVec3From(chf.BMin),
		bmax:       d3.NewVec3From(chf.BMax),
		cs:         chf.Cs,
		ch:         chf.Ch,
		width:      chf.Width - chf.BorderSize*2,
		height:     chf.Height - chf.BorderSize*2,
		borderSize: chf.BorderSize,
		maxError:   maxError,
	}
	if borderSize > 0 {
		// If the heightfield was built with a border, remove the offset.
		pad := float32(borderSize) * chf.Cs
		cset.bmin[0] += pad
		cset.bmin[2] += pad
		cset.bmax[0] -= pad
		cset.bmax[2] -= pad
	}

	conts := make([]Contour, 0, iMax(int32(chf.MaxRegions), 8))

	flags := make([]uint8, chf.SpanCount)

	ctx.StartTimer(TimerBuildContoursTrace)

	// Mark boundaries.
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			for i, ni := int32(c.Index), int32(c.Index)+int32(c.Count); i < ni; i++ {
				var res uint8
				s := &chf.Spans[i]
				if s.Reg == 0 || (s.Reg&BorderReg) != 0 {
					flags[i] = 0
					continue
				}
				for dir := int32(0); dir < 4; dir++ {
					var r uint16
					if GetCon(s, dir) != NotConnected {
						ax := x + GetDirOffsetX(dir)
						ay := y + GetDirOffsetY(dir)
						ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, dir)
						r = chf.Spans[ai].Reg
					}
					if r == chf.Spans[i].Reg {
						res |= 1 << uint(dir)
					}
				}
				flags[i] = res ^ 0xf // Inverse, mark non connected edges.
			}
		}
	}

	ctx.StopTimer(TimerBuildContoursTrace)

	verts := make([]int32, 0, 256)
	simplified := make([]int32, 0, 64)

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			for i, ni := int32(c.Index), int32(c.Index)+int32(c.Count); i < ni; i++ {
				if flags[i] == 0 || flags[i] == 0xf {
					flags[i] = 0
					continue
				}
				reg := chf.Spans[i].Reg
				if reg == 0 || (reg&BorderReg) != 0 {
					continue
				}
				area := chf.Areas[i]

				verts = verts[:0]
				simplified = simplified[:0]

				ctx.StartTimer(TimerBuildContoursTrace)
				err := walkContour(x, y, i, chf, flags, &verts)
				ctx.StopTimer(TimerBuildContoursTrace)
				if err != nil {
					ctx.Errorf("BuildContours: region %d: %v", reg, err)
					return nil, fmt.Errorf("trace region %d: %v", reg, err)
				}

				ctx.StartTimer(TimerBuildContoursSimplify)
				simplifyContour(&verts, &simplified, maxError, maxEdgeLen, buildFlags)
				removeDegenerateSegments(&simplified)
				ctx.StopTimer(TimerBuildContoursSimplify)

				// Create contour.
				if len(simplified)/4 >= 3 {
					var cont Contour
					cont.NVerts = int32(len(simplified) / 4)
					cont.Verts = make([]int32, cont.NVerts*4)
					copy(cont.Verts, simplified[:cont.NVerts*4])
					if borderSize > 0 {
						// If the heightfield was built with a border, remove
						// the offset.
						for j := int32(0); j < cont.NVerts; j++ {
							v := cont.Verts[j*4:]
							v[0] -= borderSize
							v[2] -= borderSize
						}
					}

					cont.NRVerts = int32(len(verts) / 4)
					cont.RVerts = make([]int32, cont.NRVerts*4)
					copy(cont.RVerts, verts[:cont.NRVerts*4])
					if borderSize > 0 {
						for j := int32(0); j < cont.NRVerts; j++ {
							v := cont.RVerts[j*4:]
							v[0] -= borderSize
							v[2] -= borderSize
						}
					}

					cont.Reg = reg
					cont.Area = area
					conts = append(conts, cont)
				}
			}
		}
	}

	// Merge backwards wound contours into an outline of the same region. A
	// backwards loop traces a hole.
	for i := range conts {
		cont := &conts[i]
		if cont.NVerts == 0 || calcAreaOfPolygon2D(cont.Verts, cont.NVerts) >= 0 {
			continue
		}
		mergeIdx := -1
		for j := range conts {
			if i == j {
				continue
			}
			mcont := &conts[j]
			if mcont.NVerts != 0 && mcont.Reg == cont.Reg &&
				calcAreaOfPolygon2D(mcont.Verts, mcont.NVerts) > 0 {
				mergeIdx = j
				break
			}
		}
		if mergeIdx == -1 {
			ctx.Warningf("BuildContours: could not find merge target for bad contour %d.", i)
			continue
		}
		mcont := &conts[mergeIdx]
		ia, ib := getClosestIndices(mcont.Verts, mcont.NVerts, cont.Verts, cont.NVerts)
		if ia == -1 || ib == -1 {
			ctx.Warningf("BuildContours: failed to find merge points for contours %d and %d.", mergeIdx, i)
			continue
		}
		mergeContours(mcont, cont, ia, ib)
	}

	// Keep only the contours that still form a polygon.
	for _, cont := range conts {
		if cont.NVerts >= 3 {
			cset.conts = append(cset.conts, cont)
		}
	}

	return cset, nil
}
