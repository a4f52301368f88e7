package nmgen

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/arl/math32"
)

// BVNode is a node of a bounding volume tree stored as a flat array in
// preorder. A node with I >= 0 is a leaf and I is the index of the polygon it
// bounds; a negative I is an escape offset, the number of nodes to skip to
// reach the subtree's successor.
type BVNode struct {
	BMin [3]uint16 // Minimum bounds of the node's AABB. [(x, y, z)]
	BMax [3]uint16 // Maximum bounds of the node's AABB. [(x, y, z)]
	I    int32     // The node's index. (Negative for escape sequence.)
}

type bvItem struct {
	bmin [3]uint16
	bmax [3]uint16
	i    int32
}

func calcExtends(items []bvItem, imin, imax int32) (bmin, bmax [3]uint16) {
	bmin = items[imin].bmin
	bmax = items[imin].bmax

	for i := imin + 1; i < imax; i++ {
		it := &items[i]
		if it.bmin[0] < bmin[0] {
			bmin[0] = it.bmin[0]
		}
		if it.bmin[1] < bmin[1] {
			bmin[1] = it.bmin[1]
		}
		if it.bmin[2] < bmin[2] {
			bmin[2] = it.bmin[2]
		}

		if it.bmax[0] > bmax[0] {
			bmax[0] = it.bmax[0]
		}
		if it.bmax[1] > bmax[1] {
			bmax[1] = it.bmax[1]
		}
		if it.bmax[2] > bmax[2] {
			bmax[2] = it.bmax[2]
		}
	}
	return bmin, bmax
}

// longestAxis returns 0, 1 or 2, the axis with the largest extent; ties
// resolve to the lowest axis.
func longestAxis(x, y, z uint16) int {
	var axis int
	maxVal := x
	if y > maxVal {
		axis = 1
		maxVal = y
	}
	if z > maxVal {
		axis = 2
	}
	return axis
}

func subdivide(items []bvItem, imin, imax int32, curNode *int32, nodes []BVNode) {
	inum := imax - imin
	icur := *curNode

	node := &nodes[*curNode]
	*curNode++

	if inum == 1 {
		// Leaf.
		node.BMin = items[imin].bmin
		node.BMax = items[imin].bmax
		node.I = items[imin].i
	} else {
		// Split.
		node.BMin, node.BMax = calcExtends(items, imin, imax)

		axis := longestAxis(
			node.BMax[0]-node.BMin[0],
			node.BMax[1]-node.BMin[1],
			node.BMax[2]-node.BMin[2])

		sub := items[imin:imax]
		sort.SliceStable(sub, func(a, b int) bool {
			return sub[a].bmin[axis] < sub[b].bmin[axis]
		})

		isplit := imin + inum/2

		// Left.
		subdivide(items, imin, isplit, curNode, nodes)
		// Right.
		subdivide(items, isplit, imax, curNode, nodes)

		// Negative index means escape.
		node.I = -(*curNode - icur)
	}
}

// BuildBVTree builds a bounding volume tree over the polygons of a mesh.
//
//  Arguments:
//   verts   The mesh vertices. [Form: (x, y, z) * nverts] [Units: vx]
//   polys   Polygon and neighbor data. [Length: npolys * 2 * nvp]. The first
//           nvp entries of each polygon are vertex indices, terminated by
//           MeshNullIdx when the polygon has fewer than nvp vertices.
//   npolys  The number of polygons.
//   nvp     The maximum number of vertices per polygon.
//   cs      The xz-plane cell size. [Limit: > 0]
//   ch      The y-axis cell size. [Limit: > 0]
//
// Returns the node array, allocated at 2*npolys, and the number of nodes
// written to its preorder prefix. The y extents of each polygon's box are
// remapped from height units to cell units, floored for the minimum and
// ceiled for the maximum.
func BuildBVTree(verts, polys []uint16, npolys, nvp int32, cs, ch float32) ([]BVNode, int32) {
	assert.True(cs > 0, "cs should be strictly positive")

	nodes := make([]BVNode, npolys*2)
	if npolys == 0 {
		return nodes, 0
	}

	// Calc polygon bounds.
	items := make([]bvItem, npolys)
	for i := int32(0); i < npolys; i++ {
		it := &items[i]
		it.i = i

		p := polys[i*nvp*2:]
		vi := int32(p[0]) * 3
		it.bmin[0] = verts[vi+0]
		it.bmin[1] = verts[vi+1]
		it.bmin[2] = verts[vi+2]
		it.bmax = it.bmin

		for j := int32(1); j < nvp; j++ {
			if p[j] == MeshNullIdx {
				break
			}
			vi = int32(p[j]) * 3
			x := verts[vi+0]
			y := verts[vi+1]
			z := verts[vi+2]

			if x < it.bmin[0] {
				it.bmin[0] = x
			}
			if y < it.bmin[1] {
				it.bmin[1] = y
			}
			if z < it.bmin[2] {
				it.bmin[2] = z
			}

			if x > it.bmax[0] {
				it.bmax[0] = x
			}
			if y > it.bmax[1] {
				it.bmax[1] = y
			}
			if z > it.bmax[2] {
				it.bmax[2] = z
			}
		}
		// Remap y.
		it.bmin[1] = uint16(math32.Floor(float32(it.bmin[1]) * ch / cs))
		it.bmax[1] = uint16(math32.Ceil(float32(it.bmax[1]) * ch / cs))
	}

	var curNode int32
	subdivide(items, 0, npolys, &curNode, nodes)
	return nodes, curNode
}
