package nmgen

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestGrid(t *testing.T, grid string) *CompactHeightfield {
	t.Helper()
	chf, err := LoadGrid(strings.NewReader(grid), 0.3, 0.2)
	require.NoError(t, err, "couldn't load test grid")
	return chf
}

func buildTestContours(t *testing.T, grid string, maxError float32, maxEdgeLen, buildFlags int32) *ContourSet {
	t.Helper()
	ctx := NewBuildContext(true)
	cset, err := BuildContours(ctx, loadTestGrid(t, grid), maxError, maxEdgeLen, buildFlags)
	if err != nil {
		ctx.DumpLog("build log:")
		t.Fatalf("BuildContours: %v", err)
	}
	return cset
}

// hasVert reports whether the contour owns a simplified vertex at (x, z).
func hasVert(cont *Contour, x, z int32) bool {
	for i := int32(0); i < cont.NVerts; i++ {
		if cont.Verts[i*4+0] == x && cont.Verts[i*4+2] == z {
			return true
		}
	}
	return false
}

// checkNoDegenerate fails if two consecutive simplified vertices share their
// xz position.
func checkNoDegenerate(t *testing.T, cont *Contour) {
	t.Helper()
	for i := int32(0); i < cont.NVerts; i++ {
		ni := next(i, cont.NVerts)
		if vequal(cont.Verts[i*4:], cont.Verts[ni*4:]) {
			t.Fatalf("consecutive vertices %d and %d share position (%d, %d)",
				i, ni, cont.Verts[i*4], cont.Verts[i*4+2])
		}
	}
}

func TestBuildContoursSquareRegion(t *testing.T) {
	cset := buildTestContours(t, `
aa
aa
`, 1, 0, 0)

	require.EqualValues(t, 1, cset.NumContours())
	cont := cset.Contour(0)

	assert.EqualValues(t, 4, cont.NVerts, "a square region should simplify to its 4 corners")
	assert.EqualValues(t, 8, cont.NRVerts)
	assert.EqualValues(t, 1, cont.Reg)
	assert.EqualValues(t, WalkableArea, cont.Area)

	for _, c := range [][2]int32{{0, 0}, {0, 2}, {2, 2}, {2, 0}} {
		assert.True(t, hasVert(cont, c[0], c[1]), "missing corner (%d, %d)", c[0], c[1])
	}

	assert.True(t, calcAreaOfPolygon2D(cont.Verts, cont.NVerts) > 0, "contour should wind forward")
	checkNoDegenerate(t, cont)
}

func TestBuildContoursNeighborRegions(t *testing.T) {
	cset := buildTestContours(t, `
aabb
aabb
`, 1, 0, 0)

	require.EqualValues(t, 2, cset.NumContours())

	conts := make(map[uint16]*Contour)
	for i := int32(0); i < cset.NumContours(); i++ {
		cont := cset.Contour(i)
		conts[cont.Reg] = cont
	}
	require.Contains(t, conts, uint16(1))
	require.Contains(t, conts, uint16(2))

	// The shared edge must appear in both contours, its vertices tagged with
	// the neighbor's region id.
	for reg, other := range map[uint16]int32{1: 2, 2: 1} {
		cont := conts[reg]
		tagged := false
		for i := int32(0); i < cont.NVerts; i++ {
			if cont.Verts[i*4+3]&ContourRegMask == other {
				tagged = true
				break
			}
		}
		assert.True(t, tagged, "region %d has no vertex tagged with neighbor region %d", reg, other)
		assert.True(t, hasVert(cont, 2, 0), "region %d misses shared edge end (2, 0)", reg)
		assert.True(t, hasVert(cont, 2, 2), "region %d misses shared edge end (2, 2)", reg)
		assert.True(t, calcAreaOfPolygon2D(cont.Verts, cont.NVerts) > 0)
		checkNoDegenerate(t, cont)
	}
}

func TestBuildContoursMergesHole(t *testing.T) {
	cset := buildTestContours(t, `
aaaa
a..a
a..a
aaaa
`, 1, 0, 0)

	// The hole loop winds backwards and gets spliced into the outline, so a
	// single forward-wound contour remains.
	require.EqualValues(t, 1, cset.NumContours())
	cont := cset.Contour(0)

	assert.EqualValues(t, 1, cont.Reg)
	// Outline (4 corners) + hole (4 corners) + the 2 junction duplicates.
	assert.EqualValues(t, 10, cont.NVerts)
	assert.True(t, calcAreaOfPolygon2D(cont.Verts, cont.NVerts) > 0, "merged contour should wind forward")

	// Hole corners are preserved by the splice.
	for _, c := range [][2]int32{{1, 1}, {1, 3}, {3, 3}, {3, 1}} {
		assert.True(t, hasVert(cont, c[0], c[1]), "missing hole corner (%d, %d)", c[0], c[1])
	}
}

func TestBuildContoursTessellatesWallEdges(t *testing.T) {
	const maxEdgeLen = 3
	cset := buildTestContours(t, `
aaaaaaaaaa
aaaaaaaaaa
`, 1, maxEdgeLen, ContourTessWallEdges)

	require.EqualValues(t, 1, cset.NumContours())
	cont := cset.Contour(0)

	// The 10 cell long edges must have been split.
	assert.True(t, cont.NVerts >= 8, "long edges not split, got %d verts", cont.NVerts)
	for i := int32(0); i < cont.NVerts; i++ {
		ni := next(i, cont.NVerts)
		dx := cont.Verts[ni*4+0] - cont.Verts[i*4+0]
		dz := cont.Verts[ni*4+2] - cont.Verts[i*4+2]
		if d := dx*dx + dz*dz; d > maxEdgeLen*maxEdgeLen {
			t.Fatalf("edge %d-%d has squared length %d, want <= %d", i, ni, d, maxEdgeLen*maxEdgeLen)
		}
	}
}

// minDistToContour returns the minimum squared xz distance between point
// (x, z) and the segments of the simplified contour.
func minDistToContour(x, z int32, cont *Contour) float32 {
	best := float32(math.MaxFloat32)
	for i := int32(0); i < cont.NVerts; i++ {
		ni := next(i, cont.NVerts)
		d := distancePtSeg(x, z,
			cont.Verts[i*4+0], cont.Verts[i*4+2],
			cont.Verts[ni*4+0], cont.Verts[ni*4+2])
		if d < best {
			best = d
		}
	}
	return best
}

func TestSimplifyRespectsMaxError(t *testing.T) {
	const maxError = 0.5
	cset := buildTestContours(t, `
aaaa
aa..
aa..
`, maxError, 0, 0)

	require.EqualValues(t, 1, cset.NumContours())
	cont := cset.Contour(0)

	// Every raw vertex lies within maxError of the simplified polyline.
	for i := int32(0); i < cont.NRVerts; i++ {
		x, z := cont.RVerts[i*4+0], cont.RVerts[i*4+2]
		if d := minDistToContour(x, z, cont); d > maxError*maxError+1e-6 {
			t.Fatalf("raw vertex (%d, %d) deviates by %f from the simplified contour", x, z, d)
		}
	}
	checkNoDegenerate(t, cont)
}

func TestSimplifyIdempotent(t *testing.T) {
	cset := buildTestContours(t, `
aaaa
aa..
aa..
`, 1, 0, 0)

	require.EqualValues(t, 1, cset.NumContours())
	cont := cset.Contour(0)

	// Simplifying the simplified contour again with the same parameters adds
	// no vertices: every output vertex already existed in the input.
	points := make([]int32, len(cont.Verts))
	copy(points, cont.Verts)
	simplified := make([]int32, 0, len(points))
	simplifyContour(&points, &simplified, 1, 0, 0)
	removeDegenerateSegments(&simplified)

	require.LessOrEqual(t, len(simplified), len(points))
	for j := 0; j < len(simplified)/4; j++ {
		found := false
		for i := int32(0); i < cont.NVerts; i++ {
			if simplified[j*4+0] == cont.Verts[i*4+0] && simplified[j*4+2] == cont.Verts[i*4+2] {
				found = true
				break
			}
		}
		assert.True(t, found, "re-simplification invented vertex %d", j)
	}
}

func TestBuildContoursEmptyField(t *testing.T) {
	cset := buildTestContours(t, `
....
....
`, 1, 0, 0)
	assert.EqualValues(t, 0, cset.NumContours())
}

func TestBuildContoursBorderOffset(t *testing.T) {
	const grid = `
......
.aaaa.
.aaaa.
......
`
	base := buildTestContours(t, grid, 1, 0, 0)
	require.EqualValues(t, 1, base.NumContours())

	chf := loadTestGrid(t, grid)
	chf.BorderSize = 1
	ctx := NewBuildContext(false)
	cset, err := BuildContours(ctx, chf, 1, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, cset.NumContours())

	// Dimensions lose the border on both sides and the bounds are shrunk by
	// borderSize*cs.
	assert.EqualValues(t, chf.Width-2, cset.Width())
	assert.EqualValues(t, chf.Height-2, cset.Height())
	pad := chf.Cs
	assert.InDelta(t, chf.BMin[0]+pad, cset.BMin()[0], 1e-6)
	assert.InDelta(t, chf.BMax[0]-pad, cset.BMax()[0], 1e-6)
	assert.InDelta(t, chf.BMin[2]+pad, cset.BMin()[2], 1e-6)
	assert.InDelta(t, chf.BMax[2]-pad, cset.BMax()[2], 1e-6)

	// Vertices are expressed relative to the trimmed grid.
	bcont, cont := base.Contour(0), cset.Contour(0)
	require.EqualValues(t, bcont.NVerts, cont.NVerts)
	for i := int32(0); i < cont.NVerts; i++ {
		assert.Equal(t, bcont.Verts[i*4+0]-1, cont.Verts[i*4+0])
		assert.Equal(t, bcont.Verts[i*4+2]-1, cont.Verts[i*4+2])
	}
}

func TestWalkContourMissingConnection(t *testing.T) {
	chf := loadTestGrid(t, `
aa
aa
`)
	// Claim a south edge only: after emitting it the walk turns west, finds
	// no edge bit there and tries to step across a connection that does not
	// exist.
	flags := make([]uint8, chf.SpanCount)
	flags[0] = 1 << 3

	var verts []int32
	err := walkContour(0, 0, 0, chf, flags, &verts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing connection")
}

func TestWalkContourIterationCap(t *testing.T) {
	chf := loadTestGrid(t, `
aa
aa
`)
	// A single bogus north edge sends the walk circling the region interior
	// without ever coming back to its start state.
	flags := make([]uint8, chf.SpanCount)
	flags[0] = 1 << 1

	var verts []int32
	err := walkContour(0, 0, 0, chf, flags, &verts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestRemoveDegenerateSegments(t *testing.T) {
	simplified := []int32{
		0, 0, 0, 0,
		2, 5, 0, 0, // same xz as the next vertex, different y
		2, 0, 0, 0,
		2, 0, 2, 0,
	}
	removeDegenerateSegments(&simplified)

	require.Equal(t, 3*4, len(simplified))
	want := []int32{0, 2, 2}
	for i := 0; i < 3; i++ {
		assert.Equal(t, want[i], simplified[i*4+0], "vertex %d", i)
	}
}

func TestCalcAreaOfPolygon2D(t *testing.T) {
	// A clockwise 2x2 square on the xz-plane (x right, z up) has positive
	// area, its reverse negative area.
	cw := []int32{
		0, 0, 0, 0,
		0, 0, 2, 0,
		2, 0, 2, 0,
		2, 0, 0, 0,
	}
	ccw := []int32{
		0, 0, 0, 0,
		2, 0, 0, 0,
		2, 0, 2, 0,
		0, 0, 2, 0,
	}
	assert.True(t, calcAreaOfPolygon2D(cw, 4) > 0)
	assert.True(t, calcAreaOfPolygon2D(ccw, 4) < 0)
}

func TestContourSetAccessors(t *testing.T) {
	cset := buildTestContours(t, `
aa
aa
`, 1, 0, 0)

	assert.EqualValues(t, 2, cset.Width())
	assert.EqualValues(t, 2, cset.Height())
	assert.EqualValues(t, 0, cset.BorderSize())
	assert.InDelta(t, 0.3, cset.CellSize(), 1e-6)
	assert.InDelta(t, 0.2, cset.CellHeight(), 1e-6)
	assert.InDelta(t, 1, cset.MaxError(), 1e-6)

	// The returned bounds are copies; writing through them does not alter
	// the set.
	bmin := cset.BMin()
	bmin[0] = -42
	assert.NotEqual(t, float32(-42), cset.BMin()[0])
}
