package nmgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGrid(t *testing.T) {
	chf, err := LoadGrid(strings.NewReader(`
aaa
a.b
aab
`), 0.5, 0.25)
	require.NoError(t, err)

	assert.EqualValues(t, 3, chf.Width)
	assert.EqualValues(t, 3, chf.Height)
	assert.EqualValues(t, 8, chf.SpanCount)
	assert.EqualValues(t, 2, chf.MaxRegions)
	assert.InDelta(t, 1.5, chf.BMax[0], 1e-6)
	assert.InDelta(t, 1.5, chf.BMax[2], 1e-6)

	// Region codes map to ids in order of first appearance.
	span := func(x, y int32) *CompactSpan {
		c := chf.Cells[x+y*chf.Width]
		require.EqualValues(t, 1, c.Count, "no span at (%d, %d)", x, y)
		return &chf.Spans[c.Index]
	}
	assert.EqualValues(t, 1, span(0, 0).Reg)
	assert.EqualValues(t, 2, span(2, 1).Reg)

	// The empty cell at (1, 1) has no span...
	assert.EqualValues(t, 0, chf.Cells[1+1*chf.Width].Count)

	// ...so its neighbors are not connected towards it, but are between
	// themselves.
	s := span(1, 0)
	assert.Equal(t, NotConnected, GetCon(s, 1), "span (1, 0) should not connect north into the hole")
	assert.NotEqual(t, NotConnected, GetCon(s, 0), "span (1, 0) should connect west")
	assert.NotEqual(t, NotConnected, GetCon(s, 2), "span (1, 0) should connect east")
	assert.Equal(t, NotConnected, GetCon(s, 3), "span (1, 0) is on the grid edge")

	// Every span is walkable.
	for i := range chf.Areas {
		assert.Equal(t, WalkableArea, chf.Areas[i])
	}
}

func TestLoadGridRagged(t *testing.T) {
	_, err := LoadGrid(strings.NewReader("aaa\naa\n"), 0.3, 0.2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestLoadGridEmpty(t *testing.T) {
	_, err := LoadGrid(strings.NewReader(""), 0.3, 0.2)
	require.Error(t, err)
}

func TestLoadGridConnectionsAreMutual(t *testing.T) {
	chf, err := LoadGrid(strings.NewReader(`
ab
ab
`), 0.3, 0.2)
	require.NoError(t, err)

	for y := int32(0); y < chf.Height; y++ {
		for x := int32(0); x < chf.Width; x++ {
			c := chf.Cells[x+y*chf.Width]
			if c.Count == 0 {
				continue
			}
			s := &chf.Spans[c.Index]
			for dir := int32(0); dir < 4; dir++ {
				if GetCon(s, dir) == NotConnected {
					continue
				}
				ax := x + GetDirOffsetX(dir)
				ay := y + GetDirOffsetY(dir)
				ac := chf.Cells[ax+ay*chf.Width]
				require.EqualValues(t, 1, ac.Count, "connection from (%d, %d) dir %d leads to an empty cell", x, y, dir)
				as := &chf.Spans[ac.Index]
				rdir := (dir + 2) & 0x3
				assert.NotEqual(t, NotConnected, GetCon(as, rdir), "connection from (%d, %d) dir %d is one-way", x, y, dir)
			}
		}
	}
}
