package nmgen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arl/gogeo/f32/d3"
)

// LoadGrid builds a single-story compact heightfield from an ASCII cell
// grid read from r.
//
// Each line of the input is a row of cells along the z-axis, each character a
// cell: '.' and ' ' are unwalkable, any other character is a region code and
// cells sharing a code belong to the same region. Region ids are assigned in
// order of first appearance, starting at 1. All walkable cells share the
// same elevation and the walkable area id.
//
// The resulting heightfield stands in for the rasterization and region
// partitioning stages when feeding BuildContours from tests or tools.
func LoadGrid(r io.Reader, cs, ch float32) (*CompactHeightfield, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); len(line) > 0 {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	w := int32(len(rows[0]))
	h := int32(len(rows))
	for y := range rows {
		if int32(len(rows[y])) != w {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d", y, len(rows[y]), w)
		}
	}

	chf := &CompactHeightfield{
		Width:  w,
		Height: h,
		Cs:     cs,
		Ch:     ch,
		BMin:   d3.NewVec3(),
		BMax:   d3.NewVec3XYZ(float32(w)*cs, ch, float32(h)*cs),
		Cells:  make([]CompactCell, w*h),
	}

	walkable := func(code byte) bool { return code != '.' && code != ' ' }

	// One span per walkable cell.
	regIDs := make(map[byte]uint16)
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			c.Index = uint32(len(chf.Spans))
			code := rows[y][x]
			if !walkable(code) {
				continue
			}
			reg, ok := regIDs[code]
			if !ok {
				reg = uint16(len(regIDs) + 1)
				regIDs[code] = reg
			}
			s := CompactSpan{Reg: reg, H: 1}
			for dir := int32(0); dir < 4; dir++ {
				SetCon(&s, dir, NotConnected)
			}
			chf.Spans = append(chf.Spans, s)
			chf.Areas = append(chf.Areas, WalkableArea)
			c.Count = 1
		}
	}
	chf.SpanCount = int32(len(chf.Spans))
	chf.MaxRegions = uint16(len(regIDs))

	// Wire neighbor connections; every neighboring pair of spans is mated.
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			if c.Count == 0 {
				continue
			}
			s := &chf.Spans[c.Index]
			for dir := int32(0); dir < 4; dir++ {
				ax := x + GetDirOffsetX(dir)
				ay := y + GetDirOffsetY(dir)
				if ax < 0 || ay < 0 || ax >= w || ay >= h {
					continue
				}
				if chf.Cells[ax+ay*w].Count != 0 {
					SetCon(s, dir, 0)
				}
			}
		}
	}

	return chf, nil
}
