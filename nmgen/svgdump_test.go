package nmgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawContoursSVG(t *testing.T) {
	cset := buildTestContours(t, `
aabb
aabb
`, 1, 0, 0)
	require.EqualValues(t, 2, cset.NumContours())

	var buf bytes.Buffer
	require.NoError(t, DrawContoursSVG(&buf, cset))

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "path")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"), "SVG output is incomplete")
}

func TestDrawContoursSVGEmptySet(t *testing.T) {
	cset := buildTestContours(t, `
..
..
`, 1, 0, 0)

	var buf bytes.Buffer
	require.NoError(t, DrawContoursSVG(&buf, cset))
	assert.Contains(t, buf.String(), "<svg")
}
