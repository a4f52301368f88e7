// Package nmgen builds the intermediate data used to create navigation
// meshes.
//
// A full navigation mesh pipeline looks like this:
//
//   - Prepare a CompactHeightfield partitioned into regions.
//   - Build a ContourSet from the region outlines.
//   - Build a polygon mesh from the simplified contours.
//   - Build a bounding volume tree over the polygons.
//
// This package covers the ContourSet stage (BuildContours) and the bounding
// volume tree stage (BuildBVTree). The upstream rasterization and region
// partitioning, and the contour to polygon conversion, are provided by
// external collaborators.
package nmgen
