package cmd

import (
	"fmt"

	"github.com/arl/gobj"
	"github.com/arl/gogeo/f32/d3"
	"github.com/spf13/cobra"

	"github.com/9KGameStudio/go-sharpnav/nmgen"
)

// infosCmd represents the infos command.
var infosCmd = &cobra.Command{
	Use:   "infos OBJFILE",
	Short: "show infos about input geometry",
	Long: `Load level geometry from a Wavefront OBJ file and print its bounds
and the grid dimensions a contour build would use at the given cell size.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfos,
}

var cellSizeVal float32

func init() {
	RootCmd.AddCommand(infosCmd)

	infosCmd.Flags().Float32Var(&cellSizeVal, "cellsize", nmgen.NewSettings().CellSize, "xz-plane cell size")
}

func doInfos(cmd *cobra.Command, args []string) {
	obj, err := gobj.Load(args[0])
	check(err)

	bb := obj.AABB()
	bmin := d3.NewVec3XYZ(float32(bb.MinX), float32(bb.MinY), float32(bb.MinZ))
	bmax := d3.NewVec3XYZ(float32(bb.MaxX), float32(bb.MaxY), float32(bb.MaxZ))

	settings := nmgen.NewSettings()
	settings.CellSize = cellSizeVal
	cfg := nmgen.NewConfig(settings, bmin, bmax)

	fmt.Printf("%d verts, %d polys\n", len(obj.Verts()), len(obj.Polys()))
	fmt.Printf("bounds %v -> %v\n", bmin, bmax)
	fmt.Printf("grid   %d x %d cells (%d total) at cell size %g\n",
		cfg.Width, cfg.Height, cfg.GridCellCount(), cellSizeVal)
}
