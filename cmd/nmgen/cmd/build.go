package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/9KGameStudio/go-sharpnav/nmgen"
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build GRIDFILE",
	Short: "build a contour set from a cell grid",
	Long: `Build a contour set from a cell grid file.

The grid file holds one row of cells per line: '.' and ' ' are unwalkable,
any other character is a region code. The build process is controlled by the provided
build settings. The resulting contours are printed, and optionally rendered
to an SVG file.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

var cfgVal, svgVal string

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&cfgVal, "config", "", "build settings (YAML)")
	buildCmd.Flags().StringVar(&svgVal, "svg", "", "render the contours to an SVG file")
}

func doBuild(cmd *cobra.Command, args []string) {
	settings := nmgen.NewSettings()
	if cfgVal != "" {
		check(unmarshalYAMLFile(cfgVal, &settings))
	}

	f, err := os.Open(args[0])
	check(err)
	defer f.Close()

	chf, err := nmgen.LoadGrid(f, settings.CellSize, settings.CellHeight)
	check(err)

	ctx := nmgen.NewBuildContext(true)
	ctx.StartTimer(nmgen.TimerTotal)
	cset, err := nmgen.BuildContours(ctx, chf,
		settings.EdgeMaxError,
		int32(float32(settings.EdgeMaxLen)/settings.CellSize),
		settings.BuildFlags())
	ctx.StopTimer(nmgen.TimerTotal)
	if err != nil {
		ctx.DumpLog("build failed:")
		check(err)
	}

	fmt.Printf("%d x %d cells, %d regions\n", chf.Width, chf.Height, chf.MaxRegions)
	fmt.Printf("%d contours:\n", cset.NumContours())
	for i := int32(0); i < cset.NumContours(); i++ {
		c := cset.Contour(i)
		fmt.Printf(" - region %d: %d verts (%d raw)\n", c.Reg, c.NVerts, c.NRVerts)
	}

	nmgen.LogBuildTimes(ctx, ctx.AccumulatedTime(nmgen.TimerTotal))
	ctx.DumpLog("")

	if svgVal != "" {
		out, err := os.Create(svgVal)
		check(err)
		defer out.Close()
		check(nmgen.DrawContoursSVG(out, cset))
		fmt.Printf("contours rendered to '%s'\n", svgVal)
	}
}
