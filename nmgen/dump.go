package nmgen

import "time"

func logLine(ctx *BuildContext, label TimerLabel, name string, pc float64) {
	t := ctx.AccumulatedTime(label)
	if t < 0 {
		return
	}
	ctx.Progressf("%s:\t%.2fms\t(%.1f%%)", name, float64(t)/float64(time.Millisecond), float64(t)*pc)
}

// LogBuildTimes logs the accumulated build times as progress entries of ctx,
// each with its share of totalTime.
func LogBuildTimes(ctx *BuildContext, totalTime time.Duration) {
	pc := 100.0 / float64(totalTime)
	ctx.Progressf("Build Times")
	logLine(ctx, TimerBuildContours, "- Build Contours\t", pc)
	logLine(ctx, TimerBuildContoursTrace, "    - Trace\t\t", pc)
	logLine(ctx, TimerBuildContoursSimplify, "    - Simplify\t\t", pc)
	logLine(ctx, TimerBuildBVTree, "- Build BV Tree\t\t", pc)
	ctx.Progressf("=== TOTAL:\t%v", totalTime)
}
