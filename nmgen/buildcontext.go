package nmgen

import (
	"fmt"
	"time"
)

// LogCategory classifies build log entries.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

// TimerLabel identifies a build performance timer.
type TimerLabel int

const (
	// TimerTotal is the user defined total time of the build.
	TimerTotal TimerLabel = iota
	// TimerBuildContours is the total time to build the contours.
	TimerBuildContours
	// TimerBuildContoursTrace is the time to trace the boundaries of the
	// contours.
	TimerBuildContoursTrace
	// TimerBuildContoursSimplify is the time to simplify the contours.
	TimerBuildContoursSimplify
	// TimerBuildBVTree is the time to build the bounding volume tree.
	TimerBuildBVTree
	// maxTimers is the maximum number of timers. (Used for iterating timers.)
	maxTimers
)

const maxMessages = 1000

// BuildContext gathers log messages and accumulates per-phase timings during
// a build. The zero value has logging and timers disabled; create one with
// NewBuildContext.
//
// If no logging or timers are required, pass a context created with
// NewBuildContext(false) through the build process.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// NewBuildContext returns a build context with logging and timers both
// enabled or disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{
		logEnabled:   state,
		timerEnabled: state,
	}
}

// EnableLog enables or disables logging.
func (ctx *BuildContext) EnableLog(state bool) {
	ctx.logEnabled = state
}

// EnableTimer enables or disables the performance timers.
func (ctx *BuildContext) EnableTimer(state bool) {
	ctx.timerEnabled = state
}

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx.logEnabled {
		ctx.numMessages = 0
	}
}

// ResetTimers clears all performance timers. (Resets all to unused.)
func (ctx *BuildContext) ResetTimers() {
	if ctx.timerEnabled {
		for i := TimerLabel(0); i < maxTimers; i++ {
			ctx.accTime[i] = 0
		}
	}
}

func (ctx *BuildContext) Progressf(format string, v ...interface{}) {
	ctx.Log(LogProgress, format, v...)
}

func (ctx *BuildContext) Warningf(format string, v ...interface{}) {
	ctx.Log(LogWarning, format, v...)
}

func (ctx *BuildContext) Errorf(format string, v ...interface{}) {
	ctx.Log(LogError, format, v...)
}

// Log stores a formatted message under the given category.
func (ctx *BuildContext) Log(category LogCategory, format string, v ...interface{}) {
	if !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	switch category {
	case LogProgress:
		ctx.messages[ctx.numMessages] = "PROG " + fmt.Sprintf(format, v...)
	case LogWarning:
		ctx.messages[ctx.numMessages] = "WARN " + fmt.Sprintf(format, v...)
	case LogError:
		ctx.messages[ctx.numMessages] = "ERR " + fmt.Sprintf(format, v...)
	}
	ctx.numMessages++
}

// DumpLog prints a header followed by every stored message to stdout.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}

// LogCount returns the number of stored log messages.
func (ctx *BuildContext) LogCount() int {
	return ctx.numMessages
}

// LogText returns the text of the i-th log message.
func (ctx *BuildContext) LogText(i int32) string {
	return ctx.messages[i]
}

// StartTimer starts the specified performance timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the specified performance timer and accumulates the
// elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx.timerEnabled {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// AccumulatedTime returns the total accumulated time of the specified
// performance timer, or 0 if timers are disabled.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
