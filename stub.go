package memkit

import (
	"fmt"
	"runtime"
	"sync"
)

// stubWarned records routines that already emitted their warning.
var stubWarned sync.Map

// Noop marks the calling routine as declared but not implemented. The first
// call from a routine warns through the module logger, nothing else happens
// at runtime.
func Noop() {
	warnNotSupported(callerName())
}

// NoopValue marks the calling routine as declared but not implemented,
// returning the fallback value v unchanged. Use Noop for routines that
// return nothing.
func NoopValue[T any](v T) T {
	warnNotSupported(callerName())
	return v
}

func callerName() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func warnNotSupported(name string) {
	if _, loaded := stubWarned.LoadOrStore(name, struct{}{}); loaded {
		return
	}
	logger.Warn(fmt.Sprintf("routine %s is currently not supported, it will become a no-op", name))
}
