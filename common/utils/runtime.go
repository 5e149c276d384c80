package utils

import (
	"runtime"
	"strings"
)

// GetCallerFunctionName returns the short name of the function skip frames
// up the stack, e.g. "(*productService).Search".
func GetCallerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return "<unknown>"
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return "<unknown>"
	}
	return ShortFuncName(frame.Function)
}

// ShortFuncName strips the import path and package from a fully qualified
// function name. Closures keep their outer function name.
func ShortFuncName(full string) string {
	name := full
	if slash := strings.LastIndexByte(name, '/'); slash != -1 {
		name = name[slash+1:]
	}
	if dot := strings.IndexByte(name, '.'); dot != -1 {
		name = name[dot+1:]
	}
	if idx := strings.Index(name, ".func"); idx != -1 {
		name = name[:idx]
	}
	return name
}
