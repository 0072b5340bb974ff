package cmd

import (
	"io"
	"log"
)

var debugLog = log.New(io.Discard, "DEBUG: ", 0)

func setDebug(enable bool, w io.Writer) {
	if enable {
		debugLog.SetOutput(w)
		return
	}
	debugLog.SetOutput(io.Discard)
}

// debugf conditionally logs a formatted debug message.
func debugf(format string, args ...interface{}) {
	debugLog.Printf(format, args...)
}
