package logging

import (
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingFile returns a Logger that writes to a size/age-rotated file at
// <projectDir>/logs/mvcs.log, the same rotation library and rationale the
// teacher project uses for its own daemon logs.
func RotatingFile(projectDir string, debug bool) (Logger, func() error) {
	lj := &lumberjack.Logger{
		Filename:   filepath.Join(projectDir, "logs", "mvcs.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	return New(lj, debug), lj.Close
}
