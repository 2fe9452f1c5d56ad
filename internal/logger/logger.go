package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

var (
	out     io.Writer = os.Stderr
	program           = "id"
	minimum           = LevelError
	logMu   sync.Mutex
)

// Init sets the program name that prefixes every line and the destination.
// A nil writer keeps the current destination.
func Init(name string, w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if name != "" {
		program = name
	}
	if w != nil {
		out = w
	}
}

// SetLevel sets the lowest level that is written.
func SetLevel(lvl Level) {
	logMu.Lock()
	defer logMu.Unlock()
	minimum = lvl
}

func Info(format string, args ...interface{}) {
	log(LevelInfo, format, args...)
}

func Error(format string, args ...interface{}) {
	log(LevelError, format, args...)
}

func log(lvl Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	var label string
	if lvl == LevelInfo {
		label = "info: "
	}

	logMu.Lock()
	defer logMu.Unlock()
	if lvl < minimum {
		return
	}
	// Single line: "<program>: [label]<message>".
	fmt.Fprintf(out, "%s: %s%s\n", program, label, msg)
}
