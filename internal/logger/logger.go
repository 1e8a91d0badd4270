// Package logger configures the go-logging backend shared by the phpass
// library module and the command-line tool.
package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

const (
	moduleName = "phpass-cli"
	timeFormat = "2006/01/02 15:04:05"
)

var logger = logging.MustGetLogger(moduleName)

// InitLogger routes every go-logging module, including the library's
// "phpass" module, to stderr at the given level.
func InitLogger(level logging.Level) {
	initWithWriter(os.Stderr, level, os.Getppid() > 1)
}

func initWithWriter(w io.Writer, level logging.Level, withTime bool) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, newFormatter(withTime))
	leveled := logging.SetBackend(formatted)
	leveled.SetLevel(level, "")
}

// newFormatter creates a log formatter with optional timestamp.
func newFormatter(withTime bool) logging.Formatter {
	format := `%{level} %{module} - %{message}`
	if withTime {
		format = `%{time:` + timeFormat + `} %{level} %{module} - %{message}`
	}
	return logging.MustStringFormatter(format)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
