package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "mostrodesk"})

func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	L.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
