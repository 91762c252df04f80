package terminal

import (
	"io"
	"os"
	"path/filepath"

	"mostrodesk/internal/logging"
)

const logFileName = "terminal.log"

func logFilePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mostrodesk", logFileName), nil
}

// redirectLogs moves the logger off the tty while tview owns the screen.
// The returned func puts it back on stderr.
func redirectLogs() func() {
	path, err := logFilePath()
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0700)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	}
	if err != nil {
		logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(os.Stderr) }
	}
	logging.SetOutput(f)
	return func() {
		logging.SetOutput(os.Stderr)
		_ = f.Close()
	}
}
