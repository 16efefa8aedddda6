// Package logging writes diagnostics to a file under the radicle home.
// Stdout and stderr belong to the terminal interface and the selection
// output, so nothing may log there.
package logging

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/radicle-dev/rad-tui/internal/config"
)

var file *os.File

// Enable routes the standard logger to the log file and tags entries
// with the running command. Called once per invocation.
func Enable(command ...string) error {
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, config.FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	file = f

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetPrefix(fmt.Sprintf("[%s] ", strings.Join(command, " ")))
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}
