package observability

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the console logger used for run progress. An unknown
// level falls back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "catalog",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
