// Logging package configures the process-wide seelog logger.
// Report output stays on stdout; everything logged here is a diagnostic.
package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/cihub/seelog"
)

const logFormat = "%Date %Time %LEVEL - %Msg%n"

// Setup replaces the global logger with one writing to stderr at the given level.
func Setup(level string) error {
	return SetupWriter(os.Stderr, level)
}

// SetupWriter is Setup with an explicit destination. Unknown levels fall back to info.
func SetupWriter(w io.Writer, level string) error {
	ll, ok := log.LogLevelFromString(strings.ToLower(level))
	if !ok {
		ll = log.InfoLvl
	}

	l, err := log.LoggerFromWriterWithMinLevelAndFormat(w, ll, logFormat)
	if err != nil {
		return err
	}
	return log.ReplaceLogger(l)
}
