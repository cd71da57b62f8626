// log.go wires this package's diagnostics through a leveled logger instead
// of ad-hoc fmt.Printf calls. By default messages at WARNING level and above
// go to stderr; SetLogLevel changes the level.
package zugzwang

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("zugzwang")

func init() {
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
	logging.SetLevel(logging.WARNING, "zugzwang")
}

// SetLogLevel adjusts the package logger's verbosity; cmd/zugzwang calls it
// with the level parsed from EngineConfig.LogLevel.
func SetLogLevel(level logging.Level) {
	logging.SetLevel(level, "zugzwang")
}
