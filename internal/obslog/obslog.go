// Package obslog is the observability sink every estimator constructor
// reports out-of-range parameters to. It plays the role the original
// radar_algorithm C++ source gives spdlog::default_logger(): a single
// process-wide warn sink, never consulted for control flow.
package obslog

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Default is the package-wide logger. Library code only ever calls Warnf;
// callers embedding this module in a larger program may reassign Default
// (e.g. to redirect output or raise the level) before constructing any
// estimator.
var Default = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	Prefix: "radarpri",
	Level:  charmlog.WarnLevel,
})

// Warnf reports a out-of-domain constructor parameter. It never panics,
// blocks, or affects the caller's control flow.
func Warnf(format string, args ...any) {
	Default.Warnf(format, args...)
}
