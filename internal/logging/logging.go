// Package logging hands out namespaced loggers ("td-enemy", "td-wave", ...)
// that share one output and one level.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	level             = log.InfoLevel
	loggers           = map[string]*log.Logger{}
)

// New returns the logger for namespace, creating it on first use.
func New(namespace string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[namespace]; ok {
		return l
	}
	l := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "td-" + namespace,
		Level:           level,
	})
	loggers[namespace] = l
	return l
}

// SetLevel parses name ("debug", "info", ...) and applies it to every logger.
// Unknown names fall back to info.
func SetLevel(name string) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		lvl = log.InfoLevel
	}

	mu.Lock()
	defer mu.Unlock()
	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

// SetOutput redirects every logger, e.g. to io.Discard in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}
