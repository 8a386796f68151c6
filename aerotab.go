// Package aerotab contains the pieces shared by the spline and polar
// converters. Both converters print a C++ source fragment to stdout: an include
// line followed by a namespace block holding brace-initialized constants.
package aerotab

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sgostarter/i/l"
)

// NewLogger returns the diagnostics logger used by the converters. If verbose
// is set, debug messages go to stderr. Otherwise everything written to it is
// discarded so that stderr only carries fatal errors. Nothing is ever logged
// to stdout, which holds the generated source.
func NewLogger(verbose bool) l.Wrapper {
	if verbose {
		return NewWriterLogger(os.Stderr)
	}
	return l.NewNopLoggerWrapper()
}

// NewWriterLogger returns a logger which records every level, down to debug,
// to w.
func NewWriterLogger(w io.Writer) l.Wrapper {
	logger := l.NewCommLogger(&writerRecorder{w})
	logger.SetLevel(l.LevelDebug)
	return l.NewWrapper(logger)
}

type writerRecorder struct {
	w io.Writer
}

func (r *writerRecorder) Log(_ l.Level, a ...interface{}) {
	fmt.Fprintln(r.w, a...)
}

func (r *writerRecorder) Logf(_ l.Level, format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(r.w, format, a...)
}

// BeginUnit writes the include directive and opens the namespace ns.
func BeginUnit(w io.Writer, include, ns string) error {
	if err := CheckNamespace(ns); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "#include <%s>\n\nnamespace %s {\n\n", include, ns)
	return err
}

// EndUnit closes the namespace opened by BeginUnit.
func EndUnit(w io.Writer, ns string) error {
	_, err := fmt.Fprintf(w, "} // namespace %s\n", ns)
	return err
}

// CheckNamespace returns an error if ns can't be used as a (possibly nested)
// C++ namespace name, e.g. "sim1::control_surface_airfoil".
func CheckNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("Namespace name is empty.")
	}

	for _, part := range strings.Split(ns, "::") {
		if !IsIdentifier(part) {
			return fmt.Errorf(
				"'%s' is not a valid namespace name ('%s' is not an "+
					"identifier).", ns, part,
			)
		}
	}
	return nil
}

// IsIdentifier returns true if s is a valid C++ identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
