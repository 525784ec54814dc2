package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr.
// Stdout is left free for image data.
type DefaultLogger struct {
	out io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a logger writing to w, or to stderr when w is nil
func NewDefaultLogger(w io.Writer) core.Logger {
	if w == nil {
		w = os.Stderr
	}
	return &DefaultLogger{out: w}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
