package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all of its writers, used to tee logs to a
// rotated file and stdout. A failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer{}, writers...),
	}
}

// Write reports len(p) if at least one writer succeeded, so the log
// library does not treat a partial failure as a short write.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err       error
		succeeded int
	)
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		succeeded++
	}
	if succeeded == 0 && len(cw.Writers) > 0 {
		return 0, err
	}
	return len(p), err
}
