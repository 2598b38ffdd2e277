package param

import (
	"io"

	"github.com/arloliu/go-scpi/logger"
)

// TraceSink wraps a byte sink so every write is visible in the log, which
// helps when bringing up a new instrument command set.
//
// The returned writer forwards all writes to w unchanged. log receives one
// debug entry per byte run and an error entry when the underlying sink
// fails; the sink's error is still returned unchanged to the encoder.
func TraceSink(w io.Writer, log logger.Logger) io.Writer {
	return &traceSink{w: w, log: log}
}

type traceSink struct {
	w   io.Writer
	log logger.Logger
}

func (t *traceSink) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		t.log.Error("sink write failed", "written", n, "error", err)
		return n, err
	}

	t.log.Debug("sink write", "bytes", string(p[:n]))

	return n, nil
}
