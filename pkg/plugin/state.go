package plugin

import (
	"fmt"
	"io"

	"github.com/justyntemme/flsdk/pkg/fl"
)

// Stream is the host's IStream. Both methods return the number of bytes
// transferred and the HRESULT of the call.
type Stream interface {
	Read(p []byte) (n int, hr int32)
	Write(p []byte) (n int, hr int32)
}

// StateReader reads a saved state. It implements io.Reader.
type StateReader struct {
	stream Stream
}

// NewStateReader wraps s.
func NewStateReader(s Stream) *StateReader {
	return &StateReader{stream: s}
}

// Read reads from the stream. It returns io.EOF once the stream has no more
// data.
func (r *StateReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, hr := r.stream.Read(p)
	if err := fl.CheckHResult(hr); err != nil {
		return n, fmt.Errorf("error reading from IStream: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// StateWriter writes the state to save. It implements io.Writer.
type StateWriter struct {
	stream Stream
}

// NewStateWriter wraps s.
func NewStateWriter(s Stream) *StateWriter {
	return &StateWriter{stream: s}
}

func (w *StateWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, hr := w.stream.Write(p)
	if err := fl.CheckHResult(hr); err != nil {
		return n, fmt.Errorf("error writing to IStream: %w", err)
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}
