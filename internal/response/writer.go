package response

import (
	"errors"
	"fmt"
	"io"

	"github.com/nhdewitt/http-fileserver/internal/headers"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

const chunkSize = 1024

var ErrWriterState = errors.New("writer state out-of-order")

type Writer struct {
	writer io.Writer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return ErrWriterState
	}

	if err := WriteStatusLine(w.writer, statusCode); err != nil {
		return err
	}

	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	if w.state != StateWritingHeaders {
		return ErrWriterState
	}

	if err := WriteHeaders(w.writer, h); err != nil {
		return err
	}

	w.state = StateWritingBody
	return nil
}

// WriteBody sends p as the entire body.
func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, ErrWriterState
	}

	w.state = StateDone
	return w.writer.Write(p)
}

// CopyBody streams r to the connection in fixed-size chunks until EOF.
func (w *Writer) CopyBody(r io.Reader) (int64, error) {
	if w.state != StateWritingBody {
		return 0, ErrWriterState
	}
	w.state = StateDone

	b := make([]byte, chunkSize)
	var written int64
	for {
		n, rerr := r.Read(b)
		if n > 0 {
			wn, err := w.writer.Write(b[:n])
			written += int64(wn)
			if err != nil {
				return written, err
			}
			if wn != n {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, fmt.Errorf("error reading body: %w", rerr)
		}
	}
}
