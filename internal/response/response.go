package response

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/nhdewitt/http-fileserver/internal/headers"
	"golang.org/x/text/encoding/charmap"
)

const crlf = "\r\n"

var ErrUnknownStatus = errors.New("unknown status code")

// StatusLine returns the status line for statusCode without its terminator.
// Responses carry no protocol version.
func StatusLine(statusCode StatusCode) (string, error) {
	switch statusCode {
	case StatusOK:
		return "200 OK", nil
	case StatusNotFound:
		return "404 Not Found", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownStatus, statusCode)
	}
}

func WriteStatusLine(w io.Writer, statusCode StatusCode) error {
	line, err := StatusLine(statusCode)
	if err != nil {
		return err
	}
	return writeLine(w, line)
}

func DefaultHeaders(contentType string) headers.Headers {
	h := headers.NewHeaders()
	h.SetNew(headers.ContentType, contentType)

	return h
}

// WriteHeaders writes one line per field, in name order, followed by the
// blank line that ends the header block.
func WriteHeaders(w io.Writer, h headers.Headers) error {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := writeLine(w, headers.WireName(k)+": "+h[k]); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}
	return writeLine(w, "")
}

// writeLine sends line as ISO-8859-1 octets followed by CRLF.
func writeLine(w io.Writer, line string) error {
	b, err := charmap.ISO8859_1.NewEncoder().String(line + crlf)
	if err != nil {
		return fmt.Errorf("error encoding %q: %w", line, err)
	}
	_, err = io.WriteString(w, b)
	return err
}
