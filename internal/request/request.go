package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

type requestState int

const (
	stateInitialized requestState = iota
	stateParsingHeaders
	stateDone
)

const (
	bufferSize     = 1024
	maxRequestSize = 1 << 20
	crlf           = "\r\n"
)

var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrRequestTooLarge  = errors.New("request header block too large")
)

// Request is the parsed head of a single request. Header lines are kept
// verbatim; they are only read so the stream is consumed up to the blank line.
type Request struct {
	RequestLine RequestLine
	Headers     []string
	state       requestState
}

type RequestLine struct {
	HttpVersion   string
	RequestTarget string
	Method        string
}

// RequestFromReader reads the request line and the header block from reader,
// stopping once the blank line that ends the headers has been consumed.
func RequestFromReader(reader io.Reader) (*Request, error) {
	buf := make([]byte, bufferSize)
	readToIndex := 0

	r := Request{
		state: stateInitialized,
	}

	for r.state != stateDone {
		if readToIndex == len(buf) {
			if len(buf) >= maxRequestSize {
				return nil, ErrRequestTooLarge
			}
			tmpBuf := make([]byte, len(buf)*2)
			copy(tmpBuf, buf[:readToIndex])
			buf = tmpBuf
		}

		n, err := reader.Read(buf[readToIndex:])
		if n > 0 {
			readToIndex += n

			bytesParsed, perr := r.parse(buf[:readToIndex])
			if perr != nil {
				return nil, perr
			}

			copy(buf, buf[bytesParsed:readToIndex])
			readToIndex -= bytesParsed
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				if r.state != stateDone {
					return nil, fmt.Errorf("%w: early EOF", ErrMalformedRequest)
				}
				break
			}
			return nil, err
		}
	}

	return &r, nil
}

func (r *Request) parse(data []byte) (int, error) {
	total := 0
	for r.state != stateDone {
		n, err := r.parseSingle(data[total:])
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	return total, nil
}

func (r *Request) parseSingle(data []byte) (int, error) {
	switch r.state {
	case stateInitialized:
		parsed, parsedRequest, err := parseRequestLine(data)
		if err != nil {
			return 0, err
		}
		if parsed == 0 {
			return 0, nil
		}

		r.RequestLine = parsedRequest
		r.state = stateParsingHeaders

		return parsed, nil
	case stateParsingHeaders:
		idx := bytes.Index(data, []byte(crlf))
		if idx == -1 {
			return 0, nil
		}
		if idx == 0 {
			r.state = stateDone
		} else {
			r.Headers = append(r.Headers, string(data[:idx]))
		}
		return idx + len(crlf), nil
	case stateDone:
		return 0, fmt.Errorf("error: trying to read data in a done state")
	default:
		return 0, fmt.Errorf("error: unknown state")
	}
}

func parseRequestLine(req []byte) (int, RequestLine, error) {
	idx := bytes.Index(req, []byte(crlf))
	if idx == -1 {
		return 0, RequestLine{}, nil
	}
	line := string(req[:idx])
	consumed := idx + len(crlf)

	rl, err := requestLineFromString(line)
	if err != nil {
		return 0, RequestLine{}, err
	}

	return consumed, *rl, nil
}

// requestLineFromString splits on whitespace. The method is not checked:
// anything that carries a target is served as a GET. The version is optional.
func requestLineFromString(s string) (*RequestLine, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: invalid request line: %q", ErrMalformedRequest, s)
	}

	rl := &RequestLine{
		Method:        parts[0],
		RequestTarget: parts[1],
	}
	if len(parts) > 2 {
		rl.HttpVersion = parts[2]
	}

	return rl, nil
}
