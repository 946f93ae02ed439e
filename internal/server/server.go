package server

import (
	"fmt"
	"io"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nhdewitt/http-fileserver/internal/request"
	"github.com/nhdewitt/http-fileserver/internal/response"
)

const maxAcceptDelay = time.Second

const (
	// Input still unread once the response is out is drained up to
	// lingerLimit bytes or for lingerTimeout before the socket is closed.
	lingerLimit   = 256 << 10
	lingerTimeout = 500 * time.Millisecond
)

// Server accepts connections and runs one goroutine per connection. Workers
// share no state. Reading the request and writing the response have no
// deadlines: a stalled client holds its goroutine and connection until it
// goes away.
type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	handler     Handler
	conns       sync.WaitGroup
}

func Serve(port int, handler Handler) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	return serveListener(listener, handler), nil
}

func serveListener(listener net.Listener, handler Handler) *Server {
	s := &Server{
		listener: listener,
		handler:  handler,
	}
	s.isListening.Store(true)
	go s.listen()

	return s
}

// Addr is the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close stops accepting connections. Connections already accepted are
// served to completion; use Wait to block on them.
func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

// Wait blocks until every accepted connection has been closed.
func (s *Server) Wait() {
	s.conns.Wait()
}

func (s *Server) listen() {
	var delay time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			delay = nextAcceptDelay(delay)
			log.Printf("Error accepting connection: %v; retrying in %v", err, delay)
			time.Sleep(delay)
			continue
		}
		delay = 0

		s.conns.Add(1)
		go func() {
			defer s.conns.Done()
			s.handle(conn)
		}()
	}
}

func (s *Server) handle(conn net.Conn) {
	defer closeConn(conn)
	defer func() {
		if p := recover(); p != nil {
			log.Printf("panic serving %s: %v", conn.RemoteAddr(), p)
		}
	}()

	req, err := request.RequestFromReader(conn)
	if err != nil {
		log.Printf("Error reading request from %s: %v", conn.RemoteAddr(), err)
		return
	}
	logRequest(req)

	resp := response.NewWriter(conn)
	if err := s.handler(resp, req); err != nil {
		log.Printf("Error serving %s to %s: %v", req.RequestLine.RequestTarget, conn.RemoteAddr(), err)
	}
}

func logRequest(req *request.Request) {
	rl := req.RequestLine
	log.Printf("REQUEST %s %s %s", rl.Method, rl.RequestTarget, rl.HttpVersion)
	for _, h := range req.Headers {
		log.Printf("  %s", h)
	}
}

type halfCloser interface {
	CloseWrite() error
	CloseRead() error
}

// nextAcceptDelay doubles the wait after a failed Accept, from 5ms up to
// maxAcceptDelay.
func nextAcceptDelay(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}
	return min(2*d, maxAcceptDelay)
}

// closeConn shuts down the output side, then the input side, then releases
// the connection. Input the client sent past the header block is drained
// first: closing a socket with unread data resets it, and the client would
// lose the tail of the response. Errors are ignored; the peer may already be
// gone.
func closeConn(conn net.Conn) {
	if hc, ok := conn.(halfCloser); ok {
		hc.CloseWrite()
		conn.SetReadDeadline(time.Now().Add(lingerTimeout))
		io.CopyN(io.Discard, conn, lingerLimit)
		hc.CloseRead()
	}
	conn.Close()
}
