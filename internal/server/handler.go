package server

import (
	"github.com/nhdewitt/http-fileserver/internal/request"
	"github.com/nhdewitt/http-fileserver/internal/response"
)

// Handler produces exactly one response for req. A returned error ends the
// connection; it is logged by the server and never retried.
type Handler func(w *response.Writer, req *request.Request) error
