// Package fileserver answers requests with files from a root directory.
//
// A target that names a readable regular file gets "200 OK" and the file's
// bytes; anything else gets "404 Not Found" and a fixed HTML page. Both
// branches take their content type from the suffix table in mimetype.
package fileserver

import (
	"fmt"
	"log"

	"github.com/nhdewitt/http-fileserver/internal/headers"
	"github.com/nhdewitt/http-fileserver/internal/mimetype"
	"github.com/nhdewitt/http-fileserver/internal/request"
	"github.com/nhdewitt/http-fileserver/internal/resource"
	"github.com/nhdewitt/http-fileserver/internal/response"
	"github.com/nhdewitt/http-fileserver/internal/server"
)

type opener func(root, target string) (*resource.Resource, bool)

// Handler serves files below root. The request method is not consulted.
func Handler(root string) server.Handler {
	return newHandler(root, resource.Open)
}

func newHandler(root string, open opener) server.Handler {
	return func(w *response.Writer, req *request.Request) error {
		target := req.RequestLine.RequestTarget

		res, found := open(root, target)
		if !found {
			return notFound(w, resource.Path(root, target))
		}
		defer res.Close()

		return serveFile(w, res)
	}
}

func serveFile(w *response.Writer, res *resource.Resource) error {
	h := response.DefaultHeaders(mimetype.ContentType(res.Path))
	if err := w.WriteStatusLine(response.StatusOK); err != nil {
		return err
	}
	if err := w.WriteHeaders(h); err != nil {
		return err
	}
	n, err := w.CopyBody(res)
	if err != nil {
		return fmt.Errorf("error sending %s after %d bytes: %w", res.Path, n, err)
	}

	log.Printf("RESPONSE %d %s (%d bytes)", response.StatusOK, h.Get(headers.ContentType), n)
	return nil
}

func notFound(w *response.Writer, path string) error {
	h := response.DefaultHeaders(mimetype.ContentType(path))
	if err := w.WriteStatusLine(response.StatusNotFound); err != nil {
		return err
	}
	if err := w.WriteHeaders(h); err != nil {
		return err
	}
	if _, err := w.WriteBody([]byte(response.NotFoundBody)); err != nil {
		return err
	}

	log.Printf("RESPONSE %d %s %s", response.StatusNotFound, h.Get(headers.ContentType), response.NotFoundBody)
	return nil
}
