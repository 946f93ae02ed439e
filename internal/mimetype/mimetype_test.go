package mimetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	cases := []struct {
		name, want string
	}{
		{"./index.html", "text/html"},
		{"./index.htm", "text/html"},
		{"./a/b/photo.jpg", "image/jpeg"},
		{"./photo.jpeg", "image/jpeg"},
		{"./cat.gif", "image/gif"},
		{"./notes.txt", "application/octet-stream"},
		{"./archive.tar.gz", "application/octet-stream"},
		{"./noext", "application/octet-stream"},
		{"", "application/octet-stream"},
		// case-sensitive
		{"./INDEX.HTML", "application/octet-stream"},
		{"./photo.JPG", "application/octet-stream"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ContentType(c.name), c.name)
	}
}
