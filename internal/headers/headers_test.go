package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadersSetNewGet(t *testing.T) {
	// Test: keys are case-insensitive
	h := NewHeaders()
	h.SetNew("Content-Type", "text/html")
	assert.Equal(t, "text/html", h["content-type"])
	assert.Equal(t, "text/html", h.Get("CONTENT-TYPE"))
	assert.Equal(t, "text/html", h.Get(ContentType))

	// Test: SetNew replaces
	h.SetNew("content-TYPE", "image/jpeg")
	assert.Equal(t, "image/jpeg", h.Get(ContentType))
	assert.Len(t, h, 1)

	// Test: Get of a missing key is empty
	assert.Equal(t, "", h.Get("host"))
}

func TestWireName(t *testing.T) {
	assert.Equal(t, "Content-type", WireName("content-type"))
	assert.Equal(t, "Content-type", WireName("CONTENT-TYPE"))
	assert.Equal(t, "Host", WireName("host"))
	assert.Equal(t, "X-content-sha256", WireName("x-content-sha256"))
}
