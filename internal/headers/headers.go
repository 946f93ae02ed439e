package headers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const ContentType = "content-type"

// Headers holds response header fields keyed by lower-cased name.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// SetNew stores value under key, replacing any earlier value.
func (h Headers) SetNew(key, value string) {
	key = strings.ToLower(key)
	h[key] = value
}

func (h Headers) Get(key string) (value string) {
	key = strings.ToLower(key)
	if v, ok := h[key]; ok {
		return v
	}
	return ""
}

// WireName renders a field name the way it is sent: first segment
// capitalized, everything after the first hyphen lower case.
// "content-type" becomes "Content-type".
func WireName(key string) string {
	head, tail, found := strings.Cut(key, "-")
	head = cases.Title(language.English).String(head)
	if !found {
		return head
	}
	return head + "-" + cases.Lower(language.English).String(tail)
}
