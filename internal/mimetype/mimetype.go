package mimetype

import "strings"

const DefaultType = "application/octet-stream"

// Suffixes are matched case-sensitively, in order.
var table = []struct {
	suffix, mime string
}{
	{".htm", "text/html"},
	{".html", "text/html"},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".gif", "image/gif"},
}

// ContentType returns the MIME type for name based on its suffix, or
// DefaultType when the suffix is not in the table.
func ContentType(name string) string {
	for _, e := range table {
		if strings.HasSuffix(name, e.suffix) {
			return e.mime
		}
	}
	return DefaultType
}
