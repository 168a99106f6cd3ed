package catalog

import (
	"net/url"
	"strings"
)

// BaseURI returns the catalog address with its final path segment removed.
// Query and fragment are dropped and the trailing slash is kept, so
// "https://h/json/radio.json?v=2" becomes "https://h/json/".
func BaseURI(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		if i := strings.LastIndex(source, "/"); i >= 0 {
			return source[:i+1]
		}
		return source
	}

	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""

	// Cut the escaped form so an encoded slash stays part of its segment
	dir := "/"
	if escaped := u.EscapedPath(); strings.Contains(escaped, "/") {
		dir = escaped[:strings.LastIndex(escaped, "/")+1]
	}
	path, err := url.PathUnescape(dir)
	if err != nil {
		// The cut never splits a %XX triplet, so dir is as valid as the input
		path = dir
	}
	u.Path = path
	u.RawPath = dir

	return u.String()
}

// ResolveImageURI makes image absolute relative to the catalog at source.
// Images that already carry a scheme, and empty images, are returned as is.
func ResolveImageURI(source, image string) string {
	return resolveAgainst(BaseURI(source), image)
}

func resolveAgainst(base, image string) string {
	if image == "" || hasScheme(image) {
		return image
	}
	return base + image
}

// hasScheme reports whether s starts with an RFC 3986 scheme followed by ':'
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		case c == ':':
			return i > 0
		default:
			return false
		}
	}
	return false
}
