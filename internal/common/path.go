package common

import "strings"

// TrimTrailingSlash removes exactly one trailing slash from s.
func TrimTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

// HasPathPrefix reports whether path lives under prefix.
//
// Matching happens on segment boundaries, so "/foo" covers "/foo", "/foo/bar"
// and "/foo?x=1" but not "/foobar". A prefix ending with "/" is compared as a
// plain string prefix. Prefix segments of the form ":name" match any single
// segment and "*" matches the remainder of the path; static segments compare
// case-insensitively.
func HasPathPrefix(prefix, path string) bool {
	return hasStaticPrefix(prefix, path) || hasDynamicPrefix(prefix, path)
}

func hasStaticPrefix(prefix, path string) bool {
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(path, prefix)
	}

	normalized := path + "/"
	if !strings.HasPrefix(normalized, prefix) {
		return false
	}

	next := normalized[len(prefix)]

	return next == '/' || next == '?'
}

func hasDynamicPrefix(prefix, path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	want := splitSegments(prefix)
	got := splitSegments(path)

	for i, seg := range want {
		if seg == "*" {
			return true
		}

		if i >= len(got) {
			return false
		}

		if strings.HasPrefix(seg, ":") && len(seg) > 1 {
			continue
		}

		if !strings.EqualFold(seg, got[i]) {
			return false
		}
	}

	// A trailing slash on the prefix is strict.
	if strings.HasSuffix(prefix, "/") && len(got) == len(want) && !strings.HasSuffix(path, "/") {
		return false
	}

	return true
}

func splitSegments(p string) []string {
	parts := strings.Split(p, "/")
	segments := parts[:0]

	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return segments
}
