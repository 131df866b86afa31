package router

import "strings"

const wildcard = "*"

type segment struct {
	value   string
	dynamic bool
}

// splitPath splits on "/" and drops empty segments.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseSegment classifies a registration segment. Dynamic segments are
// written as [name] or :name; ok is false for an empty name or a wildcard.
func parseSegment(s string) (segment, bool) {
	switch {
	case s == wildcard:
		return segment{}, false
	case strings.HasPrefix(s, ":"):
		name := s[1:]
		return segment{value: name, dynamic: true}, validParam(name)
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		name := s[1 : len(s)-1]
		return segment{value: name, dynamic: true}, validParam(name)
	}
	return segment{value: s}, true
}

func validParam(name string) bool {
	return name != "" && !strings.ContainsAny(name, "[]:/*")
}

func (s segment) String() string {
	if s.dynamic {
		return ":" + s.value
	}
	return s.value
}

func parseSegments(parts []string) ([]segment, bool) {
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		seg, ok := parseSegment(p)
		if !ok {
			return nil, false
		}
		segs = append(segs, seg)
	}
	return segs, true
}

func patternOf(segs []segment) string {
	if len(segs) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}
