package resume

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reFenceOpen  = regexp.MustCompile("^```[a-zA-Z]*\n?")
	reFenceClose = regexp.MustCompile("\n?```$")
)

// StripCodeFence removes a wrapping markdown code fence (with optional
// language tag) from a model reply. Replies without a fence pass through.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = reFenceOpen.ReplaceAllString(s, "")
		s = reFenceClose.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// DecodeModelJSON strips fences and reports whether the remaining reply is
// strict JSON. The cleaned reply is returned either way: callers pass a
// non-JSON reply through unchanged rather than failing the request.
func DecodeModelJSON(s string) (string, bool) {
	s = StripCodeFence(s)
	return s, json.Valid([]byte(s))
}
