package resume

import (
	"regexp"
	"strings"
)

var (
	rePrePunct  = regexp.MustCompile(`\s[,.]`)
	reNewlines  = regexp.MustCompile(`\n+`)
	reSpaces    = regexp.MustCompile(`\s+`)
	reURLScheme = regexp.MustCompile(`http[s]?(://)?`)
	reNonASCII  = regexp.MustCompile(`[^\x00-\x7F]+`)
)

// Normalize cleans extracted resume text before it is embedded into a
// prompt. Pass order matters: each pass operates on the previous output.
// Non-ASCII characters are dropped entirely, so accented names and
// addresses degrade; that is a known limitation of the cleanup, not a bug.
func Normalize(s string) string {
	// "Smith , john" -> "Smith, john"
	s = rePrePunct.ReplaceAllString(s, ",")
	s = reNewlines.ReplaceAllString(s, "\n")
	s = reSpaces.ReplaceAllString(s, " ")
	// URLs stay, only the scheme prefix goes
	s = reURLScheme.ReplaceAllString(s, "")
	s = reNonASCII.ReplaceAllString(s, "")
	// Removals above can reopen whitespace runs; close them again.
	s = reSpaces.ReplaceAllString(s, " ")
	// A run like "a  ." only exposes its pre-punctuation space once the
	// run is collapsed, so the first pass has to run once more here.
	// After the collapse every space has a non-space on its left, which
	// means this pass leaves no new matches behind and the result is a
	// fixpoint.
	s = rePrePunct.ReplaceAllString(s, ",")
	return strings.TrimSpace(s)
}
