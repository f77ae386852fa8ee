package resume

import "strings"

// Destinations whose content is formatting metadata, not document text.
var rtfMetaGroups = map[string]bool{
	"fonttbl":    true,
	"colortbl":   true,
	"stylesheet": true,
	"info":       true,
	"header":     true,
	"footer":     true,
	"pict":       true,
	"themedata":  true,
	"xmlnstbl":   true,
}

// rtfToText strips RTF control syntax from s and returns the plain text.
// Paragraph and line controls become newlines, ASCII hex escapes are
// decoded, and metadata destinations (font tables, embedded pictures and
// the like) are dropped wholesale.
func rtfToText(s string) string {
	var out strings.Builder
	depth := 0
	skipDepth := 0 // group level of an ignored destination, 0 = not skipping
	i := 0
	for i < len(s) {
		switch c := s[i]; c {
		case '{':
			depth++
			i++
		case '}':
			if skipDepth > 0 && depth == skipDepth {
				skipDepth = 0
			}
			depth--
			i++
		case '\\':
			i++
			if i >= len(s) {
				return out.String()
			}
			switch s[i] {
			case '\\', '{', '}':
				if skipDepth == 0 {
					out.WriteByte(s[i])
				}
				i++
			case '~':
				if skipDepth == 0 {
					out.WriteByte(' ')
				}
				i++
			case '\'':
				// \'hh hex escape; only the ASCII range survives cleanup
				if i+3 <= len(s) {
					if b, ok := hexByte(s[i+1], s[i+2]); ok {
						if skipDepth == 0 && b < 0x80 {
							out.WriteByte(b)
						}
						i += 3
						continue
					}
				}
				i++
			case '*':
				// \* introduces an ignorable destination
				if skipDepth == 0 {
					skipDepth = depth
				}
				i++
			default:
				i = rtfControlWord(s, i, &out, &skipDepth, depth)
			}
		case '\r', '\n':
			i++
		default:
			if skipDepth == 0 {
				out.WriteByte(c)
			}
			i++
		}
	}
	return out.String()
}

// rtfControlWord consumes a control word starting at s[i] and emits its
// textual equivalent, returning the index after the word and its optional
// numeric parameter and delimiting space.
func rtfControlWord(s string, i int, out *strings.Builder, skipDepth *int, depth int) int {
	j := i
	for j < len(s) && isASCIILetter(s[j]) {
		j++
	}
	if j == i {
		// Unknown control symbol, consume it and move on.
		return i + 1
	}
	word := s[i:j]
	k := j
	if k < len(s) && s[k] == '-' {
		k++
	}
	for k < len(s) && s[k] >= '0' && s[k] <= '9' {
		k++
	}
	param := s[j:k]
	if k < len(s) && s[k] == ' ' {
		k++
	}
	if *skipDepth > 0 {
		return k
	}
	switch word {
	case "par", "line", "sect", "page":
		out.WriteByte('\n')
	case "tab":
		out.WriteByte('\t')
	case "emdash", "endash":
		out.WriteByte('-')
	case "lquote", "rquote":
		out.WriteByte('\'')
	case "ldblquote", "rdblquote":
		out.WriteByte('"')
	case "u":
		// \uN with a fallback character following; keep ASCII only
		if n, ok := rtfAtoi(param); ok && n >= 0x20 && n < 0x80 {
			out.WriteByte(byte(n))
		}
		if k < len(s) && s[k] == '?' {
			k++
		}
	default:
		if rtfMetaGroups[word] {
			*skipDepth = depth
		}
	}
	return k
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexVal(hi)
	l, ok2 := hexVal(lo)
	return h<<4 | l, ok1 && ok2
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func rtfAtoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
