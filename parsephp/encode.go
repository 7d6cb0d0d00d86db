package parsephp

import "strings"

const upperHex = "0123456789ABCDEF"

// Encode canonicalizes a caller supplied query string per RFC 3986 §3.4.
//
// Two steps, in this order:
//   - every '%' that does not start a valid %XX triplet becomes "%25";
//   - every byte outside pchar, '/' and '%' is percent-encoded, except a
//     space which becomes the token of enc ('+' or "%20").
func Encode(raw string, enc SpaceEncoding) string {
	fixed := encodePercent(raw)
	var b strings.Builder
	b.Grow(len(fixed))
	for i := 0; i < len(fixed); i++ {
		c := fixed[i]
		switch {
		case c == ' ':
			b.WriteString(enc.Token())
		case isQueryChar(c):
			b.WriteByte(c)
		default:
			writeEscaped(&b, c)
		}
	}
	return b.String()
}

// encodePercent rewrites every '%' not followed by two hex digits to "%25".
func encodePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// isQueryChar reports whether c may appear unescaped in a canonical query:
// unreserved, sub-delims, ':', '@', '/' and '%'.
func isQueryChar(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '-', '.', '_', '~',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=',
		':', '@', '/', '%':
		return true
	}
	return false
}

// escapeComponent escapes a key or value for Serialize. It is strict: every
// reserved character is escaped, so the result never changes structure.
// SpacePlus follows urlencode (unreserved "-_."), SpacePercent20 follows
// rawurlencode (unreserved "-_.~").
func escapeComponent(s string, enc SpaceEncoding) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlnum(c), c == '-', c == '_', c == '.':
			b.WriteByte(c)
		case c == '~' && enc == SpacePercent20:
			b.WriteByte(c)
		case c == ' ':
			b.WriteString(enc.Token())
		default:
			writeEscaped(&b, c)
		}
	}
	return b.String()
}

// UnencodeBrackets turns "%5B" and "%5D" back into literal brackets, for a
// readable rendering of a serialized query.
func UnencodeBrackets(s string) string {
	if !strings.Contains(s, "%5") {
		return s
	}
	return bracketReplacer.Replace(s)
}

var bracketReplacer = strings.NewReplacer("%5B", "[", "%5D", "]", "%5b", "[", "%5d", "]")

func writeEscaped(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&15])
}

func isAlnum(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
