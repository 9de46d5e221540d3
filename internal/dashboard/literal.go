package dashboard

import (
	"net/url"
	"regexp"
	"strings"
)

// firstQuoted matches the shortest double-quoted span.
var firstQuoted = regexp.MustCompile(`"(.*?)"`)

// formEncoding maps QueryEscape output onto the application/x-www-form-urlencoded
// alphabet used by the logging libraries: '*' stays literal, '~' is escaped,
// and the space is %20 rather than '+'. QueryEscape turns a literal '+' into
// %2B, so every '+' left is a space.
var formEncoding = strings.NewReplacer("+", "%20", "%2A", "*", "~", "%7E")

// ExtractLiteral returns the interior of the first double-quoted span in
// text, percent-encoded for a URL query component. Spaces encode as %20.
// It returns "" when text has no quoted span.
func ExtractLiteral(text string) string {
	m := firstQuoted.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return EncodeQuery(m[1])
}

// EncodeQuery percent-encodes the UTF-8 bytes of message as they are.
func EncodeQuery(message string) string {
	if message == "" {
		return ""
	}
	return formEncoding.Replace(url.QueryEscape(message))
}
