package cql

import "regexp"

// A connection directive is a comment line routing the following statement to a
// named connection, e.g. "-- @conn analytics". The syntax is a fixed external
// contract, existing cql files depend on it.
const (
	DirectiveMarker = "@conn"
	directiveWindow = 10 // how far above the statement the directive is searched for
)

var directiveRe = regexp.MustCompile(`^\s*--\s*@conn\s+(\S+)\s*$`)

// ResolveDirective finds the connection directive for a statement starting its
// code at firstCodeLine. It scans backward from that line, at most
// directiveWindow lines, stopping at the first blank line; the nearest match
// wins. The second return is false when no directive applies, which is the
// normal case, not an error.
func ResolveDirective(lines []string, firstCodeLine int) (string, bool) {
	if firstCodeLine < 0 || firstCodeLine >= len(lines) {
		return "", false
	}

	low := firstCodeLine - directiveWindow + 1
	if low < 0 {
		low = 0
	}
	for i := firstCodeLine; i >= low; i-- {
		line := lines[i]
		if i != firstCodeLine && isBlank(line) {
			return "", false // blank line ends the leading comment block
		}
		if m := directiveRe.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' && s[i] != '\r' {
			return false
		}
	}
	return true
}
