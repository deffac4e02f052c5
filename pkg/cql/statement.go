// Package cql provides a best-effort lexical pass over CQL text: it splits a
// buffer into executable statements with line-accurate positions and resolves
// per-statement connection directives. It is not a validating parser; malformed
// input degrades to over- or under-segmentation, never to an error.
package cql

import "strings"

// Statement is a contiguous span of source text holding one executable command.
// Line numbers are zero-based and inclusive, relative to the text passed to Segment.
// Text keeps the original comments, the keyword check works on a stripped copy.
type Statement struct {
	Text          string // trimmed statement body, comments preserved
	StartLine     int    // first non-blank line of the span, may be a comment
	EndLine       int    // line of the terminating semicolon, or the last line for an unterminated tail
	FirstCodeLine int    // first line with actual command text
}

// Kind categorizes a statement for execution routing and result presentation.
type Kind int

// Statement kinds, in rough order of how often they show up in a working file.
const (
	KindUnknown Kind = iota
	KindSelect
	KindMutation // insert, update, delete, batch
	KindDDL      // create, alter, drop, truncate
	KindDCL      // grant, revoke, list
	KindUse
	KindDescribe
)

// String implements fmt.Stringer for log messages.
func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindMutation:
		return "mutation"
	case KindDDL:
		return "ddl"
	case KindDCL:
		return "dcl"
	case KindUse:
		return "use"
	case KindDescribe:
		return "describe"
	}
	return "unknown"
}

// HasRows reports if statements of this kind are expected to produce a result set.
func (k Kind) HasRows() bool {
	return k == KindSelect || k == KindDescribe || k == KindDCL
}

// Kind returns the category of the statement, derived from its first code keyword.
func (s Statement) Kind() Kind {
	for _, tok := range tokenize(StripComments(s.Text)) {
		switch tok {
		case "SELECT":
			return KindSelect
		case "INSERT", "UPDATE", "DELETE", "BEGIN", "APPLY", "BATCH":
			return KindMutation
		case "CREATE", "ALTER", "DROP", "TRUNCATE":
			return KindDDL
		case "GRANT", "REVOKE", "LIST":
			return KindDCL
		case "USE":
			return KindUse
		case "DESCRIBE", "DESC":
			return KindDescribe
		default:
			return KindUnknown
		}
	}
	return KindUnknown
}

// commandKeywords is the set of words one of which has to be present in a
// candidate statement after comment stripping. Anything else is treated as
// noise and silently dropped, not reported as an error.
var commandKeywords = map[string]struct{}{
	"SELECT": {}, "INSERT": {}, "UPDATE": {}, "DELETE": {},
	"CREATE": {}, "ALTER": {}, "DROP": {}, "TRUNCATE": {},
	"USE": {}, "BEGIN": {}, "APPLY": {}, "BATCH": {},
	"DESCRIBE": {}, "DESC": {}, "LIST": {}, "GRANT": {}, "REVOKE": {},
}

// hasCommandKeyword checks if the stripped statement text contains any of the
// recognized command keywords as a standalone word, case-insensitive.
func hasCommandKeyword(stripped string) bool {
	for _, tok := range tokenize(stripped) {
		if _, ok := commandKeywords[tok]; ok {
			return true
		}
	}
	return false
}

// tokenize splits text to upper-cased words on anything but letters.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToUpper(text), func(r rune) bool {
		return r < 'A' || r > 'Z'
	})
}
