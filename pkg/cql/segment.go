package cql

import "strings"

// lineState is the scanner state inside a single line: the open quote character
// (0 when outside a literal) and the block comment nesting depth. The state is
// deliberately reset at every line boundary - literals and comments don't span
// lines in this dialect, and carrying the state over a broken line would
// cascade the misparse to the rest of the document.
type lineState struct {
	quote byte
	depth int
}

func (ls *lineState) reset() { ls.quote = 0; ls.depth = 0 }

// inComment reports if the scanner is inside a block comment.
func (ls *lineState) inComment() bool { return ls.depth > 0 }

// Segment splits text into executable statements, tracking zero-based source
// line numbers. It is a pure function of its input: same text, same result.
// A semicolon terminates a statement only when the scanner is outside string
// literals and block comments. Candidates with no command keyword left after
// comment stripping are dropped as noise. A trailing statement without a
// terminating semicolon is still emitted.
func Segment(text string) (res []Statement) {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var buf strings.Builder
	start, firstCode := -1, -1

	flush := func(endLine int) {
		defer func() { buf.Reset(); start, firstCode = -1, -1 }()
		stmt := strings.TrimSpace(buf.String())
		if stmt == "" || !hasCommandKeyword(StripComments(stmt)) {
			return // blank or comment-only span, not an error
		}
		if firstCode < 0 {
			firstCode = start
		}
		res = append(res, Statement{Text: stmt, StartLine: start, EndLine: endLine, FirstCodeLine: firstCode})
	}

	st := &lineState{}
	for ln, line := range lines {
		st.reset() // the line-reset invariant, see lineState
		lineComment := false
		skipComment := false // trailing comment after a flush on this line, not a leading block of the next span
		flushedLine := false

		for i := 0; i < len(line); i++ {
			c := line[i]

			if lineComment {
				if !skipComment {
					buf.WriteByte(c)
				}
				continue
			}

			switch {
			case st.quote != 0: // inside a string literal
				if c == st.quote && !escaped(line, i) {
					st.quote = 0
				}
				buf.WriteByte(c)
				if firstCode < 0 {
					firstCode = ln
				}
			case st.inComment():
				if c == '*' && i+1 < len(line) && line[i+1] == '/' {
					buf.WriteString("*/")
					i++
					st.depth--
					continue
				}
				if c == '/' && i+1 < len(line) && line[i+1] == '*' {
					buf.WriteString("/*")
					i++
					st.depth++
					continue
				}
				buf.WriteByte(c)
			default:
				if c == '-' && i+1 < len(line) && line[i+1] == '-' {
					lineComment = true
					if flushedLine && start < 0 {
						skipComment = true // belongs to the finished statement, consume silently
						i++
						continue
					}
					if start < 0 {
						start = ln
					}
					buf.WriteString("--")
					i++
					continue
				}
				if c == '/' && i+1 < len(line) && line[i+1] == '*' {
					st.depth++
					if start < 0 {
						start = ln
					}
					buf.WriteString("/*")
					i++
					continue
				}
				if c == '\'' || c == '"' {
					st.quote = c
				}
				if c == ';' {
					buf.WriteByte(c)
					flush(ln)
					flushedLine = true
					continue
				}
				buf.WriteByte(c)
				if c != ' ' && c != '\t' && c != '\r' {
					if start < 0 {
						start = ln
					}
					if firstCode < 0 {
						firstCode = ln
					}
				}
			}

			if start < 0 && c != ' ' && c != '\t' && c != '\r' {
				start = ln // non-blank char inside a comment or literal opens the span
			}
		}

		if st.quote != 0 {
			// a literal left open at the end of a line is a parse error; cut the
			// statement here so the next line starts clean instead of inheriting
			// the broken state
			flush(ln)
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
	}

	flush(len(lines) - 1) // unterminated tail, end of document acts as terminator
	return res
}

// escaped reports if the character at position i is preceded by an odd number
// of backslashes, i.e. the backslash itself is not escaped.
func escaped(line string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// StripComments removes -- line comments and /* */ block comments, applying the
// same per-line state reset as Segment. Comment markers inside string literals
// are kept as-is.
func StripComments(text string) string {
	var out strings.Builder
	st := &lineState{}

	for ln, line := range strings.Split(text, "\n") {
		st.reset()
		if ln > 0 {
			out.WriteByte('\n')
		}
	scan:
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case st.quote != 0:
				if c == st.quote && !escaped(line, i) {
					st.quote = 0
				}
				out.WriteByte(c)
			case st.inComment():
				if c == '*' && i+1 < len(line) && line[i+1] == '/' {
					i++
					st.depth--
				} else if c == '/' && i+1 < len(line) && line[i+1] == '*' {
					i++
					st.depth++
				}
			default:
				if c == '-' && i+1 < len(line) && line[i+1] == '-' {
					break scan // the rest of the line is a comment
				}
				if c == '/' && i+1 < len(line) && line[i+1] == '*' {
					i++
					st.depth++
					continue
				}
				if c == '\'' || c == '"' {
					st.quote = c
				}
				out.WriteByte(c)
			}
		}
	}
	return out.String()
}
