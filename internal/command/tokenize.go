package command

import "strings"

// Tokenize splits a command line into tokens. Whitespace outside double
// quotes separates tokens; a double quote toggles quoting; inside quotes a
// backslash takes the next character literally. An unterminated quote runs
// to the end of the input. An explicitly quoted empty string is a token.
func Tokenize(line string) []string {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		started bool
	)

	flush := func() {
		if started {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
		started = false
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			flush()
		case inQuote && c == '\\':
			if i+1 < len(runes) {
				i++
				cur.WriteRune(runes[i])
			}
		default:
			cur.WriteRune(c)
			started = true
		}
	}
	flush()

	return tokens
}

// Quote returns s as a single token Tokenize reads back unchanged. Values
// containing whitespace or a double quote, and the empty string, are wrapped
// in double quotes with " and \ escaped.
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\r\"") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
