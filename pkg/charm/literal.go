package charm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StringLiteral encodes s as a Python string literal. The quote character
// follows repr(): single quotes unless the value holds a single quote and no
// double quote.
func StringLiteral(s string) (string, error) {
	if reason := literalProblem(s); reason != "" {
		return "", &SerializationError{Field: "value", Index: -1, Value: s, Reason: reason}
	}
	return quote(s), nil
}

// ListLiteral encodes items as a Python list of string literals, keeping the
// order of items. A nil or empty slice encodes as "[]".
func ListLiteral(items []string) (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if reason := literalProblem(item); reason != "" {
			return "", &SerializationError{Field: "list", Index: i, Value: item, Reason: reason}
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(item))
	}
	b.WriteByte(']')
	return b.String(), nil
}

func literalProblem(s string) string {
	if !utf8.ValidString(s) {
		return "invalid UTF-8"
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "contains control character " + quoteRune(r)
		}
	}
	return ""
}

func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == q {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(q)
	return b.String()
}
