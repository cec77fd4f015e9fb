package charm

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// pythonKeywords lists the hard keywords of Python 3; none of them may be used
// as a class name or import alias.
var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// CheckIdentifier validates name as a Python identifier. The returned error is
// an *InvalidIdentifierError tagged with field.
func CheckIdentifier(field, name string) error {
	if reason := identifierProblem(name); reason != "" {
		return &InvalidIdentifierError{Field: field, Value: name, Reason: reason}
	}
	return nil
}

// CheckDottedName validates a dotted reference such as
// "charms_openstack.charm.OpenStackCharm"; every segment must be an identifier.
func CheckDottedName(field, name string) error {
	if name == "" {
		return &InvalidIdentifierError{Field: field, Value: name, Reason: "empty name"}
	}
	for _, segment := range strings.Split(name, ".") {
		if reason := identifierProblem(segment); reason != "" {
			return &InvalidIdentifierError{Field: field, Value: name, Reason: reason}
		}
	}
	return nil
}

// IsIdentifier reports whether name can be emitted as a Python identifier.
func IsIdentifier(name string) bool {
	return identifierProblem(name) == ""
}

func identifierProblem(name string) string {
	if name == "" {
		return "empty name"
	}
	if _, reserved := pythonKeywords[name]; reserved {
		return "reserved keyword"
	}
	if name == "__debug__" {
		return "reserved name"
	}
	for i, r := range name {
		if i == 0 {
			if !isIdentifierStart(r) {
				return "must start with a letter or underscore"
			}
			continue
		}
		if !isIdentifierContinue(r) {
			return "contains invalid character " + quoteRune(r)
		}
	}
	return ""
}

// isIdentifierStart follows Unicode XID_Start plus '_', as Python does.
func isIdentifierStart(r rune) bool {
	if r == '_' {
		return true
	}
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_ID_Start)
}

// isIdentifierContinue follows Unicode XID_Continue.
func isIdentifierContinue(r rune) bool {
	if isIdentifierStart(r) {
		return true
	}
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func quoteRune(r rune) string {
	if unicode.IsPrint(r) {
		return strconv.QuoteRune(r)
	}
	return fmt.Sprintf("U+%04X", r)
}
