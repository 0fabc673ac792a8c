// Package wordbank turns free-form user text into a clean, ordered set of guessable words
// Pipeline order
// 1 Classify the trimmed input into a Shape
// 2 Tokenize with the rules of that shape
// 3 Normalize each candidate, dropping the ones that fail the letter floor
// 4 Dedupe keeping first occurrence
// Everything here is pure and safe for concurrent use
package wordbank

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shape is the classified format of a raw input
type Shape uint8

const (
	// ShapeEmpty marks blank input, nothing past classification runs
	ShapeEmpty Shape = iota
	// ShapeSingleToken is a short bare word like "OCEAN"
	ShapeSingleToken
	// ShapeDelimitedList is an explicit comma separated list
	ShapeDelimitedList
	// ShapeFreeText is prose or anything the narrower rules reject
	ShapeFreeText
)

const (
	// SingleTokenMaxLen is the exclusive rune ceiling for a single token
	SingleTokenMaxLen = 50
	// ListMaxLen is the exclusive rune ceiling for a delimited list
	ListMaxLen = 500
)

// String returns the wire name of the shape
func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeSingleToken:
		return "single_token"
	case ShapeDelimitedList:
		return "delimited_list"
	case ShapeFreeText:
		return "free_text"
	default:
		return "unknown"
	}
}

// MarshalText lets shapes render by name in JSON
func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ws mirrors isSpace for use inside regular expressions
const ws = `[\s\v\p{Z}\x{FEFF}]`

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]` + ws + `+[A-Z]`)
	commaThenLetter  = regexp.MustCompile(`,` + ws + `+[A-Za-z]`)
)

// isSpace reports Unicode white space plus U+FEFF, U+0085 is not white space
func isSpace(r rune) bool { return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r)) }

// trim strips leading and trailing white space as defined by isSpace
func trim(s string) string { return strings.TrimFunc(s, isSpace) }

// rule is one entry of the ordered classifier table
type rule struct {
	name  string
	shape Shape
	match func(trimmed string) bool
}

// rules are evaluated top to bottom, first match wins
var rules = []rule{
	{name: "single_token", shape: ShapeSingleToken, match: isSingleToken},
	{name: "delimited_list", shape: ShapeDelimitedList, match: isDelimitedList},
	{name: "free_text", shape: ShapeFreeText, match: func(string) bool { return true }},
}

// Rules returns the classifier rule names in evaluation order
func Rules() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.name
	}
	return out
}

// Classify returns the shape of raw
func Classify(raw string) Shape {
	s := trim(raw)
	if s == "" {
		return ShapeEmpty
	}
	for _, r := range rules {
		if r.match(s) {
			return r.shape
		}
	}
	return ShapeFreeText
}

func isSingleToken(s string) bool {
	if utf8.RuneCountInString(s) >= SingleTokenMaxLen {
		return false
	}
	return !strings.ContainsFunc(s, isSpace) && !strings.ContainsAny(s, ",.")
}

func isDelimitedList(s string) bool {
	if !strings.Contains(s, ",") || strings.Contains(s, ".") {
		return false
	}
	if sentenceBoundary.MatchString(s) || !commaThenLetter.MatchString(s) {
		return false
	}
	return utf8.RuneCountInString(s) < ListMaxLen
}
