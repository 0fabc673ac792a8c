package wordbank

import "strings"

// Tokenize splits raw into candidate tokens using the rules of shape
// candidates may still carry digits and punctuation, Normalize deals with them
func Tokenize(raw string, shape Shape) []string {
	s := trim(raw)
	if s == "" {
		return nil
	}
	switch shape {
	case ShapeSingleToken:
		return []string{s}
	case ShapeDelimitedList:
		return splitList(s)
	case ShapeFreeText:
		return splitText(s)
	default:
		return nil
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = trim(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitText turns apostrophes and sentence punctuation into spaces and splits on white space
// "Earth's" becomes "Earth" and "s"
func splitText(s string) []string {
	s = strings.Map(func(r rune) rune {
		if isApostrophe(r) || isSeparator(r) {
			return ' '
		}
		return r
	}, s)
	return strings.FieldsFunc(s, isSpace)
}

func isApostrophe(r rune) bool {
	switch r {
	case '\'', '\u2018', '\u2019', '`':
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '(', ')', '[', ']', '{', '}', '"', '-':
		return true
	}
	return false
}
