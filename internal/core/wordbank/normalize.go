package wordbank

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// MinWordLen is the shortest letter run accepted as a word
const MinWordLen = 4

// chains hold strip then upper transformers, reset before reuse
var chains = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.Predicate(notLatinLetter)),
			cases.Upper(language.Und),
		)
	},
}

func notLatinLetter(r rune) bool {
	return (r < 'A' || r > 'Z') && (r < 'a' || r > 'z')
}

// Normalize strips everything but A-Z and a-z from token and upper cases the rest
// ok is false when fewer than MinWordLen letters survive
func Normalize(token string) (word string, ok bool) {
	if len(token) < MinWordLen {
		return "", false
	}
	tr := chains.Get().(transform.Transformer)
	out, _, err := transform.String(tr, token)
	tr.Reset()
	chains.Put(tr)
	if err != nil || len(out) < MinWordLen {
		return "", false
	}
	return out, true
}

// Filter keeps the tokens that normalize to a word, in order
// rejected tokens are dropped without signal
func Filter(tokens []string) []string {
	out, _ := partition(tokens)
	return out
}

// partition splits tokens into normalized words and the raw tokens that were dropped
func partition(tokens []string) (words, rejected []string) {
	words = make([]string, 0, len(tokens))
	for _, t := range tokens {
		if w, ok := Normalize(t); ok {
			words = append(words, w)
			continue
		}
		rejected = append(rejected, t)
	}
	return words, rejected
}
