package wordbank

// WordSet is an ordered list of unique words
type WordSet []string

// Len returns the number of words
func (ws WordSet) Len() int { return len(ws) }

// Contains reports whether w is in the set
func (ws WordSet) Contains(w string) bool {
	for _, x := range ws {
		if x == w {
			return true
		}
	}
	return false
}

// Analysis is the full trace of one pipeline run
type Analysis struct {
	Shape    Shape    `json:"shape"`
	Tokens   []string `json:"tokens"`
	Rejected []string `json:"rejected"`
	Words    WordSet  `json:"words"`
}

// Extract turns raw into a word set, it never fails and blank input gives an empty set
func Extract(raw string) WordSet {
	shape := Classify(raw)
	if shape == ShapeEmpty {
		return WordSet{}
	}
	return Dedupe(Filter(Tokenize(raw, shape)))
}

// Analyze runs the pipeline and keeps the intermediate values
func Analyze(raw string) Analysis {
	shape := Classify(raw)
	if shape == ShapeEmpty {
		return Analysis{Shape: shape, Tokens: []string{}, Rejected: []string{}, Words: WordSet{}}
	}
	tokens := Tokenize(raw, shape)
	words, rejected := partition(tokens)
	if rejected == nil {
		rejected = []string{}
	}
	return Analysis{
		Shape:    shape,
		Tokens:   tokens,
		Rejected: rejected,
		Words:    Dedupe(words),
	}
}

// Dedupe drops repeated words keeping the first occurrence
func Dedupe(words []string) WordSet {
	seen := make(map[string]struct{}, len(words))
	out := make(WordSet, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
