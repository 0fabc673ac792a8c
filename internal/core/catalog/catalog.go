// Package catalog holds the built-in word banks and the difficulty table used to pick game words
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Difficulty names a difficulty level
type Difficulty string

// Known difficulties
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Category is one built-in bank
type Category struct {
	Key   string   `yaml:"key"   json:"key"`
	Name  string   `yaml:"name"  json:"name"`
	Icon  string   `yaml:"icon"  json:"icon"`
	Words []string `yaml:"words" json:"words"`
}

// Level describes the word length window and limits of one difficulty
// MaxLen 0 means no upper bound
type Level struct {
	MinLen           int `yaml:"min_len"            json:"min_len"`
	MaxLen           int `yaml:"max_len"            json:"max_len"`
	TimeLimitSeconds int `yaml:"time_limit_seconds" json:"time_limit_seconds"`
	MaxWrong         int `yaml:"max_wrong"          json:"max_wrong"`
}

// TimeLimit returns the round timer as a duration
func (l Level) TimeLimit() time.Duration { return time.Duration(l.TimeLimitSeconds) * time.Second }

// Accepts reports whether word fits the length window
func (l Level) Accepts(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= l.MinLen && (l.MaxLen == 0 || n <= l.MaxLen)
}

type file struct {
	Difficulties map[Difficulty]Level `yaml:"difficulties"`
	Categories   []Category           `yaml:"categories"`
}

// Catalog is an immutable set of categories plus the difficulty table
type Catalog struct {
	levels     map[Difficulty]Level
	categories []Category
	byKey      map[string]int
}

var (
	defOnce sync.Once
	def     *Catalog
	defErr  error
)

// Default returns the embedded catalog, parsed once
func Default() (*Catalog, error) {
	defOnce.Do(func() { def, defErr = Parse(defaultsYAML) })
	return def, defErr
}

// MustDefault is Default for process bootstrap
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Errorf("catalog: embedded defaults: %w", err))
	}
	return c
}

// Parse decodes and checks a catalog document
func Parse(b []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if _, ok := f.Difficulties[d]; !ok {
			return nil, fmt.Errorf("catalog: missing difficulty %q", d)
		}
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("catalog: no categories")
	}

	c := &Catalog{
		levels:     f.Difficulties,
		categories: make([]Category, 0, len(f.Categories)),
		byKey:      make(map[string]int, len(f.Categories)),
	}
	for _, cat := range f.Categories {
		cat.Key = strings.ToLower(strings.TrimSpace(cat.Key))
		if cat.Key == "" {
			return nil, fmt.Errorf("catalog: category %q has no key", cat.Name)
		}
		if _, dup := c.byKey[cat.Key]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", cat.Key)
		}
		if len(cat.Words) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no words", cat.Key)
		}
		for _, w := range cat.Words {
			if !isGameWord(w) {
				return nil, fmt.Errorf("catalog: category %q has invalid word %q", cat.Key, w)
			}
		}
		c.byKey[cat.Key] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// isGameWord accepts A-Z with single inner spaces
func isGameWord(w string) bool {
	if w == "" || w[0] == ' ' || w[len(w)-1] == ' ' || strings.Contains(w, "  ") {
		return false
	}
	for i := 0; i < len(w); i++ {
		if ch := w[i]; ch != ' ' && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

// Categories returns the categories in file order
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by key
func (c *Catalog) Category(key string) (Category, bool) {
	i, ok := c.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Level returns the settings of d
func (c *Catalog) Level(d Difficulty) Level { return c.levels[d] }

// Pick filters words by the length window of d
// when nothing fits the whole list is returned
func (c *Catalog) Pick(words []string, d Difficulty) []string {
	lvl, ok := c.levels[d]
	if !ok {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if lvl.Accepts(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return words
	}
	return out
}

// ParseDifficulty maps user input to a Difficulty, blank means medium
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Medium, nil
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}
