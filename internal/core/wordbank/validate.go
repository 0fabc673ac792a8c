package wordbank

import (
	"errors"
	"unicode/utf8"
)

const (
	// MaxWords is the most words a bank may hold
	MaxWords = 1000
	// MaxNameLen is the longest bank name in runes after trimming
	MaxNameLen = 255
)

var (
	// ErrInvalidName matches name validation failures via errors.Is
	ErrInvalidName = errors.New("invalid word bank name")
	// ErrInvalidWordSet matches word set validation failures via errors.Is
	ErrInvalidWordSet = errors.New("invalid word set")
)

// Reasons surfaced to end users unchanged
const (
	ReasonNameRequired = "word bank name is required"
	ReasonNameBlank    = "word bank name cannot be empty"
	ReasonNameTooLong  = "word bank name is too long (max 255 characters)"
	ReasonNoWords      = "no valid words found"
	ReasonTooManyWords = "too many words"
)

// ValidationError carries the failed check and a human readable reason
type ValidationError struct {
	Kind   error
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Is matches the sentinel kind
func (e *ValidationError) Is(target error) bool { return target == e.Kind }

// Field names the input the error belongs to
func (e *ValidationError) Field() string {
	if e.Kind == ErrInvalidName {
		return "name"
	}
	return "input"
}

func invalid(kind error, reason string) error {
	return &ValidationError{Kind: kind, Reason: reason}
}

// TrimName returns name without surrounding white space
func TrimName(name string) string { return trim(name) }

// ValidateName checks a bank display name
func ValidateName(name string) error {
	if name == "" {
		return invalid(ErrInvalidName, ReasonNameRequired)
	}
	t := trim(name)
	if t == "" {
		return invalid(ErrInvalidName, ReasonNameBlank)
	}
	if utf8.RuneCountInString(t) > MaxNameLen {
		return invalid(ErrInvalidName, ReasonNameTooLong)
	}
	return nil
}

// ValidateWords checks the size bounds of a word set
func ValidateWords(words WordSet) error {
	switch n := len(words); {
	case n == 0:
		return invalid(ErrInvalidWordSet, ReasonNoWords)
	case n > MaxWords:
		return invalid(ErrInvalidWordSet, ReasonTooManyWords)
	}
	return nil
}

// ValidateContainer gates persistence, the name is checked before the words
func ValidateContainer(name string, words WordSet) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidateWords(words)
}
