// Package domain holds DTOs and ports for custom word banks
package domain

import (
	"time"

	"hangman/internal/core/catalog"
	"hangman/internal/core/wordbank"
)

// PreviewInput is raw text to run through extraction
type PreviewInput struct {
	Input string `json:"input" validate:"max=100000" example:"ocean, river, lake"`
}

// Preview is the extraction trace plus the verdict a save would get
type Preview struct {
	wordbank.Analysis
	Count  int    `json:"count"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// CreateInput names a bank and carries its raw text
// name rules live in the wordbank package so their reasons reach the player unchanged
type CreateInput struct {
	Name  string `json:"name"  example:"Ocean words"`
	Input string `json:"input" validate:"max=100000" example:"ocean, river, lake"`
}

// Bank is a stored word bank with its words in extraction order
type Bank struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	Words     []string  `json:"words"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayQuery picks the pool for a new game
type PlayQuery struct {
	Difficulty string
	Category   string
}

// Pool sources
const (
	SourceWordBank = "word_bank"
	SourceCategory = "category"
)

// Pool is the word list a game draws from
type Pool struct {
	Source     string             `json:"source"`
	WordBankID *string            `json:"word_bank_id,omitempty"`
	Category   string             `json:"category,omitempty"`
	Name       string             `json:"name"`
	Difficulty catalog.Difficulty `json:"difficulty"`
	Level      catalog.Level      `json:"level"`
	Words      []string           `json:"words"`
}
