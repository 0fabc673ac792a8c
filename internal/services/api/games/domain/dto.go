// Package domain holds DTOs and ports for finished games
package domain

import "time"

// RecordInput is a finished game reported by the client
type RecordInput struct {
	Won          *bool  `json:"won"           validate:"required"                            example:"true"`
	Score        int    `json:"score"         validate:"min=0,max=1000000"                   example:"150"`
	Word         string `json:"word"          validate:"omitempty,max=100"                   example:"ELEPHANT"`
	Difficulty   string `json:"difficulty"    validate:"omitempty,oneof=easy medium hard"    example:"medium"`
	TimeTaken    int    `json:"time_taken"    validate:"min=0,max=86400"                     example:"31"`
	WrongGuesses int    `json:"wrong_guesses" validate:"min=0,max=26"                        example:"2"`
}

// Game is one history entry
type Game struct {
	ID           string    `json:"id"`
	Word         string    `json:"word"`
	Difficulty   string    `json:"difficulty"`
	Score        int       `json:"score"`
	Won          bool      `json:"won"`
	TimeTaken    int       `json:"time_taken"`
	WrongGuesses int       `json:"wrong_guesses"`
	PlayedAt     time.Time `json:"played_at"`
}

// Totals are the aggregates after a game was recorded
type Totals struct {
	GamesPlayed int   `json:"games_played"`
	GamesWon    int   `json:"games_won"`
	GamesLost   int   `json:"games_lost"`
	TotalScore  int64 `json:"total_score"`
	HighScore   int   `json:"high_score"`
}

// RecordResult pairs the stored game with the new totals
type RecordResult struct {
	Game   Game   `json:"game"`
	Totals Totals `json:"totals"`
}
