// Package domain holds DTOs and ports for players and their stats
package domain

import "time"

// RegisterInput is the profile sent on first sign in
type RegisterInput struct {
	Email       string `json:"email"        validate:"required,email,max=320" example:"player@example.com"`
	DisplayName string `json:"display_name" validate:"omitempty,notblank,max=100" example:"Ada"`
}

// User is a registered player
type User struct {
	ID          string    `json:"id"`
	ExternalUID string    `json:"external_uid"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterResult reports whether the call created the player
type RegisterResult struct {
	User    User `json:"user"`
	Created bool `json:"created"`
}

// Stats are the aggregate game counters of a player
// a nil active bank means the default catalog
type Stats struct {
	GamesPlayed        int     `json:"games_played"`
	GamesWon           int     `json:"games_won"`
	GamesLost          int     `json:"games_lost"`
	TotalScore         int64   `json:"total_score"`
	HighScore          int     `json:"high_score"`
	WinRate            float64 `json:"win_rate"`
	ActiveWordBankID   *string `json:"active_word_bank_id"`
	ActiveWordBankName *string `json:"active_word_bank_name"`
}

// ActiveBankInput selects the bank used for new games
// null, omitted or "default" selects the built-in catalog
type ActiveBankInput struct {
	WordBankID *string `json:"word_bank_id" validate:"omitempty,uuid|eq=default" example:"default"`
}

// Default reports whether the input selects the built-in catalog
func (in ActiveBankInput) Default() bool {
	return in.WordBankID == nil || *in.WordBankID == "" || *in.WordBankID == "default"
}
