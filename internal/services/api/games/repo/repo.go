// Package repo provides postgres access for game history and aggregates
package repo

import (
	"context"
	"time"

	"hangman/internal/modkit/repokit"
	"hangman/internal/platform/store"
)

// Repo defines the repository contract for games
type Repo interface {
	Bump(ctx context.Context, userID string, won bool, score int) (RowTotals, error)
	Insert(ctx context.Context, userID string, g RowGame) error
	Recent(ctx context.Context, userID string, limit int) ([]RowGame, error)
}

// RowGame is a game_history row
type RowGame struct {
	ID           string
	Word         string
	Difficulty   string
	Score        int
	Won          bool
	TimeTaken    int
	WrongGuesses int
	PlayedAt     time.Time
}

// RowTotals are the game_stats counters
type RowTotals struct {
	GamesPlayed int
	GamesWon    int
	GamesLost   int
	TotalScore  int64
	HighScore   int
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Bump folds one game into the counters, creating the row on first play
func (r *queries) Bump(ctx context.Context, userID string, won bool, score int) (RowTotals, error) {
	w, l := 0, 1
	if won {
		w, l = 1, 0
	}
	const sql = `
insert into game_stats (user_id, games_played, games_won, games_lost, total_score, high_score)
values ($1, 1, $2, $3, $4, $5)
on conflict (user_id) do update set
  games_played = game_stats.games_played + 1,
  games_won    = game_stats.games_won + excluded.games_won,
  games_lost   = game_stats.games_lost + excluded.games_lost,
  total_score  = game_stats.total_score + excluded.total_score,
  high_score   = greatest(game_stats.high_score, excluded.high_score),
  updated_at   = now()
returning games_played, games_won, games_lost, total_score, high_score`
	return store.One(ctx, r.q, func(row store.Row) (RowTotals, error) {
		var t RowTotals
		err := row.Scan(&t.GamesPlayed, &t.GamesWon, &t.GamesLost, &t.TotalScore, &t.HighScore)
		return t, err
	}, sql, userID, w, l, int64(score), score)
}

func (r *queries) Insert(ctx context.Context, userID string, g RowGame) error {
	return store.ExecOne(ctx, r.q, `
insert into game_history (id, user_id, word, difficulty, score, won, time_taken, wrong_guesses, played_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		g.ID, userID, g.Word, g.Difficulty, g.Score, g.Won, g.TimeTaken, g.WrongGuesses, g.PlayedAt)
}

// Recent lists the newest games first
func (r *queries) Recent(ctx context.Context, userID string, limit int) ([]RowGame, error) {
	const sql = `
select id::text, coalesce(word, ''), coalesce(difficulty, ''), score, won,
       coalesce(time_taken, 0), coalesce(wrong_guesses, 0), played_at
from game_history
where user_id = $1
order by played_at desc, id
limit $2`
	return store.Many(ctx, r.q, func(row store.Row) (RowGame, error) {
		var g RowGame
		err := row.Scan(&g.ID, &g.Word, &g.Difficulty, &g.Score, &g.Won, &g.TimeTaken, &g.WrongGuesses, &g.PlayedAt)
		return g, err
	}, sql, userID, limit)
}
