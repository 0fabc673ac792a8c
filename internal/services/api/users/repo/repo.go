// Package repo provides postgres access for players and stats
package repo

import (
	"context"
	"time"

	"hangman/internal/modkit/repokit"
	"hangman/internal/platform/store"
)

// Repo defines the repository contract for players
type Repo interface {
	Insert(ctx context.Context, id, externalUID, email string, displayName *string) (bool, error)
	ByExternalUID(ctx context.Context, externalUID string) (RowUser, error)
	InitStats(ctx context.Context, userID string) error
	Stats(ctx context.Context, userID string) (RowStats, error)
	OwnsBank(ctx context.Context, userID, bankID string) (bool, error)
	SetActiveBank(ctx context.Context, userID string, bankID *string) error
}

// RowUser is a users row
type RowUser struct {
	ID          string
	ExternalUID string
	Email       string
	DisplayName *string
	CreatedAt   time.Time
}

// RowStats is a game_stats row joined to the active bank name
type RowStats struct {
	GamesPlayed        int
	GamesWon           int
	GamesLost          int
	TotalScore         int64
	HighScore          int
	ActiveWordBankID   *string
	ActiveWordBankName *string
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

// Insert adds the player unless the uid is known, reporting whether a row was written
func (r *queries) Insert(ctx context.Context, id, externalUID, email string, displayName *string) (bool, error) {
	tag, err := r.q.Exec(ctx, `
insert into users (id, external_uid, email, display_name)
values ($1, $2, $3, $4)
on conflict (external_uid) do nothing`, id, externalUID, email, displayName)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) ByExternalUID(ctx context.Context, externalUID string) (RowUser, error) {
	return store.One(ctx, r.q, func(row store.Row) (RowUser, error) {
		var u RowUser
		err := row.Scan(&u.ID, &u.ExternalUID, &u.Email, &u.DisplayName, &u.CreatedAt)
		return u, err
	}, `select id::text, external_uid, email, display_name, created_at from users where external_uid = $1`, externalUID)
}

func (r *queries) InitStats(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx, `insert into game_stats (user_id) values ($1) on conflict (user_id) do nothing`, userID)
	return err
}

func (r *queries) Stats(ctx context.Context, userID string) (RowStats, error) {
	const sql = `
select s.games_played, s.games_won, s.games_lost, s.total_score, s.high_score,
       s.active_word_bank_id::text, b.name
from game_stats s
left join word_banks b on b.id = s.active_word_bank_id
where s.user_id = $1`
	return store.One(ctx, r.q, func(row store.Row) (RowStats, error) {
		var s RowStats
		err := row.Scan(&s.GamesPlayed, &s.GamesWon, &s.GamesLost, &s.TotalScore, &s.HighScore,
			&s.ActiveWordBankID, &s.ActiveWordBankName)
		return s, err
	}, sql, userID)
}

func (r *queries) OwnsBank(ctx context.Context, userID, bankID string) (bool, error) {
	return store.Scalar[bool](ctx, r.q,
		`select exists (select 1 from word_banks where id = $1 and user_id = $2)`, bankID, userID)
}

func (r *queries) SetActiveBank(ctx context.Context, userID string, bankID *string) error {
	return store.ExecOne(ctx, r.q,
		`update game_stats set active_word_bank_id = $2, updated_at = now() where user_id = $1`, userID, bankID)
}
