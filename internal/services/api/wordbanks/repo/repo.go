// Package repo provides postgres access for word banks
package repo

import (
	"context"
	"time"

	"hangman/internal/modkit/repokit"
	perr "hangman/internal/platform/errors"
	"hangman/internal/platform/store"
)

// Repo defines the repository contract for word banks
type Repo interface {
	Insert(ctx context.Context, userID string, b RowBank) error
	List(ctx context.Context, userID string) ([]RowBank, error)
	Get(ctx context.Context, userID, id string) (RowBank, error)
	Delete(ctx context.Context, userID, id string) error
	ActiveBank(ctx context.Context, userID string) (*string, error)
}

// RowBank is a word_banks row with its words aggregated in position order
type RowBank struct {
	ID        string
	Name      string
	WordCount int
	Words     []string
	CreatedAt time.Time
	UpdatedAt time.Time
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

const selectBank = `
select b.id::text, b.name, b.word_count, b.created_at, b.updated_at,
       coalesce(array_agg(w.word order by w.position) filter (where w.word is not null), '{}')
from word_banks b
left join word_bank_words w on w.word_bank_id = b.id
`

func scanBank(row store.Row) (RowBank, error) {
	var b RowBank
	err := row.Scan(&b.ID, &b.Name, &b.WordCount, &b.CreatedAt, &b.UpdatedAt, &b.Words)
	return b, err
}

// Insert writes the bank and its words, positions start at 1
func (r *queries) Insert(ctx context.Context, userID string, b RowBank) error {
	err := store.ExecOne(ctx, r.q, `
insert into word_banks (id, user_id, name, word_count, created_at, updated_at)
values ($1, $2, $3, $4, $5, $5)`, b.ID, userID, b.Name, len(b.Words), b.CreatedAt)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
insert into word_bank_words (word_bank_id, position, word)
select $1, t.pos, t.word
from unnest($2::text[]) with ordinality as t(word, pos)`, b.ID, b.Words)
	return err
}

// List returns the banks of userID, newest first
func (r *queries) List(ctx context.Context, userID string) ([]RowBank, error) {
	return store.Many(ctx, r.q, scanBank, selectBank+`
where b.user_id = $1
group by b.id
order by b.created_at desc, b.id`, userID)
}

// Get returns one bank owned by userID
func (r *queries) Get(ctx context.Context, userID, id string) (RowBank, error) {
	return store.One(ctx, r.q, scanBank, selectBank+`
where b.user_id = $1 and b.id = $2
group by b.id`, userID, id)
}

// Delete removes a bank owned by userID, words and active selections follow by FK
func (r *queries) Delete(ctx context.Context, userID, id string) error {
	return store.ExecOne(ctx, r.q, `delete from word_banks where id = $1 and user_id = $2`, id, userID)
}

// ActiveBank returns the selected bank, nil means the built-in catalog
func (r *queries) ActiveBank(ctx context.Context, userID string) (*string, error) {
	id, err := store.One(ctx, r.q, func(row store.Row) (*string, error) {
		var id *string
		err := row.Scan(&id)
		return id, err
	}, `select active_word_bank_id::text from game_stats where user_id = $1`, userID)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return nil, nil
	}
	return id, err
}
