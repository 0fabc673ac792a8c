// Package service runs extraction for custom word banks and builds game word pools
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hangman/internal/core/catalog"
	"hangman/internal/core/wordbank"
	"hangman/internal/modkit/repokit"
	perr "hangman/internal/platform/errors"
	"hangman/internal/platform/logger"
	"hangman/internal/services/api/wordbanks/domain"
	"hangman/internal/services/api/wordbanks/repo"
)

// Service defines the service contract for word banks
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	words  *catalog.Catalog
	now    func() time.Time
	newID  func() string
}

// New creates a word bank service drawing default pools from words
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], words *catalog.Catalog) *Svc {
	if db == nil {
		panic("wordbanks.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("wordbanks.Service requires a non nil Repo binder")
	}
	if words == nil {
		panic("wordbanks.Service requires a catalog")
	}
	return &Svc{binder: binder, db: db, words: words, now: time.Now, newID: uuid.NewString}
}

// Preview runs extraction without storing anything, no words is a verdict not an error
func (s *Svc) Preview(in domain.PreviewInput) domain.Preview {
	a := wordbank.Analyze(in.Input)
	out := domain.Preview{Analysis: a, Count: a.Words.Len(), Valid: true}
	if err := wordbank.ValidateWords(a.Words); err != nil {
		out.Valid, out.Reason = false, err.Error()
	}
	return out
}

// Create extracts the words of in and stores the bank
func (s *Svc) Create(ctx context.Context, userID string, in domain.CreateInput) (domain.Bank, error) {
	words := wordbank.Extract(in.Input)
	if err := wordbank.ValidateContainer(in.Name, words); err != nil {
		var ve *wordbank.ValidationError
		if errors.As(err, &ve) {
			return domain.Bank{}, perr.Invalid(err, ve.Field())
		}
		return domain.Bank{}, err
	}

	b := repo.RowBank{
		ID:        s.newID(),
		Name:      wordbank.TrimName(in.Name),
		WordCount: words.Len(),
		Words:     words,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	b.UpdatedAt = b.CreatedAt
	err := repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		return r.Insert(ctx, userID, b)
	})
	if err != nil {
		return domain.Bank{}, perr.FromPostgres(err, "create word bank")
	}
	logger.C(ctx).Info().Str("word_bank_id", b.ID).Int("words", b.WordCount).Msg("word bank created")
	return toBank(b), nil
}

// List returns the banks of the player, newest first
func (s *Svc) List(ctx context.Context, userID string) ([]domain.Bank, error) {
	var rows []repo.RowBank
	err := repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		var err error
		rows, err = r.List(ctx, userID)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "list word banks")
	}
	out := make([]domain.Bank, 0, len(rows))
	for _, b := range rows {
		out = append(out, toBank(b))
	}
	return out, nil
}

// Get returns one bank of the player
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Bank, error) {
	if !isID(id) {
		return domain.Bank{}, errBankNotFound
	}
	var row repo.RowBank
	err := repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		var err error
		row, err = r.Get(ctx, userID, id)
		return err
	})
	if err != nil {
		return domain.Bank{}, notFound(err, "read word bank")
	}
	return toBank(row), nil
}

// Delete removes a bank of the player
func (s *Svc) Delete(ctx context.Context, userID, id string) error {
	if !isID(id) {
		return errBankNotFound
	}
	err := repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		return r.Delete(ctx, userID, id)
	})
	if err != nil {
		return notFound(err, "delete word bank")
	}
	logger.C(ctx).Info().Str("word_bank_id", id).Msg("word bank deleted")
	return nil
}

// Defaults returns the built-in categories
func (s *Svc) Defaults() []catalog.Category { return s.words.Categories() }

// Play returns the pool for a new game
// the active bank wins, otherwise the named category or the first one
func (s *Svc) Play(ctx context.Context, userID string, q domain.PlayQuery) (domain.Pool, error) {
	d, err := catalog.ParseDifficulty(q.Difficulty)
	if err != nil {
		return domain.Pool{}, perr.WithField(perr.InvalidArgf("%v", err), "difficulty")
	}
	pool := domain.Pool{Difficulty: d, Level: s.words.Level(d)}

	var bank *repo.RowBank
	err = repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		id, err := r.ActiveBank(ctx, userID)
		if err != nil || id == nil {
			return err
		}
		b, err := r.Get(ctx, userID, *id)
		if err != nil {
			return err
		}
		bank = &b
		return nil
	})
	if err != nil {
		return domain.Pool{}, perr.FromPostgres(err, "read active word bank")
	}

	if bank != nil {
		pool.Source, pool.WordBankID, pool.Name = domain.SourceWordBank, &bank.ID, bank.Name
		pool.Words = s.words.Pick(bank.Words, d)
		return pool, nil
	}

	cat, ok := s.category(q.Category)
	if !ok {
		return domain.Pool{}, perr.WithField(perr.NotFoundf("category %q not found", q.Category), "category")
	}
	pool.Source, pool.Category, pool.Name = domain.SourceCategory, cat.Key, cat.Name
	pool.Words = s.words.Pick(cat.Words, d)
	return pool, nil
}

func (s *Svc) category(key string) (catalog.Category, bool) {
	if key == "" {
		return s.words.Categories()[0], true
	}
	return s.words.Category(key)
}

var errBankNotFound = perr.NotFoundf("Word bank not found")

func isID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(err error, msg string) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return errBankNotFound
	}
	return perr.FromPostgres(err, msg)
}

func toBank(b repo.RowBank) domain.Bank {
	words := b.Words
	if words == nil {
		words = []string{}
	}
	return domain.Bank{
		ID:        b.ID,
		Name:      b.Name,
		WordCount: b.WordCount,
		Words:     words,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
