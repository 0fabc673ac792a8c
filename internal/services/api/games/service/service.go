// Package service records finished games and reads history
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hangman/internal/core/catalog"
	"hangman/internal/modkit/repokit"
	perr "hangman/internal/platform/errors"
	"hangman/internal/platform/logger"
	"hangman/internal/services/api/games/domain"
	"hangman/internal/services/api/games/repo"
)

// EventsTable is the analytics table finished games are mirrored to
const EventsTable = "game_events"

// sinkTimeout bounds the analytics write after the game is stored
const sinkTimeout = 2 * time.Second

// Service defines the service contract for games
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	sink   domain.EventSink
	log    *logger.Logger
	now    func() time.Time
	newID  func() string
}

// New creates a games service, a nil sink disables the analytics mirror
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], sink domain.EventSink, log *logger.Logger) *Svc {
	if db == nil {
		panic("games.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("games.Service requires a non nil Repo binder")
	}
	if log == nil {
		log = logger.Get()
	}
	return &Svc{binder: binder, db: db, sink: sink, log: log, now: time.Now, newID: uuid.NewString}
}

// Record stores a finished game and folds it into the player's totals
func (s *Svc) Record(ctx context.Context, userID string, in domain.RecordInput) (domain.RecordResult, error) {
	diff, err := catalog.ParseDifficulty(in.Difficulty)
	if err != nil {
		return domain.RecordResult{}, perr.WithField(perr.Validationf("%v", err), "difficulty")
	}
	g := repo.RowGame{
		ID:           s.newID(),
		Word:         strings.ToUpper(strings.TrimSpace(in.Word)),
		Difficulty:   string(diff),
		Score:        in.Score,
		Won:          *in.Won,
		TimeTaken:    in.TimeTaken,
		WrongGuesses: in.WrongGuesses,
		PlayedAt:     s.now().UTC().Truncate(time.Millisecond),
	}

	var totals repo.RowTotals
	err = repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		var err error
		if totals, err = r.Bump(ctx, userID, g.Won, g.Score); err != nil {
			return err
		}
		return r.Insert(ctx, userID, g)
	})
	if err != nil {
		return domain.RecordResult{}, perr.FromPostgres(err, "record game")
	}

	s.mirror(ctx, userID, g)
	return domain.RecordResult{Game: toGame(g), Totals: domain.Totals(totals)}, nil
}

// mirror copies the game to the analytics sink, failures are only logged
func (s *Svc) mirror(ctx context.Context, userID string, g repo.RowGame) {
	if s.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
	defer cancel()

	row := []any{
		g.ID, userID, g.Won, int32(g.Score), g.Word, g.Difficulty,
		int32(g.TimeTaken), int32(g.WrongGuesses), g.PlayedAt,
	}
	if err := s.sink.Insert(ctx, EventsTable, [][]any{row}); err != nil {
		logger.From(ctx, s.log).Warn().Err(err).Str("game_id", g.ID).Msg("mirror game event")
	}
}

// History returns up to limit games, newest first
func (s *Svc) History(ctx context.Context, userID string, limit int) ([]domain.Game, error) {
	var rows []repo.RowGame
	err := repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		var err error
		rows, err = r.Recent(ctx, userID, limit)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgres(err, "read game history")
	}
	out := make([]domain.Game, 0, len(rows))
	for _, g := range rows {
		out = append(out, toGame(g))
	}
	return out, nil
}

func toGame(g repo.RowGame) domain.Game {
	return domain.Game{
		ID:           g.ID,
		Word:         g.Word,
		Difficulty:   g.Difficulty,
		Score:        g.Score,
		Won:          g.Won,
		TimeTaken:    g.TimeTaken,
		WrongGuesses: g.WrongGuesses,
		PlayedAt:     g.PlayedAt,
	}
}
