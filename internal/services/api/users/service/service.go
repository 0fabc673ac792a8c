// Package service contains player registration and stats workflows
package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"hangman/internal/modkit/repokit"
	perr "hangman/internal/platform/errors"
	"hangman/internal/platform/logger"
	pstrings "hangman/internal/platform/strings"
	"hangman/internal/services/api/users/domain"
	"hangman/internal/services/api/users/repo"
)

// Service defines the service contract for users
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	newID  func() string
}

// New creates a new users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, newID: uuid.NewString}
}

// Resolve maps an identity provider uid to the player id
func (s *Svc) Resolve(ctx context.Context, externalUID string) (string, error) {
	u, err := s.Repo.ByExternalUID(ctx, externalUID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return "", perr.NotFoundf("user not found")
		}
		return "", perr.FromPostgres(err, "resolve user")
	}
	return u.ID, nil
}

// Register creates the player on first sign in, later calls return the stored profile
func (s *Svc) Register(ctx context.Context, externalUID string, in domain.RegisterInput) (domain.RegisterResult, error) {
	if strings.TrimSpace(externalUID) == "" {
		return domain.RegisterResult{}, perr.Unauthorizedf("missing bearer token")
	}
	name := pstrings.Ptr(strings.TrimSpace(in.DisplayName))

	var out domain.RegisterResult
	err := repokit.InTx(ctx, s.db, s.binder, "", func(ctx context.Context, r repo.Repo) error {
		created, err := r.Insert(ctx, s.newID(), externalUID, strings.TrimSpace(in.Email), name)
		if err != nil {
			return err
		}
		u, err := r.ByExternalUID(ctx, externalUID)
		if err != nil {
			return err
		}
		if err := r.InitStats(ctx, u.ID); err != nil {
			return err
		}
		out = domain.RegisterResult{User: toUser(u), Created: created}
		return nil
	})
	if err != nil {
		return domain.RegisterResult{}, perr.FromPostgres(err, "register user")
	}
	if out.Created {
		logger.C(ctx).Info().Str("user_id", out.User.ID).Msg("user registered")
	}
	return out, nil
}

// Stats returns the counters of the player, creating the row on first read
func (s *Svc) Stats(ctx context.Context, userID string) (domain.Stats, error) {
	var out domain.Stats
	err := repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		var err error
		out, err = readStats(ctx, r, userID)
		return err
	})
	if err != nil {
		return domain.Stats{}, perr.FromPostgres(err, "read stats")
	}
	return out, nil
}

// SetActiveWordBank selects the bank new games draw from
// banks owned by someone else read as missing
func (s *Svc) SetActiveWordBank(ctx context.Context, userID string, in domain.ActiveBankInput) (domain.Stats, error) {
	var bank *string
	if !in.Default() {
		id := *in.WordBankID
		bank = &id
	}

	var out domain.Stats
	err := repokit.InTx(ctx, s.db, s.binder, userID, func(ctx context.Context, r repo.Repo) error {
		if bank != nil {
			owns, err := r.OwnsBank(ctx, userID, *bank)
			if err != nil {
				return err
			}
			if !owns {
				return perr.NotFoundf("Word bank not found or does not belong to user")
			}
		}
		if err := r.InitStats(ctx, userID); err != nil {
			return err
		}
		if err := r.SetActiveBank(ctx, userID, bank); err != nil {
			return err
		}
		var err error
		out, err = readStats(ctx, r, userID)
		return err
	})
	if err != nil {
		return domain.Stats{}, perr.FromPostgres(err, "set active word bank")
	}
	return out, nil
}

func readStats(ctx context.Context, r repo.Repo, userID string) (domain.Stats, error) {
	row, err := r.Stats(ctx, userID)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		if err := r.InitStats(ctx, userID); err != nil {
			return domain.Stats{}, err
		}
		row, err = r.Stats(ctx, userID)
	}
	if err != nil {
		return domain.Stats{}, err
	}
	return toStats(row), nil
}

func toUser(u repo.RowUser) domain.User {
	return domain.User{
		ID:          u.ID,
		ExternalUID: u.ExternalUID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toStats(r repo.RowStats) domain.Stats {
	return domain.Stats{
		GamesPlayed:        r.GamesPlayed,
		GamesWon:           r.GamesWon,
		GamesLost:          r.GamesLost,
		TotalScore:         r.TotalScore,
		HighScore:          r.HighScore,
		WinRate:            WinRate(r.GamesWon, r.GamesPlayed),
		ActiveWordBankID:   r.ActiveWordBankID,
		ActiveWordBankName: r.ActiveWordBankName,
	}
}

// WinRate is the percentage of games won rounded to one decimal
func WinRate(won, played int) float64 {
	if played <= 0 {
		return 0
	}
	return math.Round(float64(won)*1000/float64(played)) / 10
}
