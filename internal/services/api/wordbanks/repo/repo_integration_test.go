//go:build integration_pg

package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"hangman/internal/modkit/repokit"
	perr "hangman/internal/platform/errors"
	"hangman/internal/platform/testkit/pgtest"
	users "hangman/internal/services/api/users/repo"
	"hangman/internal/services/api/wordbanks/repo"
)

func TestWordBanks_Postgres_Integration(t *testing.T) {
	st := pgtest.Start(t)
	ctx := context.Background()
	uid := uuid.NewString()

	err := repokit.InTx(ctx, st.PG, users.NewPG(), uid, func(ctx context.Context, r users.Repo) error {
		if _, err := r.Insert(ctx, uid, "ext-ocean", "sea@example.com", nil); err != nil {
			return err
		}
		return r.InitStats(ctx, uid)
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	older := repo.RowBank{ID: uuid.NewString(), Name: "Fish", Words: []string{"SALMON", "TUNA"}, CreatedAt: now.Add(-time.Hour)}
	newer := repo.RowBank{ID: uuid.NewString(), Name: "Ocean", Words: []string{"OCEAN", "CORAL", "KELP", "WHALE"}, CreatedAt: now}

	err = repokit.InTx(ctx, st.PG, repo.NewPG(), uid, func(ctx context.Context, r repo.Repo) error {
		if err := r.Insert(ctx, uid, older); err != nil {
			return err
		}
		return r.Insert(ctx, uid, newer)
	})
	if err != nil {
		t.Fatalf("insert banks: %v", err)
	}

	r := repo.NewPG().Bind(st.PG)

	got, err := r.Get(ctx, uid, newer.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(newer.Words, got.Words); diff != "" {
		t.Fatalf("words out of order (-want +got):\n%s", diff)
	}
	if got.WordCount != 4 || got.Name != "Ocean" {
		t.Fatalf("bank = %+v", got)
	}

	list, err := r.List(ctx, uid)
	if err != nil || len(list) != 2 || list[0].ID != newer.ID {
		t.Fatalf("List = %+v, %v", list, err)
	}
	if other, err := r.List(ctx, uuid.NewString()); err != nil || len(other) != 0 {
		t.Fatalf("List for stranger = %+v, %v", other, err)
	}

	if _, err := r.Get(ctx, uuid.NewString(), newer.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Get by stranger err = %v", err)
	}

	active, err := r.ActiveBank(ctx, uid)
	if err != nil || active != nil {
		t.Fatalf("ActiveBank before select = %v, %v", active, err)
	}
	if err := users.NewPG().Bind(st.PG).SetActiveBank(ctx, uid, &newer.ID); err != nil {
		t.Fatalf("SetActiveBank: %v", err)
	}
	if active, err = r.ActiveBank(ctx, uid); err != nil || active == nil || *active != newer.ID {
		t.Fatalf("ActiveBank = %v, %v", active, err)
	}

	// deleting the active bank clears the selection
	if err := r.Delete(ctx, uid, newer.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if active, err = r.ActiveBank(ctx, uid); err != nil || active != nil {
		t.Fatalf("ActiveBank after delete = %v, %v", active, err)
	}
	if err := r.Delete(ctx, uid, newer.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second Delete err = %v", err)
	}
	if _, err := r.Get(ctx, uid, newer.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Get after delete err = %v", err)
	}
}
