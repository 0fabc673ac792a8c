package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"hangman/internal/modkit/repokit"
	perr "hangman/internal/platform/errors"
	"hangman/internal/platform/testkit"
	"hangman/internal/platform/testkit/dbtest"
	"hangman/internal/services/api/games/domain"
	"hangman/internal/services/api/games/repo"
)

type memRepo struct {
	totals  repo.RowTotals
	games   []repo.RowGame
	failIns error
}

func (m *memRepo) Bump(_ context.Context, _ string, won bool, score int) (repo.RowTotals, error) {
	m.totals.GamesPlayed++
	if won {
		m.totals.GamesWon++
	} else {
		m.totals.GamesLost++
	}
	m.totals.TotalScore += int64(score)
	m.totals.HighScore = max(m.totals.HighScore, score)
	return m.totals, nil
}

func (m *memRepo) Insert(_ context.Context, _ string, g repo.RowGame) error {
	if m.failIns != nil {
		return m.failIns
	}
	m.games = append(m.games, g)
	return nil
}

func (m *memRepo) Recent(_ context.Context, _ string, limit int) ([]repo.RowGame, error) {
	out := []repo.RowGame{}
	for i := len(m.games) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.games[i])
	}
	return out, nil
}

type sink struct {
	table string
	rows  [][]any
	err   error
}

func (s *sink) Insert(_ context.Context, table string, rows [][]any) error {
	s.table = table
	s.rows = append(s.rows, rows...)
	return s.err
}

var played = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSvc(m *memRepo, sk domain.EventSink) (*Svc, *dbtest.Tx) {
	tx := &dbtest.Tx{}
	s := New(tx, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m }), sk, nil)
	s.now = func() time.Time { return played }
	n := 0
	s.newID = func() string {
		n++
		return []string{"g1", "g2", "g3"}[n-1]
	}
	return s, tx
}

func won(b bool) *bool { return &b }

func TestRecord_FoldsTotalsAndMirrors(t *testing.T) {
	t.Parallel()

	m := &memRepo{}
	sk := &sink{}
	s, _ := newSvc(m, sk)
	ctx := context.Background()

	_, err := s.Record(ctx, "u1", domain.RecordInput{Won: won(true), Score: 300, Word: " elephant ", Difficulty: "hard", TimeTaken: 21, WrongGuesses: 1})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := s.Record(ctx, "u1", domain.RecordInput{Won: won(false), Score: 0, Word: "LION"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	want := domain.RecordResult{
		Game:   domain.Game{ID: "g2", Word: "LION", Difficulty: "medium", Won: false, PlayedAt: played},
		Totals: domain.Totals{GamesPlayed: 2, GamesWon: 1, GamesLost: 1, TotalScore: 300, HighScore: 300},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("second record (-want +got):\n%s", diff)
	}

	if sk.table != EventsTable || len(sk.rows) != 2 {
		t.Fatalf("sink got %q with %d rows", sk.table, len(sk.rows))
	}
	wantRow := []any{"g1", "u1", true, int32(300), "ELEPHANT", "hard", int32(21), int32(1), played}
	if diff := cmp.Diff(wantRow, sk.rows[0]); diff != "" {
		t.Fatalf("event row (-want +got):\n%s", diff)
	}
}

func TestRecord_SinkFailureIsLogged(t *testing.T) {
	t.Parallel()

	log, buf := testkit.Logger(t)
	m := &memRepo{}
	s, _ := newSvc(m, &sink{err: errors.New("clickhouse down")})
	s.log = log
	if _, err := s.Record(context.Background(), "u1", domain.RecordInput{Won: won(true), Score: 10}); err != nil {
		t.Fatalf("sink failure leaked into Record: %v", err)
	}
	if len(m.games) != 1 {
		t.Fatalf("games stored = %d", len(m.games))
	}
	testkit.MustContain(t, buf.String(), "clickhouse down")
	testkit.MustContain(t, buf.String(), `"level":"warn"`)
}

func TestRecord_Errors(t *testing.T) {
	t.Parallel()

	m := &memRepo{failIns: &pgconn.PgError{Code: "23503"}}
	s, _ := newSvc(m, nil)
	_, err := s.Record(context.Background(), "u1", domain.RecordInput{Won: won(true)})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("fk violation: got %v", err)
	}

	s, tx := newSvc(&memRepo{}, nil)
	_, err = s.Record(context.Background(), "u1", domain.RecordInput{Won: won(true), Difficulty: "nightmare"})
	if !perr.IsCode(err, perr.ErrorCodeValidation) || tx.Calls() != 0 {
		t.Fatalf("bad difficulty: got %v after %d tx", err, tx.Calls())
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	t.Parallel()

	m := &memRepo{}
	s, _ := newSvc(m, nil)
	ctx := context.Background()
	for _, w := range []string{"OWL", "LION", "TIGER"} {
		if _, err := s.Record(ctx, "u1", domain.RecordInput{Won: won(true), Word: w}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.History(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	var words []string
	for _, g := range got {
		words = append(words, g.Word)
	}
	if diff := cmp.Diff([]string{"TIGER", "LION"}, words); diff != "" {
		t.Fatalf("history (-want +got):\n%s", diff)
	}
}
