package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hangman/internal/platform/config"

	"github.com/rs/zerolog"
)

type fakePG struct {
	fakeQuerier
	pingErr error
	closed  bool
}

func (f *fakePG) Tx(_ context.Context, fn func(RowQuerier) error) error { return fn(&f.fakeQuerier) }
func (f *fakePG) Ping(context.Context) error                            { return f.pingErr }
func (f *fakePG) Close() error                                          { f.closed = true; return nil }

type fakeCH struct {
	pingErr error
	closed  bool
}

func (f *fakeCH) Insert(context.Context, string, [][]any) error          { return nil }
func (f *fakeCH) Exec(context.Context, string, ...any) error             { return nil }
func (f *fakeCH) Query(context.Context, string, ...any) (Rows, error)    { return &fakeRows{}, nil }
func (f *fakeCH) Ping(context.Context) error                             { return f.pingErr }
func (f *fakeCH) Close() error                                           { f.closed = true; return nil }

func TestOpen_NothingEnabled(t *testing.T) {
	t.Parallel()

	var zl zerolog.Logger
	s, err := Open(context.Background(), Config{AppName: "hangman-test"}, WithLogger(zl))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("unexpected backends %+v", s)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_OptionError(t *testing.T) {
	t.Parallel()

	bad := func(*Store) error { return errors.New("nope") }
	if _, err := Open(context.Background(), Config{}, bad); err == nil {
		t.Fatal("expected option error")
	}
}

func TestOpen_BadPGURL(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	if err == nil || s != nil {
		t.Fatalf("want error and nil store, got %v, %v", s, err)
	}
}

func TestGuard_JoinsFailures(t *testing.T) {
	t.Parallel()

	s := &Store{PG: &fakePG{pingErr: errors.New("pg down")}, CH: &fakeCH{pingErr: errors.New("ch down")}}
	err := s.Guard(context.Background())
	if err == nil || !strings.Contains(err.Error(), "pg: pg down") || !strings.Contains(err.Error(), "ch: ch down") {
		t.Fatalf("Guard = %v", err)
	}

	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatal("nil store should fail Guard")
	}
}

func TestClose_ClosesBackends(t *testing.T) {
	t.Parallel()

	pg, ch := &fakePG{}, &fakeCH{}
	s := &Store{PG: pg, CH: ch}
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !pg.closed || !ch.closed {
		t.Fatalf("closed pg=%v ch=%v", pg.closed, ch.closed)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HANGMAN_SERVICE_PGSQL_DBURL", "postgres://u:p@db:5432/hangman")
	t.Setenv("HANGMAN_SERVICE_PGSQL_MAX_CONNS", "16")
	t.Setenv("HANGMAN_SERVICE_PGSQL_PING_TIMEOUT", "5s")
	t.Setenv("HANGMAN_SERVICE_CLICKHOUSE_ENABLED", "true")

	cfg := FromEnv(config.New().Prefix("HANGMAN_"), "hangman-api", "api", "dev")
	if !cfg.PG.Enabled || cfg.PG.MaxConns != 16 || cfg.PG.PingTimeout != 5*time.Second || cfg.PG.SlowQueryMs != 200 {
		t.Fatalf("pg config = %+v", cfg.PG)
	}
	if !cfg.CH.Enabled || cfg.CH.URL != "clickhouse://localhost:9000/hangman" || cfg.CH.Role != "api" {
		t.Fatalf("ch config = %+v", cfg.CH)
	}
	if cfg.AppName != "hangman-api" {
		t.Fatalf("app = %q", cfg.AppName)
	}
}
