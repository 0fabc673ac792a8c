//go:build integration_pg

// Package pgtest starts a throwaway Postgres with the hangman schema for integration tests
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hangman/internal/platform/logger"
	"hangman/internal/platform/store"
	"hangman/internal/platform/store/schema"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Start runs postgres:16-alpine, applies the schema and returns an open Store
// the container and store are released on test cleanup
func Start(t *testing.T) *store.Store {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "hangman",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/hangman?sslmode=disable", host, port.Port())

	st, err := store.Open(ctx, store.Config{
		AppName: "hangman-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4, ConnectRetries: 30},
	}, store.WithLogger(*logger.Get()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if err := schema.ApplyPG(ctx, st.PG); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return st
}
