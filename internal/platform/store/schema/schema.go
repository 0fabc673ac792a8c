// Package schema holds the embedded DDL for both stores
package schema

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"strings"

	"hangman/internal/platform/store"
)

var (
	//go:embed postgres.sql
	Postgres string

	//go:embed clickhouse.sql
	ClickHouse string
)

// Statements splits src on lines ending in ';', dropping "--" comment lines
func Statements(src string) []string {
	var (
		out []string
		cur strings.Builder
	)
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
		if strings.HasSuffix(line, ";") {
			out = append(out, strings.TrimSuffix(cur.String(), ";"))
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// ApplyPG runs the postgres DDL in one transaction
func ApplyPG(ctx context.Context, tx store.TxRunner) error {
	return tx.Tx(ctx, func(q store.RowQuerier) error {
		for i, stmt := range Statements(Postgres) {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("postgres statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}

// ApplyCH runs the clickhouse DDL in order, clickhouse has no transactional DDL
func ApplyCH(ctx context.Context, ch store.Clickhouse) error {
	for i, stmt := range Statements(ClickHouse) {
		if err := ch.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("clickhouse statement %d: %w", i+1, err)
		}
	}
	return nil
}
