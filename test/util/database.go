// Package util holds shared test infrastructure: a per-package Postgres
// testcontainer with schema-per-test isolation.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/database"
)

var (
	baseOnce    sync.Once
	baseConnStr string
	baseErr     error
)

// SetupTestDatabase gives the test its own schema inside the shared
// database (CI_DATABASE_URL if set, otherwise a package-scoped
// testcontainer), with the ent tables and the production triggers applied.
// The schema is dropped on cleanup.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()
	connStr := baseConnString(t)
	schema := schemaNameFor(t)

	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	require.NoError(t, admin.Close())

	// search_path goes into the connection string so every pooled
	// connection lands in the test schema.
	db, err := stdsql.Open("pgx", withSearchPath(connStr, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, client.Schema.Create(ctx))

	// ent creates bare tables; the version and child_ids triggers come from
	// the embedded migrations so tests observe production behavior.
	require.NoError(t, database.ApplyTriggers(ctx, db))

	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(), "DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
			t.Logf("drop schema %s: %v", schema, err)
		}
		_ = client.Close()
		_ = db.Close()
	})

	return client, db
}

// BaseConnString exposes the raw connection string for tests that need a
// dedicated connection outside the pool, such as the NOTIFY listener.
func BaseConnString(t *testing.T) string {
	return baseConnString(t)
}

func baseConnString(t *testing.T) string {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	baseOnce.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			baseErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		baseConnStr, baseErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, baseErr, "shared test database unavailable")
	return baseConnStr
}

// schemaNameFor derives a Postgres-safe schema name from the test name
// plus a random suffix, within the 63-char identifier limit.
func schemaNameFor(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

func withSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}
