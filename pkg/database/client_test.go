package database_test

import (
	"context"
	"os"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/database"
	"github.com/maestro-hq/maestro/test/util"
)

func TestConfigDSN(t *testing.T) {
	cfg := database.Config{
		Host:     "db.example.com",
		Port:     5433,
		User:     "maestro",
		Password: "secret",
		Database: "orchestrator",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 user=maestro password=secret dbname=orchestrator sslmode=require",
		cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	clear()
	t.Cleanup(clear)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "maestro", cfg.User)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_SSLMODE", "require")
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestHealth(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	health, err := database.Health(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.Pool.MaxOpen, 0)
	assert.GreaterOrEqual(t, health.PingMillis, int64(0))
	assert.LessOrEqual(t, health.Saturation, 1.0)
}

func TestFullTextSearchIndex(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	tenant, err := client.Tenant.Create().
		SetID(uuid.NewString()).
		SetName("Search Tenant").
		SetSlug("search-tenant").
		Save(ctx)
	require.NoError(t, err)

	mk := func(title, prompt string) string {
		sess, err := client.Session.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenant.ID).
			SetTitle(title).
			SetInitialPrompt(prompt).
			Save(ctx)
		require.NoError(t, err)
		return sess.ID
	}
	match := mk("Stabilize the billing exporter", "Investigate intermittent export failures in production")
	mk("Document the deploy runbook", "Write deployment steps for the staging cluster")

	rows, err := db.QueryContext(ctx,
		`SELECT id FROM sessions
		WHERE to_tsvector('english', title || ' ' || COALESCE(description, '') || ' ' || initial_prompt)
		@@ to_tsquery('english', $1)`,
		"export & production")
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{match}, ids)
}
