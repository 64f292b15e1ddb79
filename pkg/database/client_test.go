package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parleyhq/parley/ent/discussion"
	entmessage "github.com/parleyhq/parley/ent/message"
	"github.com/parleyhq/parley/test/util"
)

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	client := NewClientFromEnt(entClient, db)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}

func TestCascadeDelete(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	client := NewClientFromEnt(entClient, db)
	ctx := context.Background()

	disc, err := client.Discussion.Create().
		SetID("disc-cascade").
		SetTopic("Should message rows follow their discussion to the grave?").
		SetUserTag("tester").
		SetStatus(discussion.StatusActive).
		SetMaxTurns(20).
		SetRoles([]map[string]interface{}{{"name": "Archivist"}}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Message.Create().
		SetID("msg-1").
		SetDiscussionID(disc.ID).
		SetSequence(1).
		SetAuthorKind(entmessage.AuthorKindSystem).
		SetAuthorName("System").
		SetBackingModelID("system").
		SetBody("Discussion started").
		SetTurn(0).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Discussion.DeleteOneID(disc.ID).Exec(ctx))

	count, err := client.Message.Query().
		Where(entmessage.DiscussionID(disc.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "messages must cascade with their discussion")
}

func TestConfig_DSN(t *testing.T) {
	t.Run("url wins", func(t *testing.T) {
		cfg := Config{URL: "postgres://u:p@host:5432/db", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@host:5432/db", cfg.DSN())
	})

	t.Run("discrete fields assemble", func(t *testing.T) {
		cfg := Config{Host: "localhost", Port: 5433, User: "parley", Password: "pw", Database: "parley", SSLMode: "disable"}
		assert.Equal(t, "host=localhost port=5433 user=parley password=pw dbname=parley sslmode=disable", cfg.DSN())
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid discrete config",
			cfg:     Config{Host: "localhost", Port: 5432, User: "t", Password: "t", Database: "t", MaxOpenConns: 10, MaxIdleConns: 5},
			wantErr: false,
		},
		{
			name:    "url alone is enough",
			cfg:     Config{URL: "postgres://u:p@host/db", MaxOpenConns: 10, MaxIdleConns: 5},
			wantErr: false,
		},
		{
			name:    "missing password without url",
			cfg:     Config{Host: "localhost", Port: 5432, User: "t", Database: "t", MaxOpenConns: 10, MaxIdleConns: 5},
			wantErr: true,
		},
		{
			name:    "idle conns exceed max conns",
			cfg:     Config{Password: "t", MaxOpenConns: 5, MaxIdleConns: 10},
			wantErr: true,
		},
		{
			name:    "zero max open conns",
			cfg:     Config{Password: "t", MaxOpenConns: 0},
			wantErr: true,
		},
		{
			name:    "negative idle conns",
			cfg:     Config{Password: "t", MaxOpenConns: 10, MaxIdleConns: -1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults with password", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PASSWORD", "test")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "parley", cfg.User)
		assert.Equal(t, "parley", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("database url takes precedence", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DATABASE_URL", "postgres://u:p@db.example.com:5432/parley")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db.example.com:5432/parley", cfg.DSN())
	})

	t.Run("custom discrete values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")
		os.Setenv("DB_MAX_IDLE_CONNS", "20")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, 50, cfg.MaxOpenConns)
		assert.Equal(t, 20, cfg.MaxIdleConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "invalid")
		os.Setenv("DB_PASSWORD", "test")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})

	t.Run("invalid max open conns", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_MAX_OPEN_CONNS", "not_a_number")
		os.Setenv("DB_PASSWORD", "test")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_MAX_OPEN_CONNS")
	})

	t.Run("missing password and url", func(t *testing.T) {
		clearEnv(t)

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password is required")
	})
}
