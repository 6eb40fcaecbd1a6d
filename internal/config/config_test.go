package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The checked-in dev config must pass its own validation or both binaries
// die at startup with the default -config path.
func TestLoad_DevConfig(t *testing.T) {
	cfg, err := Load("../../config/config.dev.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.GreaterOrEqual(t, len(cfg.JWT.Secret), 32)
	assert.NotEmpty(t, cfg.Scheduler.AutoActivateBookings)
	assert.NotEmpty(t, cfg.Scheduler.FlagOverdueBookings)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Host: "localhost", Port: 8080},
			Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "rydio", Database: "rydio"},
			JWT:      JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
		}
	}

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
		assert.Equal(t, "0 */15 * * * *", cfg.Scheduler.AutoActivateBookings)
		assert.Equal(t, "0 0 * * * *", cfg.Scheduler.FlagOverdueBookings)
	})

	t.Run("Short Secret", func(t *testing.T) {
		cfg := valid()
		cfg.JWT.Secret = "too-short"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("Bad Port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing Database", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Database = ""
		assert.Error(t, cfg.Validate())
	})
}
