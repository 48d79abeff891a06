package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("port", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "MoveZy", cfg.Database.Name)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.UsersListAdmin)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Empty(t, cfg.Server.TrustedProxies)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("USERS_LIST_ADMIN_ONLY", "true")
	t.Setenv("ADMIN_EMAILS", "boss@x.com, ops@x.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://movezy.app")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Auth.TokenSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.UsersListAdmin)
	assert.True(t, cfg.Auth.IsAdminEmail("OPS@x.com"))
	assert.False(t, cfg.Auth.IsAdminEmail("rider@x.com"))
	assert.False(t, cfg.Auth.IsAdminEmail(""))
	assert.Equal(t, []string{"http://localhost:5173", "https://movezy.app"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Server.TrustedProxies)
}

func TestParse_LowercasePortFallback(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("port", "7100")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.Server.Port)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"negative ttl", "ACCESS_TOKEN_TTL", "-1h"},
		{"zero rate limit", "RATE_LIMIT_REQUESTS", "0"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestMongoURI(t *testing.T) {
	t.Run("explicit uri wins", func(t *testing.T) {
		c := DatabaseConfig{URI: "mongodb://db:27017", Host: "ignored"}
		assert.Equal(t, "mongodb://db:27017", c.MongoURI())
	})

	t.Run("assembled from parts", func(t *testing.T) {
		c := DatabaseConfig{
			Scheme:   "mongodb+srv",
			User:     "mover",
			Password: "p@ss/word",
			Host:     "cluster0.example.mongodb.net",
			AppName:  "Cluster0",
		}
		u, err := url.Parse(c.MongoURI())
		require.NoError(t, err)

		assert.Equal(t, "mongodb+srv", u.Scheme)
		assert.Equal(t, "cluster0.example.mongodb.net", u.Host)
		assert.Equal(t, "mover", u.User.Username())
		pass, _ := u.User.Password()
		assert.Equal(t, "p@ss/word", pass)
		assert.Equal(t, "true", u.Query().Get("retryWrites"))
		assert.Equal(t, "majority", u.Query().Get("w"))
		assert.Equal(t, "Cluster0", u.Query().Get("appName"))
	})

	t.Run("no credentials", func(t *testing.T) {
		c := DatabaseConfig{Scheme: "mongodb", Host: "localhost:27017"}
		u, err := url.Parse(c.MongoURI())
		require.NoError(t, err)
		assert.Nil(t, u.User)
	})
}
