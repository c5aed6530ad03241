package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"STOREFRONT_APP_NAME":                   os.Getenv("STOREFRONT_APP_NAME"),
		"STOREFRONT_APP_ENV":                    os.Getenv("STOREFRONT_APP_ENV"),
		"STOREFRONT_APP_PORT":                   os.Getenv("STOREFRONT_APP_PORT"),
		"STOREFRONT_DATABASE_HOST":              os.Getenv("STOREFRONT_DATABASE_HOST"),
		"STOREFRONT_DATABASE_PASSWORD":          os.Getenv("STOREFRONT_DATABASE_PASSWORD"),
		"STOREFRONT_DATABASE_SSLMODE":           os.Getenv("STOREFRONT_DATABASE_SSLMODE"),
		"STOREFRONT_REDIS_HOST":                 os.Getenv("STOREFRONT_REDIS_HOST"),
		"STOREFRONT_PLATFORM_ROOT_DOMAIN":       os.Getenv("STOREFRONT_PLATFORM_ROOT_DOMAIN"),
		"STOREFRONT_PLATFORM_STORE_PATH_PREFIX": os.Getenv("STOREFRONT_PLATFORM_STORE_PATH_PREFIX"),
		"STOREFRONT_COOKIE_SECURE":              os.Getenv("STOREFRONT_COOKIE_SECURE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "storefront-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "storefront", cfg.Database.DBName)
		assert.Equal(t, "localhost", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, "shopzone.app", cfg.Platform.RootDomain)
		assert.Equal(t, "/store", cfg.Platform.StorePathPrefix)
		assert.Equal(t, "sf_session", cfg.Cookie.Name)
		assert.Equal(t, "cart:", cfg.Cart.KeyPrefix)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_NAME", "storefront-test")
		os.Setenv("STOREFRONT_DATABASE_HOST", "db.internal")
		os.Setenv("STOREFRONT_PLATFORM_ROOT_DOMAIN", "myshops.dev")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "storefront-test", cfg.App.Name)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "myshops.dev", cfg.Platform.RootDomain)
	})

	t.Run("production requires hardened settings", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password is required")
	})

	t.Run("production with full settings passes", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_DATABASE_PASSWORD", "s3cret")
		os.Setenv("STOREFRONT_DATABASE_SSLMODE", "require")
		os.Setenv("STOREFRONT_COOKIE_SECURE", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 50
		cfg.Database.MaxOpenConns = 10
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects path prefix without leading slash", func(t *testing.T) {
		cfg := base()
		cfg.Platform.StorePathPrefix = "store"
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects root domain with scheme or port", func(t *testing.T) {
		cfg := base()
		cfg.Platform.RootDomain = "shopzone.app:443"
		assert.Error(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "storefront",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters must be URL-escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
