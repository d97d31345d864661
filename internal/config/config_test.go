package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL",
	"DB_URI", "DATABASE_URL", "DB_DRIVER", "DB_PATH", "DB_HOST", "DB_NAME",
	"CORS_ALLOWED_ORIGINS", "OTEL_ENABLED", "OTEL_SERVICE_NAME", "OTEL_EXPORTER_OTLP_ENDPOINT",
}

// clearConfigEnv unsets every variable LoadConfig reads and restores them after the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			expected:     "default_value",
		},
		{
			name:     "should return empty string default",
			key:      "EMPTY_KEY",
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)
			assert.Equal(t, tt.expected, GetEnvWithDefault(tt.key, tt.defaultValue))
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("BOOL_KEY", "true")
	t.Setenv("INT_KEY", "42")
	t.Setenv("BAD_INT_KEY", "forty-two")

	assert.True(t, GetEnvAsType("BOOL_KEY", false))
	assert.Equal(t, 42, GetEnvAsType("INT_KEY", 0))
	assert.Equal(t, 7, GetEnvAsType("BAD_INT_KEY", 7))
	assert.Equal(t, "fallback", GetEnvAsType("UNSET_STRING_KEY", "fallback"))
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_PATH", "/tmp/pizzas.db")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com")
		t.Setenv("OTEL_ENABLED", "true")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "sqlite", config.Database.Driver)
		assert.Equal(t, "/tmp/pizzas.db", config.Database.Path)
		assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, config.AllowedOrigins)
		assert.True(t, config.TracingEnabled)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with invalid database url", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DATABASE_URL", "not a url")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DB_DRIVER", "oracle")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("postgres driver is guessed from the url", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DATABASE_URL", "postgres://pizza:secret@db:5432/pizzas?sslmode=disable")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "postgres", config.Database.Driver)
		assert.NotContains(t, config.String(), "secret")
	})

	t.Run("sqlite url sets the database path", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DB_URI", "sqlite:///var/lib/pizzas/app.db")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "sqlite", config.Database.Driver)
		assert.Equal(t, "/var/lib/pizzas/app.db", config.Database.Path)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearConfigEnv(t)

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "app.db", config.Database.Path)
		assert.Equal(t, []string{"*"}, config.AllowedOrigins)
		assert.False(t, config.TracingEnabled)
		assert.Equal(t, "gin-pizza-restaurants", config.ServiceName)
	})
}

func TestMaskDatabaseURL(t *testing.T) {
	assert.Equal(t, "", maskDatabaseURL(""))
	masked := maskDatabaseURL("postgres://pizza:secret@db:5432/pizzas")
	assert.NotContains(t, masked, "secret")
	assert.Contains(t, masked, "db:5432/pizzas")
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
