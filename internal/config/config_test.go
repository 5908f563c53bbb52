package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNPrefersDatabaseURLAndRequiresSSL(t *testing.T) {
	cfg := Config{DBDriver: "postgres", DatabaseURL: "postgresql://u:p@db.example.com/app"}

	parsed, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "require", parsed.Query().Get("sslmode"))
}

func TestDSNKeepsExplicitSSLMode(t *testing.T) {
	cfg := Config{DBDriver: "postgres", DatabaseURL: "postgres://u:p@localhost/app?sslmode=disable"}

	parsed, err := url.Parse(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
}

func TestDSNFromDiscreteVars(t *testing.T) {
	cfg := Config{DBDriver: "postgres", DBHost: "localhost", DBPort: "5432", DBName: "Palleteandfit", DBUser: "postgres", DBPass: "secret"}

	assert.Equal(t, "host=localhost user=postgres password=secret dbname=Palleteandfit port=5432 sslmode=disable", cfg.DSN())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("SMTP_USER", "relay@example.com")
	t.Setenv("SMTP_USE_TLS", "0")
	t.Setenv("ADMIN_EMAILS", "Boss@Example.com")
	t.Setenv("APP_PORT", ":8081")

	cfg := Load()
	assert.Equal(t, "8081", cfg.AppPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "relay@example.com", cfg.MailFrom)
	assert.Equal(t, "relay@example.com", cfg.ContactTo)
	assert.False(t, cfg.SMTPUseTLS)
	assert.True(t, cfg.IsAdmin("boss@example.com"))
	assert.False(t, cfg.IsAdmin("someone@example.com"))
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsMissingSecret(t *testing.T) {
	err := Config{DBDriver: "postgres"}.Validate()
	assert.EqualError(t, err, "JWT_SECRET is required")
}
