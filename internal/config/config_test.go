package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: 0.0.0.0
  port: 8080
database:
  host: localhost
  user: rewards
  database: rewards
jwt:
  secret: 0123456789abcdef0123456789abcdef
ledger:
  timezone: Asia/Kolkata
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"%@example.com"}, cfg.Admin.SampleEmailPatterns)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, "postgres://rewards:@localhost:5432/rewards?sslmode=disable", cfg.GetDatabaseConnectionString())
	assert.NotEmpty(t, cfg.Scheduler.LeaderboardReport)
	assert.Empty(t, cfg.Scheduler.CleanupSamples)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://rewards.example.org,http://localhost:5173")

	cfg, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://rewards.example.org", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"short secret", "server: {port: 80}\ndatabase: {host: h, user: u, database: d}\njwt: {secret: short}"},
		{"missing db host", "server: {port: 80}\ndatabase: {user: u, database: d}\njwt: {secret: 0123456789abcdef0123456789abcdef}"},
		{"bad port", "server: {port: 70000}\ndatabase: {host: h, user: u, database: d}\njwt: {secret: 0123456789abcdef0123456789abcdef}"},
		{"bad timezone", "server: {port: 80}\ndatabase: {host: h, user: u, database: d}\njwt: {secret: 0123456789abcdef0123456789abcdef}\nledger: {timezone: Mars/Olympus}"},
		{"malformed", "server: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetSecurityLevel(t *testing.T) {
	assert.Equal(t, SecurityPublic, GetSecurityLevel("healthz"))
	assert.Equal(t, SecurityAuthenticated, GetSecurityLevel("users.register"))
	assert.Equal(t, SecurityAuthenticated, GetSecurityLevel("activities.approve"))
	assert.Equal(t, SecurityAuthenticated, GetSecurityLevel("something.new"))
}
