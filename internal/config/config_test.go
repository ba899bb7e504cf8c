package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vibejam-co/jam-sub001/pkg/errors"
)

const sampleConfig = `
database:
  driver: postgres
  host: db.internal
  port: 6543
  user: vibejam
  password: secret
  dbname: directory
server:
  port: 9090
directory:
  atomic_publish: true
logging:
  level: debug
  format: json
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Directory.AtomicPublish)
	assert.Equal(t, 25, cfg.Directory.NotificationLimit)
	assert.Equal(t, "0 0 * * * *", cfg.Scheduler.SnapshotCron)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VIBEJAM_DATABASE_HOST", "override.internal")
	t.Setenv("VIBEJAM_SERVER_PORT", "7000")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "override.internal", cfg.Database.Host)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadWithoutFileUsesEnv(t *testing.T) {
	t.Setenv("VIBEJAM_DATABASE_HOST", "localhost")
	t.Setenv("VIBEJAM_DATABASE_USER", "jam")
	t.Setenv("VIBEJAM_DATABASE_DBNAME", "jam")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadMissingCredentialsIsConfigurationError(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "oracle", Host: "h", User: "u", DBName: "d"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestDSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=d port=5432 sslmode=disable", pg.DSN())

	my := DatabaseConfig{Driver: "mysql", Host: "h", Port: 3306, User: "u", Password: "p", DBName: "d"}
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", my.DSN())
}
