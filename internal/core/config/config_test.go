package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	p := writeYAML(t, `
app:
  http:
    port: 9090
    perIPBurst: 5
result:
  system_id: "0207"
  service_id: "11"
jwt:
  secret: s3cret
`)
	c, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.App.HTTP.Port)
	assert.Equal(t, "0207", c.Result.SystemID)
	assert.Equal(t, "11", c.Result.ServiceID)
	assert.Equal(t, "s3cret", c.JWT.Secret)
	// 默认值
	assert.Equal(t, 8081, c.App.Admin.Port)
	assert.Equal(t, int64(16), c.App.HTTP.MaxBodyMB)
	assert.Equal(t, 300, c.Redis.ProfileTTL)
	assert.Equal(t, 20.0, c.App.HTTP.PerIPRPS)
	assert.Equal(t, 5, c.App.HTTP.PerIPBurst)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(writeYAML(t, "app:\n  name: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "0103", c.Result.SystemID)
	assert.Equal(t, "00", c.Result.ServiceID)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_RESULT_SERVICE_ID", "42")
	c, err := Load(writeYAML(t, "result:\n  system_id: \"0103\"\n  service_id: \"00\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "42", c.Result.ServiceID)
}

func TestLoad_EmptyPrefixRejected(t *testing.T) {
	_, err := Load(writeYAML(t, "result:\n  system_id: \"\"\n"))
	assert.ErrorContains(t, err, "result.system_id")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
