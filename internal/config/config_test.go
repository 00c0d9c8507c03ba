package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	req.NoError(err)
	req.Equal("release", cfg.Mode)
	req.Equal(8000, cfg.Port)
	req.Equal(int64(40960), cfg.ReadLimit)
	req.Equal(54*time.Second, cfg.PingPeriod)
	req.Equal(64, cfg.SendBuffer)
	req.Equal("drop", cfg.Backpressure)
	req.False(cfg.Transcript.EvictOnEmpty)
	req.Len(cfg.ICEServers, 1)
	req.Equal([]string{"stun:stun.l.google.com:19302"}, cfg.ICEServers[0].URLs)
	req.Equal(587, cfg.SMTP.Port)
	req.Equal([]string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoadFile_FromYAML(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	yaml := `
mode: debug
port: 9090
ping_period: 10s
backpressure: kick
transcript:
  evict_on_empty: true
ice_servers:
  - urls: ["stun:stun.example.com:3478"]
  - urls: ["turn:turn.example.com:3478"]
    username: user
    credential: pass
smtp:
  host: smtp.example.com
  username: bot@example.com
cors:
  allow_origins: ["https://meet.example.com"]
`
	req.NoError(os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadFile(path)

	req.NoError(err)
	req.Equal("debug", cfg.Mode)
	req.Equal(9090, cfg.Port)
	req.Equal(10*time.Second, cfg.PingPeriod)
	req.Equal("kick", cfg.Backpressure)
	req.True(cfg.Transcript.EvictOnEmpty)
	req.Len(cfg.ICEServers, 2)
	req.Equal("user", cfg.ICEServers[1].Username)
	req.Equal("smtp.example.com", cfg.SMTP.Host)
	req.Equal("bot@example.com", cfg.SMTP.To)
	req.Equal([]string{"https://meet.example.com"}, cfg.CORS.AllowOrigins)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("SMTP_PASSWORD", "s3cret")
	t.Setenv("EMAIL_USER", "legacy@example.com")
	t.Setenv("PORT", "7000")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	require.Equal(t, "s3cret", cfg.SMTP.Password)
	require.Equal(t, "legacy@example.com", cfg.SMTP.Username)
	require.Equal(t, 7000, cfg.Port)
}
