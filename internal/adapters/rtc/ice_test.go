package rtc

import (
	"testing"

	"github.com/dkeye/Meet/internal/config"
	"github.com/stretchr/testify/require"
)

func TestConfigurationFrom_Default(t *testing.T) {
	require.Equal(t, DefaultWebRTCConfig(), ConfigurationFrom(nil))
}

func TestConfigurationFrom_Servers(t *testing.T) {
	req := require.New(t)

	cfg := ConfigurationFrom([]config.ICEServerConfig{
		{URLs: []string{"stun:stun.example.com:3478"}},
		{URLs: []string{"turn:turn.example.com:3478"}, Username: "u", Credential: "p"},
	})

	req.Len(cfg.ICEServers, 2)
	req.Equal([]string{"stun:stun.example.com:3478"}, cfg.ICEServers[0].URLs)
	req.Nil(cfg.ICEServers[0].Credential)
	req.Equal("u", cfg.ICEServers[1].Username)
	req.Equal("p", cfg.ICEServers[1].Credential)
}
