// Package rtc holds the WebRTC settings handed to browsers. Media never
// flows through this server; peers negotiate directly.
package rtc

import (
	"github.com/dkeye/Meet/internal/config"
	"github.com/pion/webrtc/v4"
)

// DefaultWebRTCConfig is used when no ICE servers are configured.
func DefaultWebRTCConfig() webrtc.Configuration {
	return webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{
			{
				URLs: []string{"stun:stun.l.google.com:19302"},
			},
		},
	}
}

// ConfigurationFrom builds the client-facing peer configuration.
func ConfigurationFrom(servers []config.ICEServerConfig) webrtc.Configuration {
	if len(servers) == 0 {
		return DefaultWebRTCConfig()
	}
	out := webrtc.Configuration{ICEServers: make([]webrtc.ICEServer, 0, len(servers))}
	for _, s := range servers {
		srv := webrtc.ICEServer{URLs: s.URLs, Username: s.Username}
		if s.Credential != "" {
			srv.Credential = s.Credential
			srv.CredentialType = webrtc.ICECredentialTypePassword
		}
		out.ICEServers = append(out.ICEServers, srv)
	}
	return out
}
