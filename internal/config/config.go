package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode         string            `mapstructure:"mode"`
	Port         int               `mapstructure:"port"`
	StaticPath   string            `mapstructure:"static_path"`
	ReadLimit    int64             `mapstructure:"read_limit"`
	PingPeriod   time.Duration     `mapstructure:"ping_period"`
	SendBuffer   int               `mapstructure:"send_buffer"`
	Secret       string            `mapstructure:"secret"`
	LogLevel     string            `mapstructure:"log_level"`
	Backpressure string            `mapstructure:"backpressure"`
	Transcript   TranscriptConfig  `mapstructure:"transcript"`
	ICEServers   []ICEServerConfig `mapstructure:"ice_servers"`
	SMTP         SMTPConfig        `mapstructure:"smtp"`
	CORS         CORSConfig        `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type TranscriptConfig struct {
	EvictOnEmpty bool `mapstructure:"evict_on_empty"`
}

type ICEServerConfig struct {
	URLs       []string `mapstructure:"urls"`
	Username   string   `mapstructure:"username"`
	Credential string   `mapstructure:"credential"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	To       string `mapstructure:"to"`
}

// Load reads .env, then config/config.<CONFIG_ENV>.yaml, then environment
// overrides (SMTP_PASSWORD, PORT, ...).
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Info().Str("module", "config").Msg("loaded .env")
	}

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return LoadFile(fmt.Sprintf("config/config.%s.yaml", env))
}

// LoadFile is Load without the .env step and with an explicit file name.
// A missing file is not an error; defaults apply.
func LoadFile(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8000)
	v.SetDefault("static_path", "./web")
	v.SetDefault("read_limit", 40960)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("send_buffer", 64)
	v.SetDefault("secret", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("backpressure", "drop")
	v.SetDefault("transcript.evict_on_empty", false)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("ice_servers", []map[string]any{
		{"urls": []string{"stun:stun.l.google.com:19302"}},
	})
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.to", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Names used by earlier deployments of the contact form.
	_ = v.BindEnv("smtp.username", "SMTP_USERNAME", "EMAIL_USER")
	_ = v.BindEnv("smtp.password", "SMTP_PASSWORD", "EMAIL_PASS")

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.Username
	}
	if cfg.SendBuffer <= 0 {
		return nil, fmt.Errorf("send_buffer must be positive, got %d", cfg.SendBuffer)
	}
	log.Info().Str("module", "config").Str("mode", cfg.Mode).Int("port", cfg.Port).Str("static", cfg.StaticPath).Msg("config ready")
	return &cfg, nil
}
