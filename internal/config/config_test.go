package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadAPIDefaults() {
	s.T().Setenv("SERVER_PORT", "")
	s.T().Setenv("JWT_ACCESS_TTL", "")
	s.T().Setenv("PAGE_SIZE", "")

	cfg := LoadAPI()

	s.Equal("8000", cfg.Server.Port)
	s.Equal(24*time.Hour, cfg.JWT.AccessTTL)
	s.Equal(20, cfg.PageSize)
	s.Equal("https://graph.facebook.com", cfg.Facebook.GraphURL)
}

func (s *ConfigTestSuite) TestLoadAPIOverrides() {
	s.T().Setenv("SERVER_PORT", "9090")
	s.T().Setenv("JWT_ACCESS_TTL", "1h")
	s.T().Setenv("RATE_LIMIT_BURST", "5")
	s.T().Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := LoadAPI()

	s.Equal("9090", cfg.Server.Port)
	s.Equal(time.Hour, cfg.JWT.AccessTTL)
	s.Equal(5, cfg.RateLimit.Burst)
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func (s *ConfigTestSuite) TestInvalidValuesFallBack() {
	s.T().Setenv("REDIS_DB", "not-a-number")
	s.T().Setenv("SERVER_IDLE_TIMEOUT", "forever")

	cfg := LoadAPI()

	s.Equal(0, cfg.Redis.DB)
	s.Equal(60*time.Second, cfg.Server.IdleTimeout)
}

func (s *ConfigTestSuite) TestLoadBot() {
	s.T().Setenv("DISCORD_TOKEN", "token")
	s.T().Setenv("DEFAULT_CITY", "")
	s.T().Setenv("PAGE_SIZE", "")

	cfg := LoadBot()

	s.Equal("token", cfg.DiscordToken)
	s.Equal("Waterloo", cfg.DefaultCity)
	s.Equal("http://localhost:8000", cfg.APIURL)
	s.Equal(20, cfg.PageSize)
}

func (s *ConfigTestSuite) TestBotSharesBackendPageSize() {
	s.T().Setenv("PAGE_SIZE", "5")

	s.Equal(5, LoadAPI().PageSize)
	s.Equal(5, LoadBot().PageSize)
}
