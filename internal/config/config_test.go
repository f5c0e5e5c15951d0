package config

import (
	"os"
	"path/filepath"
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

func (s *ConfigTestSuite) TestDefaultsWithoutEnvFile() {
	s.T().Setenv("REDIS_ADDR", "")
	s.T().Setenv("QUALIFYING_RANKS", "")

	cfg, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)

	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(28, cfg.QualifyingRanks)
	s.Equal(time.Minute, cfg.CompetitionPollInterval)
	s.Equal(5*time.Second, cfg.AdminPollInterval)
	s.Len(cfg.AdminWallets, 1)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("REDIS_ADDR", "redis:6380")
	s.T().Setenv("QUALIFYING_RANKS", "10")
	s.T().Setenv("ADMIN_WALLETS", " 0xabc , ,0xdef")
	s.T().Setenv("ADMIN_POLL_INTERVAL", "2s")

	cfg, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)

	s.Equal("redis:6380", cfg.RedisAddr)
	s.Equal(10, cfg.QualifyingRanks)
	s.Equal([]string{"0xabc", "0xdef"}, cfg.AdminWallets)
	s.Equal(2*time.Second, cfg.AdminPollInterval)
}

func (s *ConfigTestSuite) TestEnvFileIsLoaded() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("HTTP_ADDR=:9999\n"), 0o600))
	s.T().Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(":9999", cfg.HTTPAddr)
}

func (s *ConfigTestSuite) TestBadNumbersFallBack() {
	s.T().Setenv("REDIS_DB", "not-a-number")
	s.T().Setenv("COMPETITION_POLL_INTERVAL", "-1m")

	cfg, err := Load(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)
	s.Equal(0, cfg.RedisDB)
	s.Equal(time.Minute, cfg.CompetitionPollInterval)
}
