package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettingsDefaults(t *testing.T) {
	s, err := ParseSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, 14*24*time.Hour, s.TrialDuration())
	assert.Equal(t, time.UTC, s.Location())
}

func TestParseSettingsFromEnv(t *testing.T) {
	t.Setenv("TRIAL_DAYS", "7")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_IDLE_TTL", "90s")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Paris")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.5")

	s, err := ParseSettings()
	require.NoError(t, err)
	assert.Equal(t, 7, s.TrialDays)
	assert.Equal(t, 0.5, s.RateLimitRPS)
	assert.Equal(t, 90*time.Second, s.RateLimitIdleTTL)
	assert.Equal(t, "Europe/Paris", s.Location().String())
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"}, s.TrustedProxies)
}

func TestParseSettingsRejectsGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")
	_, err := ParseSettings()
	assert.Error(t, err)
}

func TestLoadLocationFallback(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("", time.UTC))
	assert.Equal(t, time.UTC, LoadLocation("Mars/Olympus", time.UTC))
}
