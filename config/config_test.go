package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.False(t, cfg.Form.RequireSocialLinks)
	assert.Equal(t, int64(10*1024*1024), cfg.Form.MaxPhotoBytes)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "resume_session", cfg.Session.CookieName)
	assert.Equal(t, 3, cfg.Print.Attempts)
	assert.Empty(t, cfg.Database.URL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REQUIRE_SOCIAL_LINKS", "true")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Form.RequireSocialLinks)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("PRINT_ATTEMPTS", "0")

	_, err := Load()
	assert.Error(t, err)
}
