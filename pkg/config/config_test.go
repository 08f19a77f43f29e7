package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "klipp", cfg.MongoDatabase)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "override")
	t.Setenv("MONGO_DATABASE", "otherdb")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "override", cfg.JWTSecret)
	assert.Equal(t, "otherdb", cfg.MongoDatabase)
}
