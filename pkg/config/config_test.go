package config_test

import (
	"testing"
	"time"

	"github.com/limbo/mindwell/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("ENV_FILE", "./does-not-exist.env")
	cfg := config.New()

	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_FLOAT", "2.5")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_LIST", " a, ,b ,c")
	t.Setenv("TEST_ZONE", "UTC")
	t.Setenv("TEST_BAD_ZONE", "Mars/Olympus")

	assert.Equal(t, 42, cfg.GetInt("TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("TEST_BAD_INT", 1))
	assert.Equal(t, 2.5, cfg.GetFloat("TEST_FLOAT", 1))
	assert.True(t, cfg.GetBool("TEST_BOOL", false))
	assert.False(t, cfg.GetBool("TEST_MISSING", false))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("TEST_DURATION", time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetList("TEST_LIST", nil))
	assert.Equal(t, []string{"*"}, cfg.GetList("TEST_MISSING", []string{"*"}))
	assert.Equal(t, "fallback", cfg.GetStringOr("TEST_MISSING", "fallback"))
	assert.Equal(t, time.UTC, cfg.GetLocation("TEST_ZONE"))
	assert.Equal(t, time.Local, cfg.GetLocation("TEST_BAD_ZONE"))
	assert.Equal(t, time.Local, cfg.GetLocation("TEST_MISSING"))
}
