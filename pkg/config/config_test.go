package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/dayflow/pkg/config"
)

func TestGetters(t *testing.T) {
	cfg := config.New()
	assert.Same(t, cfg, config.New())

	t.Setenv("DAYFLOW_TEST_STR", "09:30")
	t.Setenv("DAYFLOW_TEST_EMPTY", "")
	t.Setenv("DAYFLOW_TEST_INT", "45")
	t.Setenv("DAYFLOW_TEST_BAD_INT", "forty")
	t.Setenv("DAYFLOW_TEST_BOOL", "1")
	t.Setenv("DAYFLOW_TEST_BAD_BOOL", "maybe")

	assert.Equal(t, "09:30", cfg.GetString("DAYFLOW_TEST_STR"))
	assert.Equal(t, "09:30", cfg.GetStringOr("DAYFLOW_TEST_STR", "18:00"))
	assert.Equal(t, "18:00", cfg.GetStringOr("DAYFLOW_TEST_EMPTY", "18:00"))
	assert.Equal(t, "18:00", cfg.GetStringOr("DAYFLOW_TEST_UNSET", "18:00"))

	assert.Equal(t, 45, cfg.GetInt("DAYFLOW_TEST_INT", 60))
	assert.Equal(t, 60, cfg.GetInt("DAYFLOW_TEST_BAD_INT", 60))
	assert.Equal(t, 60, cfg.GetInt("DAYFLOW_TEST_UNSET", 60))

	assert.True(t, cfg.GetBool("DAYFLOW_TEST_BOOL", false))
	assert.False(t, cfg.GetBool("DAYFLOW_TEST_BAD_BOOL", false))
	assert.True(t, cfg.GetBool("DAYFLOW_TEST_UNSET", true))
}
