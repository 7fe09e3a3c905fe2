package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 587, cfg.SMTP.Port)

	assert.False(t, cfg.Razorpay.Configured())
	assert.False(t, cfg.Meta.Configured())
	assert.False(t, cfg.SMTP.Configured())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://vyaparify.com,https://www.vyaparify.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Razorpay.Configured())
	assert.Equal(t, "rzp_test_key", cfg.Razorpay.KeyID)
	assert.Equal(t,
		[]string{"https://vyaparify.com", "https://www.vyaparify.com"},
		cfg.CORSAllowedOrigins)
}
