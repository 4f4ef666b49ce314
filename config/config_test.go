package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchedulerConfigDefaults(t *testing.T) {
	cfg := GetSchedulerConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, int64(2), cfg.RoundRobinTimeQuantum)
	assert.Equal(t, int64(3), cfg.StarvationFactor)

	// Singleton: repeated calls hand back the same instance.
	assert.Same(t, cfg, GetSchedulerConfig())
}
