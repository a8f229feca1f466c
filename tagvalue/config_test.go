package tagvalue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	require.Equal(t, DefaultSeparator, cfg.Separator())
	require.True(t, cfg.VerifyChecksum())
}

func TestConfigOptionsOverrideDefaults(t *testing.T) {
	cfg := NewConfig(WithSeparator('|'), WithVerifyChecksum(false))
	require.Equal(t, byte('|'), cfg.Separator())
	require.False(t, cfg.VerifyChecksum())
}
