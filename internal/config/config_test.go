package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/log"
)

func decode(t *testing.T, settings map[string]any) (*Config, error) {
	t.Helper()
	v := viper.New()
	for key, value := range settings {
		v.Set(key, value)
	}
	cfg := DefaultConfig()
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		DetectionModeHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	return cfg, err
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, log.LevelInfo, cfg.Settings.LogLevel)
	assert.Equal(t, log.FormatText, cfg.Settings.LogFormat)
	assert.Equal(t, "text", cfg.Settings.Reporter)
	assert.Equal(t, domain.ModeAuto, cfg.Project.DetectionMode)
	assert.Equal(t, 20, cfg.AWS.APIRPS)
}

func TestUnmarshalWithDetectionModeHook(t *testing.T) {
	cfg, err := decode(t, map[string]any{
		"project.name":           "minecraft",
		"project.environment":    "prod",
		"project.detection_mode": "tags",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeTags, cfg.Project.DetectionMode)
}

func TestUnmarshalRejectsInvalidDetectionMode(t *testing.T) {
	_, err := decode(t, map[string]any{
		"project.name":           "minecraft",
		"project.environment":    "prod",
		"project.detection_mode": "magic",
	})
	require.Error(t, err)
}

func TestValidationRequiresProjectAndEnvironment(t *testing.T) {
	cfg, err := decode(t, map[string]any{"project.name": "minecraft"})
	require.NoError(t, err)

	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.Struct(cfg)
	require.Error(t, err)
}

func TestOverridesValue(t *testing.T) {
	cfg, err := decode(t, map[string]any{
		"project.name":             "minecraft",
		"project.environment":      "prod",
		"overrides.cluster_name":   "pinned-cluster",
		"overrides.container_name": "custom",
	})
	require.NoError(t, err)

	o := cfg.OverridesValue()
	got, ok := o.Lookup(domain.KindCluster)
	require.True(t, ok)
	assert.Equal(t, "pinned-cluster", got)

	got, ok = o.Lookup(domain.KindContainer)
	require.True(t, ok)
	assert.Equal(t, "custom", got)

	_, ok = o.Lookup(domain.KindTask)
	assert.False(t, ok)
}

func TestExtraPatternsByKind(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Naming.ExtraPatterns = map[string][]string{
		"cluster":       {"game-*"},
		"load_balancer": {"*-edge"},
		"unknown_kind":  {"ignored"},
	}

	got := cfg.ExtraPatternsByKind()
	assert.Equal(t, []string{"game-*"}, got[domain.KindCluster])
	assert.Equal(t, []string{"*-edge"}, got[domain.KindLoadBalancer])
	assert.Len(t, got, 2)
}
