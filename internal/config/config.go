package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/t-tkm/rcon-resolver/internal/adapters/override"
	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/log"
)

// Config is the full application configuration, populated from the
// config file, RCON_* environment variables and command-line flags.
type Config struct {
	Settings  SettingsConfig  `mapstructure:"settings"`
	Project   ProjectConfig   `mapstructure:"project" validate:"required"`
	Overrides OverridesConfig `mapstructure:"overrides"`
	Naming    NamingConfig    `mapstructure:"naming"`
	AWS       AWSConfig       `mapstructure:"aws"`
}

type SettingsConfig struct {
	LogLevel  log.Level  `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat log.Format `mapstructure:"log_format" validate:"omitempty,oneof=text json"`
	Reporter  string     `mapstructure:"reporter" validate:"omitempty,oneof=text json"`
	NoColor   bool       `mapstructure:"no_color"`
}

type ProjectConfig struct {
	Name          string               `mapstructure:"name" validate:"required"`
	Environment   string               `mapstructure:"environment" validate:"required"`
	Region        string               `mapstructure:"region"`
	DetectionMode domain.DetectionMode `mapstructure:"detection_mode" validate:"omitempty,oneof=auto env tags naming"`
}

// OverridesConfig pins individual resource kinds to fixed identities,
// bypassing discovery for those kinds.
type OverridesConfig struct {
	ClusterName         string `mapstructure:"cluster_name"`
	ServiceName         string `mapstructure:"service_name"`
	ContainerName       string `mapstructure:"container_name"`
	TaskARN             string `mapstructure:"task_arn"`
	InstanceID          string `mapstructure:"instance_id"`
	LoadBalancerDNSName string `mapstructure:"lb_dns_name"`
}

// NamingConfig extends the built-in naming patterns. Keys are resource
// kinds (cluster, service, instance, load_balancer); values are
// wildcard patterns tried before the defaults.
type NamingConfig struct {
	ExtraPatterns map[string][]string `mapstructure:"extra_patterns"`
}

type AWSConfig struct {
	APIRPS int `mapstructure:"api_rps" validate:"omitempty,min=1,max=100"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:  log.LevelInfo,
			LogFormat: log.FormatText,
			Reporter:  "text",
		},
		Project: ProjectConfig{
			DetectionMode: domain.ModeAuto,
		},
		AWS: AWSConfig{
			APIRPS: 20,
		},
	}
}

// OverridesValue converts the file representation into the domain
// override set consumed by the pipeline.
func (c *Config) OverridesValue() override.Overrides {
	return override.Overrides{
		ClusterName:         c.Overrides.ClusterName,
		ServiceName:         c.Overrides.ServiceName,
		ContainerName:       c.Overrides.ContainerName,
		TaskARN:             c.Overrides.TaskARN,
		InstanceID:          c.Overrides.InstanceID,
		LoadBalancerDNSName: c.Overrides.LoadBalancerDNSName,
	}
}

// ExtraPatternsByKind maps config keys to resource kinds, dropping
// keys that name no known kind.
func (c *Config) ExtraPatternsByKind() map[domain.ResourceKind][]string {
	if len(c.Naming.ExtraPatterns) == 0 {
		return nil
	}
	kindsByKey := map[string]domain.ResourceKind{
		"cluster":       domain.KindCluster,
		"service":       domain.KindService,
		"instance":      domain.KindInstance,
		"load_balancer": domain.KindLoadBalancer,
	}
	out := make(map[domain.ResourceKind][]string, len(c.Naming.ExtraPatterns))
	for key, patterns := range c.Naming.ExtraPatterns {
		if kind, ok := kindsByKey[strings.ToLower(key)]; ok {
			out[kind] = patterns
		}
	}
	return out
}

// DetectionModeHookFunc decodes detection_mode strings into the domain
// type, rejecting unknown values at unmarshal time.
func DetectionModeHookFunc() mapstructure.DecodeHookFuncType {
	modeType := reflect.TypeOf(domain.DetectionMode(""))
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != modeType || from.Kind() != reflect.String {
			return data, nil
		}
		return domain.ParseDetectionMode(data.(string))
	}
}
