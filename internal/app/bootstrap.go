package app

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/t-tkm/rcon-resolver/internal/adapters/dispatch/ecsexec"
	"github.com/t-tkm/rcon-resolver/internal/adapters/matching/naming"
	"github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws"
	"github.com/t-tkm/rcon-resolver/internal/config"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	"github.com/t-tkm/rcon-resolver/internal/core/service"
	"github.com/t-tkm/rcon-resolver/internal/errors"
	"github.com/t-tkm/rcon-resolver/internal/log"
	jsonreport "github.com/t-tkm/rcon-resolver/internal/reporting/json"
	textreport "github.com/t-tkm/rcon-resolver/internal/reporting/text"
)

// BuildApplicationFromViper assembles the full application from the
// merged viper state (config file, RCON_* environment, flags).
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	cfg := config.DefaultConfig()

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		config.DetectionModeHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			"Configuration is invalid.",
			"Set project.name and project.environment in the config file or via RCON_PROJECT_NAME / RCON_PROJECT_ENVIRONMENT.")
	}

	logger, err := log.NewLogger(log.Config{
		Level:  cfg.Settings.LogLevel,
		Format: cfg.Settings.LogFormat,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize logger")
	}

	matcher, err := naming.NewMatcher(naming.Config{
		ProjectName: cfg.Project.Name,
		Environment: cfg.Project.Environment,
		Extra:       cfg.ExtraPatternsByKind(),
	})
	if err != nil {
		return nil, err
	}

	provider, err := aws.NewProvider(ctx, aws.Config{
		Region: cfg.Project.Region,
		APIRPS: cfg.AWS.APIRPS,
	}, logger)
	if err != nil {
		return nil, err
	}

	pipeline, err := service.NewPipeline(service.Config{
		ProjectName:   cfg.Project.Name,
		Environment:   cfg.Project.Environment,
		Region:        provider.SDKConfig().Region,
		DetectionMode: cfg.Project.DetectionMode,
		Overrides:     cfg.OverridesValue(),
	}, provider, matcher, logger)
	if err != nil {
		return nil, err
	}

	reporter, err := buildReporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:     cfg,
		Resolver:   pipeline,
		Reporter:   reporter,
		Dispatcher: ecsexec.NewDispatcher(provider.SDKConfig(), logger),
		Logger:     logger,
	}, nil
}

func buildReporter(cfg *config.Config, logger ports.Logger) (ports.Reporter, error) {
	switch cfg.Settings.Reporter {
	case jsonreport.ReporterTypeJSON:
		return jsonreport.NewReporter(jsonreport.Config{}, logger)
	case textreport.ReporterTypeText, "":
		return textreport.NewReporter(textreport.Config{NoColor: cfg.Settings.NoColor}, logger)
	}
	return nil, errors.NewUserFacing(errors.CodeConfigValidation,
		"Unknown reporter type "+cfg.Settings.Reporter+".",
		"Use one of: text, json.")
}
