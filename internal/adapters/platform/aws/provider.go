package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	ec2handler "github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/ec2"
	ecshandler "github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/ecs"
	elbhandler "github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/elbv2"
	"github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/limiter"
	"github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/shared"
	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

const ProviderTypeAWS = "aws"

type Config struct {
	Region string
	APIRPS int
}

// Provider implements ports.CloudAPI on aws-sdk-go-v2, routing each
// resource kind to its service handler. All handlers share one rate
// limiter.
type Provider struct {
	awsConfig awssdk.Config
	ecs       *ecshandler.Handler
	ec2       *ec2handler.Handler
	elb       *elbhandler.Handler
	logger    ports.Logger
}

func NewProvider(ctx context.Context, cfg Config, logger ports.Logger) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil for AWS provider")
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigValidation, "failed to load default AWS config")
	}

	lim := limiter.New(cfg.APIRPS, logger)

	p := &Provider{
		awsConfig: awsCfg,
		ecs:       ecshandler.NewHandler(awsCfg, ecshandler.WithRateLimiter(lim)),
		ec2:       ec2handler.NewHandler(awsCfg, ec2handler.WithRateLimiter(lim)),
		elb:       elbhandler.NewHandler(awsCfg, elbhandler.WithRateLimiter(lim)),
		logger:    logger,
	}

	p.logCallerIdentity(ctx, sts.NewFromConfig(awsCfg))
	return p, nil
}

// newProviderWithHandlers wires pre-built handlers; used by tests.
func newProviderWithHandlers(e *ecshandler.Handler, i *ec2handler.Handler, l *elbhandler.Handler, logger ports.Logger) *Provider {
	return &Provider{ecs: e, ec2: i, elb: l, logger: logger}
}

func (p *Provider) logCallerIdentity(ctx context.Context, client shared.STSClientInterface) {
	output, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		p.logger.Warnf(ctx, "Proceeding without AWS caller identity: %v", err)
		return
	}
	p.logger.Infof(ctx, "AWS provider initialized (account=%s region=%s)",
		awssdk.ToString(output.Account), p.awsConfig.Region)
}

func (p *Provider) Type() string {
	return ProviderTypeAWS
}

// SDKConfig exposes the loaded AWS config so other adapters can share
// the same credentials and region.
func (p *Provider) SDKConfig() awssdk.Config {
	return p.awsConfig
}

func (p *Provider) ListCandidates(ctx context.Context, kind domain.ResourceKind, scope domain.Scope) ([]domain.Candidate, error) {
	switch kind {
	case domain.KindCluster:
		return p.ecs.ListClusters(ctx, p.logger)
	case domain.KindService:
		return p.ecs.ListServices(ctx, scope.Cluster, p.logger)
	case domain.KindTask:
		return p.ecs.ListRunningTasks(ctx, scope.Cluster, scope.Service, p.logger)
	case domain.KindInstance:
		return p.ec2.ListRunningInstances(ctx, p.logger)
	case domain.KindLoadBalancer:
		return p.elb.ListLoadBalancers(ctx, p.logger)
	}
	return nil, errors.New(errors.CodeInternal, fmt.Sprintf("resource kind %q has no listing", kind))
}

func (p *Provider) ResourceTags(ctx context.Context, kind domain.ResourceKind, candidate domain.Candidate) (map[string]string, error) {
	switch kind {
	case domain.KindCluster, domain.KindService:
		return p.ecs.Tags(ctx, candidate.ARN, p.logger)
	case domain.KindInstance:
		return p.ec2.Tags(ctx, candidate.Identifier, p.logger)
	case domain.KindLoadBalancer:
		return p.elb.Tags(ctx, candidate.ARN, p.logger)
	}
	return nil, errors.New(errors.CodeInternal, fmt.Sprintf("resource kind %q has no tag lookup", kind))
}

func (p *Provider) TaskContainers(ctx context.Context, cluster string, taskARN string) ([]string, error) {
	return p.ecs.TaskContainers(ctx, cluster, taskARN, p.logger)
}
