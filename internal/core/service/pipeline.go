package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/t-tkm/rcon-resolver/internal/adapters/matching/naming"
	"github.com/t-tkm/rcon-resolver/internal/adapters/override"
	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

// Pipeline resolves the six resource kinds into one immutable snapshot.
// Execution is strictly serial: one cloud API call outstanding at a time,
// so that for a given set of API responses two runs produce identical
// snapshots. Callers bound hung API calls through the context deadline.
type Pipeline struct {
	api         ports.CloudAPI
	tags        *TagSearch
	overrides   override.Overrides
	matcher     *naming.Matcher
	selector    StrategySelector
	project     string
	environment string
	region      string
	logger      ports.Logger
}

type Config struct {
	ProjectName   string
	Environment   string
	Region        string
	DetectionMode domain.DetectionMode
	Overrides     override.Overrides
}

func NewPipeline(cfg Config, api ports.CloudAPI, matcher *naming.Matcher, logger ports.Logger) (*Pipeline, error) {
	if api == nil {
		return nil, errors.New(errors.CodeConfigValidation, "cloud API cannot be nil")
	}
	if matcher == nil {
		return nil, errors.New(errors.CodeConfigValidation, "naming matcher cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil")
	}
	if cfg.ProjectName == "" || cfg.Environment == "" {
		return nil, errors.New(errors.CodeConfigValidation, "project name and environment are required")
	}

	return &Pipeline{
		api:         api,
		tags:        NewTagSearch(api, cfg.ProjectName, cfg.Environment, logger),
		overrides:   cfg.Overrides,
		matcher:     matcher,
		selector:    NewStrategySelector(cfg.DetectionMode),
		project:     cfg.ProjectName,
		environment: cfg.Environment,
		region:      cfg.Region,
		logger:      logger,
	}, nil
}

// Resolve runs one resolution pass and emits the snapshot. The pipeline
// holds no state across invocations; concurrent callers each build their
// own snapshot.
func (p *Pipeline) Resolve(ctx context.Context) (*domain.ResourceConfig, error) {
	r := &run{
		p:      p,
		state:  stateNotStarted,
		logger: p.logger.WithFields(map[string]any{"run_id": uuid.NewString()}),
	}
	return r.resolve(ctx)
}

type run struct {
	p      *Pipeline
	state  runState
	logger ports.Logger
}

func (r *run) resolve(ctx context.Context) (*domain.ResourceConfig, error) {
	p := r.p
	r.logger.Infof(ctx, "Starting resource resolution (project=%s environment=%s mode=%s)",
		p.project, p.environment, p.selector.Mode())

	cluster, err := r.resolveCluster(ctx)
	if err != nil {
		return nil, err
	}
	r.transition(ctx, stateClusterResolved)

	service, err := r.resolveService(ctx, cluster.Identifier)
	if err != nil {
		return nil, err
	}
	r.transition(ctx, stateServiceResolved)

	task, err := r.resolveTask(ctx, cluster.Identifier, service.Identifier)
	if err != nil {
		return nil, err
	}
	r.transition(ctx, stateTaskResolved)

	container, err := r.resolveContainer(ctx, cluster.Identifier, task.Identifier)
	if err != nil {
		return nil, err
	}
	r.transition(ctx, stateContainerResolved)

	// Optional kinds resolve best-effort alongside the chain; they can
	// never move the pipeline to Failed.
	instance := r.resolveOptional(ctx, domain.KindInstance)
	loadBalancer := r.resolveOptional(ctx, domain.KindLoadBalancer)
	r.transition(ctx, stateComplete)

	snapshot := &domain.ResourceConfig{
		Cluster:       cluster,
		Service:       service,
		Task:          task,
		Container:     container,
		Instance:      instance,
		LoadBalancer:  loadBalancer,
		DetectionMode: p.selector.Mode(),
		ProjectName:   p.project,
		Environment:   p.environment,
		Region:        p.region,
	}

	r.logger.Infof(ctx, "Resolution complete: cluster=%s service=%s task=%s container=%s instance=%s lb=%s",
		snapshot.Cluster.Identifier, snapshot.Service.Identifier, snapshot.Task.Identifier,
		snapshot.Container.Identifier, snapshot.Instance.Identifier, snapshot.LoadBalancer.Identifier)
	return snapshot, nil
}

func (r *run) resolveCluster(ctx context.Context) (domain.ResolvedResource, error) {
	if res, ok := r.cascade(ctx, domain.KindCluster, domain.Scope{}); ok {
		return res, nil
	}
	return domain.ResolvedResource{}, r.fail(ctx, domain.KindCluster)
}

func (r *run) resolveService(ctx context.Context, cluster string) (domain.ResolvedResource, error) {
	scope := domain.Scope{Cluster: cluster}
	if res, ok := r.cascade(ctx, domain.KindService, scope); ok {
		return res, nil
	}

	// Last resort: any service in a correctly identified cluster is an
	// acceptable default. Cluster resolution deliberately has no such
	// fallback; the cluster must be identified precisely.
	candidates, err := r.p.api.ListCandidates(ctx, domain.KindService, scope)
	if err != nil {
		r.logger.Warnf(ctx, "First-service fallback listing failed: %v", err)
	} else if len(candidates) > 0 {
		r.logger.Infof(ctx, "Resolved service %q as first service in cluster %q", candidates[0].Name, cluster)
		return domain.ResolvedResource{
			Kind:       domain.KindService,
			Identifier: candidates[0].Identifier,
			Strategy:   domain.StrategyFirstService,
		}, nil
	}

	return domain.ResolvedResource{}, r.fail(ctx, domain.KindService)
}

func (r *run) resolveTask(ctx context.Context, cluster, service string) (domain.ResolvedResource, error) {
	if r.p.selector.Allows(domain.StrategyEnvOverride) {
		if v, ok := r.p.overrides.Lookup(domain.KindTask); ok {
			r.logger.Debugf(ctx, "Resolved task %q from override", v)
			return domain.ResolvedResource{
				Kind:       domain.KindTask,
				Identifier: v,
				Strategy:   domain.StrategyEnvOverride,
			}, nil
		}
	}

	candidates, err := r.p.api.ListCandidates(ctx, domain.KindTask, domain.Scope{Cluster: cluster, Service: service})
	if err != nil {
		r.logger.Warnf(ctx, "Running-task listing failed: %v", err)
		return domain.ResolvedResource{}, r.fail(ctx, domain.KindTask)
	}
	if len(candidates) == 0 {
		return domain.ResolvedResource{}, r.fail(ctx, domain.KindTask)
	}

	r.logger.Debugf(ctx, "Resolved running task %s", candidates[0].Identifier)
	return domain.ResolvedResource{
		Kind:       domain.KindTask,
		Identifier: candidates[0].Identifier,
		Strategy:   domain.StrategyRunningTask,
	}, nil
}

func (r *run) resolveContainer(ctx context.Context, cluster, taskARN string) (domain.ResolvedResource, error) {
	if r.p.selector.Allows(domain.StrategyEnvOverride) {
		if v, ok := r.p.overrides.Lookup(domain.KindContainer); ok {
			r.logger.Debugf(ctx, "Resolved container %q from override", v)
			return domain.ResolvedResource{
				Kind:       domain.KindContainer,
				Identifier: v,
				Strategy:   domain.StrategyEnvOverride,
			}, nil
		}
	}

	names, err := r.p.api.TaskContainers(ctx, cluster, taskARN)
	if err != nil {
		r.logger.Warnf(ctx, "Describe-task for container names failed: %v", err)
		return domain.ResolvedResource{}, r.fail(ctx, domain.KindContainer)
	}
	if len(names) == 0 {
		return domain.ResolvedResource{}, r.fail(ctx, domain.KindContainer)
	}

	r.logger.Debugf(ctx, "Resolved container %q as first container of task", names[0])
	return domain.ResolvedResource{
		Kind:       domain.KindContainer,
		Identifier: names[0],
		Strategy:   domain.StrategyFirstContainer,
	}, nil
}

func (r *run) resolveOptional(ctx context.Context, kind domain.ResourceKind) domain.ResolvedResource {
	if res, ok := r.cascade(ctx, kind, domain.Scope{}); ok {
		return res
	}

	sentinel, _ := domain.SentinelFor(kind)
	r.logger.Warnf(ctx, "No %s found for project %q, using sentinel %q (optional kind)", kind, r.p.project, sentinel)
	return domain.ResolvedResource{
		Kind:       kind,
		Identifier: sentinel,
		Strategy:   domain.StrategySentinel,
	}
}

// cascade runs the strategy families for one kind in the fixed order
// tags, env override, naming, restricted by the detection mode. A
// strategy error means exhaustion of that strategy only; the cascade
// falls through to the next one.
func (r *run) cascade(ctx context.Context, kind domain.ResourceKind, scope domain.Scope) (domain.ResolvedResource, bool) {
	p := r.p

	if p.selector.Allows(domain.StrategyTags) {
		matches, err := p.tags.FindByTags(ctx, kind, scope)
		if err != nil {
			r.logger.Warnf(ctx, "Tag strategy for %s exhausted: %v", kind, err)
		} else if len(matches) > 0 {
			r.logger.Infof(ctx, "Resolved %s %q by tags", kind, matches[0].Name)
			return domain.ResolvedResource{Kind: kind, Identifier: matches[0].Identifier, Strategy: domain.StrategyTags}, true
		}
	}

	if p.selector.Allows(domain.StrategyEnvOverride) {
		if v, ok := p.overrides.Lookup(kind); ok {
			r.logger.Infof(ctx, "Resolved %s %q from override", kind, v)
			return domain.ResolvedResource{Kind: kind, Identifier: v, Strategy: domain.StrategyEnvOverride}, true
		}
	}

	if p.selector.Allows(domain.StrategyNaming) {
		candidates, err := p.api.ListCandidates(ctx, kind, scope)
		if err != nil {
			r.logger.Warnf(ctx, "Naming strategy listing for %s exhausted: %v", kind, err)
		} else if c, ok := p.matcher.FirstMatch(kind, candidates); ok {
			r.logger.Infof(ctx, "Resolved %s %q by naming pattern", kind, c.Name)
			return domain.ResolvedResource{Kind: kind, Identifier: c.Identifier, Strategy: domain.StrategyNaming}, true
		}
	}

	return domain.ResolvedResource{}, false
}

func (r *run) fail(ctx context.Context, kind domain.ResourceKind) error {
	r.transition(ctx, stateFailed)
	err := &domain.ResolutionError{
		Kind:        kind,
		Project:     r.p.project,
		Environment: r.p.environment,
	}
	r.logger.Errorf(ctx, err, "Resolution failed for required kind %s", kind)
	return err
}

func (r *run) transition(ctx context.Context, next runState) {
	r.logger.Debugf(ctx, "Pipeline state %s -> %s", r.state, next)
	r.state = next
}
