package ecs

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"

	awserrors "github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/errors"
	"github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/shared"
	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	apperrors "github.com/t-tkm/rcon-resolver/internal/errors"
)

// Handler covers the ECS side of resolution: clusters, services, running
// tasks, task containers and resource tags.
type Handler struct {
	client       shared.ECSClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
}

type Option func(*Handler)

func WithClient(c shared.ECSClientInterface) Option {
	return func(h *Handler) { h.client = c }
}

func WithRateLimiter(l shared.RateLimiter) Option {
	return func(h *Handler) { h.limiter = l }
}

func WithErrorHandler(e shared.ErrorHandler) Option {
	return func(h *Handler) { h.errorHandler = e }
}

func NewHandler(cfg aws.Config, opts ...Option) *Handler {
	h := &Handler{
		client:       ecs.NewFromConfig(cfg),
		errorHandler: &awserrors.DefaultErrorHandler{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) wait(ctx context.Context, logger ports.Logger) error {
	if h.limiter == nil {
		return nil
	}
	return h.limiter.Wait(ctx, logger)
}

// ListClusters returns every cluster in API listing order. Candidate
// names and identifiers are the short cluster names; the ARN is kept for
// tag lookups.
func (h *Handler) ListClusters(ctx context.Context, logger ports.Logger) ([]domain.Candidate, error) {
	var candidates []domain.Candidate

	paginator := ecs.NewListClustersPaginator(h.client, &ecs.ListClustersInput{})
	for paginator.HasMorePages() {
		if err := h.wait(ctx, logger); err != nil {
			return nil, h.errorHandler.Handle("ECS", "ListClusters", err, ctx)
		}
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle("ECS", "ListClusters", err, ctx)
		}
		for _, arn := range output.ClusterArns {
			name := arnResourceName(arn)
			candidates = append(candidates, domain.Candidate{Name: name, Identifier: name, ARN: arn})
		}
	}

	logger.Debugf(ctx, "Listed %d ECS clusters", len(candidates))
	return candidates, nil
}

func (h *Handler) ListServices(ctx context.Context, cluster string, logger ports.Logger) ([]domain.Candidate, error) {
	if cluster == "" {
		return nil, apperrors.New(apperrors.CodeInternal, "service listing requires a resolved cluster")
	}

	var candidates []domain.Candidate
	input := &ecs.ListServicesInput{Cluster: aws.String(cluster)}

	paginator := ecs.NewListServicesPaginator(h.client, input)
	for paginator.HasMorePages() {
		if err := h.wait(ctx, logger); err != nil {
			return nil, h.errorHandler.Handle("ECS", "ListServices", err, ctx)
		}
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle("ECS", "ListServices", err, ctx)
		}
		for _, arn := range output.ServiceArns {
			name := arnResourceName(arn)
			candidates = append(candidates, domain.Candidate{Name: name, Identifier: name, ARN: arn})
		}
	}

	logger.Debugf(ctx, "Listed %d ECS services in cluster %s", len(candidates), cluster)
	return candidates, nil
}

// ListRunningTasks lists the RUNNING tasks of a service. The full task
// ARN is the identifier the downstream dispatcher needs.
func (h *Handler) ListRunningTasks(ctx context.Context, cluster, service string, logger ports.Logger) ([]domain.Candidate, error) {
	if cluster == "" || service == "" {
		return nil, apperrors.New(apperrors.CodeInternal, "task listing requires a resolved cluster and service")
	}

	if err := h.wait(ctx, logger); err != nil {
		return nil, h.errorHandler.Handle("ECS", "ListTasks", err, ctx)
	}

	input := &ecs.ListTasksInput{
		Cluster:       aws.String(cluster),
		ServiceName:   aws.String(service),
		DesiredStatus: ecstypes.DesiredStatusRunning,
	}
	output, err := h.client.ListTasks(ctx, input)
	if err != nil {
		return nil, h.errorHandler.Handle("ECS", "ListTasks", err, ctx)
	}

	candidates := make([]domain.Candidate, 0, len(output.TaskArns))
	for _, arn := range output.TaskArns {
		candidates = append(candidates, domain.Candidate{Name: arnResourceName(arn), Identifier: arn, ARN: arn})
	}

	logger.Debugf(ctx, "Listed %d running tasks for service %s", len(candidates), service)
	return candidates, nil
}

// TaskContainers returns the ordered container names of one task.
func (h *Handler) TaskContainers(ctx context.Context, cluster, taskARN string, logger ports.Logger) ([]string, error) {
	if err := h.wait(ctx, logger); err != nil {
		return nil, h.errorHandler.Handle("ECS", "DescribeTasks", err, ctx)
	}

	input := &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   []string{taskARN},
	}
	output, err := h.client.DescribeTasks(ctx, input)
	if err != nil {
		return nil, h.errorHandler.Handle("ECS", "DescribeTasks", err, ctx)
	}
	if len(output.Tasks) == 0 {
		return nil, apperrors.New(apperrors.CodeResourceNotFound, "task not found: "+taskARN)
	}

	names := make([]string, 0, len(output.Tasks[0].Containers))
	for _, c := range output.Tasks[0].Containers {
		if c.Name != nil {
			names = append(names, *c.Name)
		}
	}

	logger.Debugf(ctx, "Task %s has %d containers", taskARN, len(names))
	return names, nil
}

// Tags fetches the tag set of a cluster or service by ARN.
func (h *Handler) Tags(ctx context.Context, resourceARN string, logger ports.Logger) (map[string]string, error) {
	if err := h.wait(ctx, logger); err != nil {
		return nil, h.errorHandler.Handle("ECS", "ListTagsForResource", err, ctx)
	}

	output, err := h.client.ListTagsForResource(ctx, &ecs.ListTagsForResourceInput{
		ResourceArn: aws.String(resourceARN),
	})
	if err != nil {
		return nil, h.errorHandler.Handle("ECS", "ListTagsForResource", err, ctx)
	}

	tags := make(map[string]string, len(output.Tags))
	for _, t := range output.Tags {
		if t.Key != nil && t.Value != nil {
			tags[*t.Key] = *t.Value
		}
	}
	return tags, nil
}

func arnResourceName(arn string) string {
	if idx := strings.LastIndex(arn, "/"); idx >= 0 {
		return arn[idx+1:]
	}
	return arn
}
