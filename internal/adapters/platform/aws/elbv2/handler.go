package elbv2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"

	awserrors "github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/errors"
	"github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/shared"
	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	apperrors "github.com/t-tkm/rcon-resolver/internal/errors"
)

// Handler lists v2 load balancers and their tags. The snapshot
// identifier for this kind is the DNS name, not the LB name.
type Handler struct {
	client       shared.ELBClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
}

type Option func(*Handler)

func WithClient(c shared.ELBClientInterface) Option {
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
		client:       elbv2.NewFromConfig(cfg),
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

func (h *Handler) ListLoadBalancers(ctx context.Context, logger ports.Logger) ([]domain.Candidate, error) {
	var candidates []domain.Candidate

	paginator := elbv2.NewDescribeLoadBalancersPaginator(h.client, &elbv2.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		if err := h.wait(ctx, logger); err != nil {
			return nil, h.errorHandler.Handle("ELBv2", "DescribeLoadBalancers", err, ctx)
		}
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle("ELBv2", "DescribeLoadBalancers", err, ctx)
		}
		for _, lb := range output.LoadBalancers {
			if lb.LoadBalancerArn == nil || lb.DNSName == nil {
				continue
			}
			candidates = append(candidates, domain.Candidate{
				Name:       aws.ToString(lb.LoadBalancerName),
				Identifier: *lb.DNSName,
				ARN:        *lb.LoadBalancerArn,
			})
		}
	}

	logger.Debugf(ctx, "Listed %d load balancers", len(candidates))
	return candidates, nil
}

// Tags fetches the tag set of one load balancer by ARN.
func (h *Handler) Tags(ctx context.Context, resourceARN string, logger ports.Logger) (map[string]string, error) {
	if err := h.wait(ctx, logger); err != nil {
		return nil, h.errorHandler.Handle("ELBv2", "DescribeTags", err, ctx)
	}

	output, err := h.client.DescribeTags(ctx, &elbv2.DescribeTagsInput{
		ResourceArns: []string{resourceARN},
	})
	if err != nil {
		return nil, h.errorHandler.Handle("ELBv2", "DescribeTags", err, ctx)
	}
	if len(output.TagDescriptions) == 0 {
		return nil, apperrors.New(apperrors.CodeResourceNotFound, "no tag description returned for "+resourceARN)
	}

	tags := make(map[string]string, len(output.TagDescriptions[0].Tags))
	for _, t := range output.TagDescriptions[0].Tags {
		if t.Key != nil && t.Value != nil {
			tags[*t.Key] = *t.Value
		}
	}
	return tags, nil
}
