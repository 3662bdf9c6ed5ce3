package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	awserrors "github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/errors"
	"github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/shared"
	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
)

// Handler lists running EC2 instances (the optional host kind) and their
// tags. Stopped instances are never candidates.
type Handler struct {
	client       shared.EC2ClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
}

type Option func(*Handler)

func WithClient(c shared.EC2ClientInterface) Option {
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
		client:       ec2.NewFromConfig(cfg),
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

// ListRunningInstances returns running instances in API listing order.
// The candidate name is the instance's Name tag, which is what the
// naming patterns match against.
func (h *Handler) ListRunningInstances(ctx context.Context, logger ports.Logger) ([]domain.Candidate, error) {
	var candidates []domain.Candidate

	input := &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("instance-state-name"), Values: []string{"running"}},
		},
	}

	paginator := ec2.NewDescribeInstancesPaginator(h.client, input)
	for paginator.HasMorePages() {
		if err := h.wait(ctx, logger); err != nil {
			return nil, h.errorHandler.Handle("EC2", "DescribeInstances", err, ctx)
		}
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, h.errorHandler.Handle("EC2", "DescribeInstances", err, ctx)
		}
		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				if instance.InstanceId == nil {
					continue
				}
				candidates = append(candidates, domain.Candidate{
					Name:       nameTag(instance.Tags),
					Identifier: *instance.InstanceId,
				})
			}
		}
	}

	logger.Debugf(ctx, "Listed %d running EC2 instances", len(candidates))
	return candidates, nil
}

// Tags fetches the tag set of one instance by id.
func (h *Handler) Tags(ctx context.Context, instanceID string, logger ports.Logger) (map[string]string, error) {
	if err := h.wait(ctx, logger); err != nil {
		return nil, h.errorHandler.Handle("EC2", "DescribeTags", err, ctx)
	}

	input := &ec2.DescribeTagsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("resource-id"), Values: []string{instanceID}},
		},
	}
	output, err := h.client.DescribeTags(ctx, input)
	if err != nil {
		return nil, h.errorHandler.Handle("EC2", "DescribeTags", err, ctx)
	}

	tags := make(map[string]string, len(output.Tags))
	for _, t := range output.Tags {
		if t.Key != nil && t.Value != nil {
			tags[*t.Key] = *t.Value
		}
	}
	return tags, nil
}

func nameTag(tags []ec2types.Tag) string {
	for _, t := range tags {
		if t.Key != nil && *t.Key == "Name" && t.Value != nil {
			return *t.Value
		}
	}
	return ""
}
