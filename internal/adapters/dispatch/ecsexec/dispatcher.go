package ecsexec

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"

	awserrors "github.com/t-tkm/rcon-resolver/internal/adapters/platform/aws/errors"
	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	apperrors "github.com/t-tkm/rcon-resolver/internal/errors"
)

// ECSExecClient is the SDK subset the dispatcher calls.
type ECSExecClient interface {
	ExecuteCommand(ctx context.Context, params *ecs.ExecuteCommandInput, optFns ...func(*ecs.Options)) (*ecs.ExecuteCommandOutput, error)
}

// Dispatcher runs one administrative command inside the resolved
// container via ECS Exec. It only opens the session; driving the
// session stream is left to the session-manager plugin.
type Dispatcher struct {
	client ECSExecClient
	logger ports.Logger
}

type Option func(*Dispatcher)

func WithClient(c ECSExecClient) Option {
	return func(d *Dispatcher) { d.client = c }
}

func NewDispatcher(cfg aws.Config, logger ports.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		client: ecs.NewFromConfig(cfg),
		logger: logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, snapshot *domain.ResourceConfig, command string) (ports.DispatchResult, error) {
	if snapshot == nil {
		return ports.DispatchResult{}, apperrors.New(apperrors.CodeDispatchError, "cannot dispatch without a resolved snapshot")
	}
	if command == "" {
		return ports.DispatchResult{}, apperrors.New(apperrors.CodeDispatchError, "command must not be empty")
	}

	// rcon-cli ships inside the server container; the command runs
	// through it against the local RCON port.
	remote := fmt.Sprintf("rcon-cli %s", command)

	d.logger.Infof(ctx, "Dispatching command to container %s of task %s in cluster %s",
		snapshot.Container.Identifier, snapshot.Task.Identifier, snapshot.Cluster.Identifier)

	output, err := d.client.ExecuteCommand(ctx, &ecs.ExecuteCommandInput{
		Cluster:     aws.String(snapshot.Cluster.Identifier),
		Task:        aws.String(snapshot.Task.Identifier),
		Container:   aws.String(snapshot.Container.Identifier),
		Command:     aws.String(remote),
		Interactive: true,
	})
	if err != nil {
		return ports.DispatchResult{}, awserrors.HandleAWSError("ECS", "ExecuteCommand", err, ctx)
	}
	if output.Session == nil {
		return ports.DispatchResult{}, apperrors.New(apperrors.CodeDispatchError, "ExecuteCommand returned no session")
	}

	return ports.DispatchResult{
		SessionID: aws.ToString(output.Session.SessionId),
		StreamURL: aws.ToString(output.Session.StreamUrl),
	}, nil
}
