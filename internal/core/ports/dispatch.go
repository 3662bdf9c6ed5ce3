package ports

import (
	"context"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
)

// DispatchResult identifies the remote session opened for a command.
// The interactive session itself is handled outside this tool.
type DispatchResult struct {
	SessionID string
	StreamURL string
}

type CommandDispatcher interface {
	Dispatch(ctx context.Context, snapshot *domain.ResourceConfig, command string) (DispatchResult, error)
}
