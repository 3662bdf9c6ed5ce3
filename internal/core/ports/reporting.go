package ports

import (
	"context"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, snapshot *domain.ResourceConfig) error
}
