package ports

import (
	"context"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
)

type Resolver interface {
	Resolve(ctx context.Context) (*domain.ResourceConfig, error)
}
