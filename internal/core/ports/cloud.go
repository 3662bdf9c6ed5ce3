package ports

import (
	"context"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
)

// CloudAPI is the typed cloud capability the resolution engine consumes.
// Implementations must preserve API listing order: it is the only
// ordering the pipeline uses.
type CloudAPI interface {
	// ListCandidates lists resources of one kind. Scope carries the
	// already-resolved cluster (for services and tasks) and service
	// (for tasks); it is ignored for unscoped kinds.
	ListCandidates(ctx context.Context, kind domain.ResourceKind, scope domain.Scope) ([]domain.Candidate, error)

	// ResourceTags fetches the tag set of one candidate.
	ResourceTags(ctx context.Context, kind domain.ResourceKind, candidate domain.Candidate) (map[string]string, error)

	// TaskContainers returns the ordered container names of a task.
	TaskContainers(ctx context.Context, cluster string, taskARN string) ([]string, error)
}
