package service

import (
	"context"
	"fmt"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

// Tag keys shared by the Terraform and CDK stacks.
const (
	TagKeyProject     = "Project"
	TagKeyEnvironment = "Environment"
)

// TagSearch finds candidates of a kind whose tag set carries the exact
// project and environment values. Matching is exact equality on both
// keys; substring or case-insensitive matches do not count.
type TagSearch struct {
	api         ports.CloudAPI
	project     string
	environment string
	logger      ports.Logger
}

func NewTagSearch(api ports.CloudAPI, project, environment string, logger ports.Logger) *TagSearch {
	return &TagSearch{
		api:         api,
		project:     project,
		environment: environment,
		logger:      logger,
	}
}

// FindByTags returns every matching candidate in API listing order; the
// pipeline uses the first. A tag-fetch failure for one candidate is
// logged and treated as a non-match. A failure of the listing itself
// exhausts the whole strategy: the error is returned and not retried.
func (t *TagSearch) FindByTags(ctx context.Context, kind domain.ResourceKind, scope domain.Scope) ([]domain.Candidate, error) {
	candidates, err := t.api.ListCandidates(ctx, kind, scope)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeListingFailure,
			fmt.Sprintf("listing %s candidates for tag search failed", kind))
	}

	var matches []domain.Candidate
	for _, c := range candidates {
		tags, err := t.api.ResourceTags(ctx, kind, c)
		if err != nil {
			t.logger.Warnf(ctx, "Tag fetch for %s %q failed, treating as non-match: %v", kind, c.Name, err)
			continue
		}
		if tags[TagKeyProject] == t.project && tags[TagKeyEnvironment] == t.environment {
			matches = append(matches, c)
		}
	}

	t.logger.Debugf(ctx, "Tag search for %s found %d of %d candidates matching Project=%s Environment=%s",
		kind, len(matches), len(candidates), t.project, t.environment)
	return matches, nil
}
