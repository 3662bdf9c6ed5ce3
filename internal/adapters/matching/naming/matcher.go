package naming

import (
	"fmt"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

// Config derives the per-kind default pattern sets from the project and
// environment names. Extra patterns from configuration are prepended, so
// operator-supplied templates outrank the built-in conventions.
type Config struct {
	ProjectName string
	Environment string
	Extra       map[domain.ResourceKind][]string
}

type Matcher struct {
	patterns map[domain.ResourceKind][]Pattern
}

func NewMatcher(cfg Config) (*Matcher, error) {
	if cfg.ProjectName == "" {
		return nil, errors.New(errors.CodeConfigValidation, "naming matcher requires a non-empty project name")
	}
	if cfg.Environment == "" {
		return nil, errors.New(errors.CodeConfigValidation, "naming matcher requires a non-empty environment name")
	}

	p, e := cfg.ProjectName, cfg.Environment
	defaults := map[domain.ResourceKind][]string{
		// Ordered most specific (project+environment qualified) to most
		// generic (bare kind suffix). Both Terraform and CDK conventions
		// are covered; CDK appends -cdk- to its logical names.
		domain.KindCluster: {
			fmt.Sprintf("%s-cluster", p),
			fmt.Sprintf("%s-%s-cluster", p, e),
			fmt.Sprintf("%s-cdk-cluster", p),
			"*-cdk-cluster",
			"*-cluster",
		},
		domain.KindService: {
			fmt.Sprintf("%s-service", p),
			fmt.Sprintf("%s-%s-service", p, e),
			fmt.Sprintf("%s-cdk-service", p),
			"*-cdk-service",
			"*-service",
		},
		domain.KindInstance: {
			fmt.Sprintf("%s-proxy", p),
			fmt.Sprintf("%s-%s-proxy", p, e),
			"*-proxy",
		},
		domain.KindLoadBalancer: {
			fmt.Sprintf("%s-nlb", p),
			fmt.Sprintf("%s-%s-nlb", p, e),
			"*-nlb",
		},
	}

	patterns := make(map[domain.ResourceKind][]Pattern, len(defaults))
	for kind, raw := range defaults {
		combined := append(append([]string{}, cfg.Extra[kind]...), raw...)
		patterns[kind] = ParsePatterns(combined)
	}

	return &Matcher{patterns: patterns}, nil
}

func (m *Matcher) PatternsFor(kind domain.ResourceKind) []Pattern {
	return m.patterns[kind]
}

// FirstMatch tries patterns in priority order across the whole candidate
// set: the first candidate matching the first pattern that has any match
// wins. Candidates keep API listing order.
func (m *Matcher) FirstMatch(kind domain.ResourceKind, candidates []domain.Candidate) (domain.Candidate, bool) {
	for _, pattern := range m.patterns[kind] {
		for _, c := range candidates {
			if pattern.Matches(c.Name) {
				return c, true
			}
		}
	}
	return domain.Candidate{}, false
}
