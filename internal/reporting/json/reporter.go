package json

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

const ReporterTypeJSON = "json"

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct{}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}, nil
}

type jsonReport struct {
	Project       string             `json:"project"`
	Environment   string             `json:"environment"`
	DetectionMode string             `json:"detection_mode"`
	Region        string             `json:"region,omitempty"`
	Resources     []jsonResourceItem `json:"resources"`
}

type jsonResourceItem struct {
	Kind       string `json:"kind"`
	Identifier string `json:"identifier"`
	Strategy   string `json:"strategy"`
}

func (r *Reporter) Report(ctx context.Context, snapshot *domain.ResourceConfig) error {
	if snapshot == nil {
		return errors.New(errors.CodeInternal, "nil snapshot passed to JSON reporter")
	}

	report := jsonReport{
		Project:       snapshot.ProjectName,
		Environment:   snapshot.Environment,
		DetectionMode: string(snapshot.DetectionMode),
		Region:        snapshot.Region,
	}

	kinds := append(append([]domain.ResourceKind{}, domain.ChainKinds...), domain.OptionalKinds...)
	for _, kind := range kinds {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "JSON report generation cancelled.")
			return ctx.Err()
		}
		res, _ := snapshot.ByKind(kind)
		report.Resources = append(report.Resources, jsonResourceItem{
			Kind:       string(res.Kind),
			Identifier: res.Identifier,
			Strategy:   string(res.Strategy),
		})
	}

	encoder := jsonAPI.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return errors.Wrap(err, errors.CodeInternal, "failed to encode JSON report")
	}

	return nil
}
