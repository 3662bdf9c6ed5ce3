package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/t-tkm/rcon-resolver/internal/core/domain"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, _ := f.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, snapshot *domain.ResourceConfig) error {
	if snapshot == nil {
		return errors.New(errors.CodeInternal, "nil snapshot passed to text reporter")
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(tw, "Resource Resolution Report")
	fmt.Fprintln(tw, "==========================")
	fmt.Fprintf(tw, "Project:\t%s\n", snapshot.ProjectName)
	fmt.Fprintf(tw, "Environment:\t%s\n", snapshot.Environment)
	fmt.Fprintf(tw, "Detection mode:\t%s\n", snapshot.DetectionMode)
	if snapshot.Region != "" {
		fmt.Fprintf(tw, "Region:\t%s\n", snapshot.Region)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Kind\tIdentifier\tStrategy")
	fmt.Fprintln(tw, "----\t----------\t--------")

	kinds := append(append([]domain.ResourceKind{}, domain.ChainKinds...), domain.OptionalKinds...)
	for _, kind := range kinds {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		res, _ := snapshot.ByKind(kind)

		strategyStr := green(string(res.Strategy))
		identifier := res.Identifier
		switch res.Strategy {
		case domain.StrategySentinel:
			strategyStr = yellow(string(res.Strategy))
			identifier = yellow(identifier)
		case domain.StrategyFirstService, domain.StrategyFirstContainer:
			strategyStr = cyan(string(res.Strategy))
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", kind, identifier, strategyStr)
	}

	return nil
}
