package app

import (
	"context"

	"github.com/t-tkm/rcon-resolver/internal/config"
	"github.com/t-tkm/rcon-resolver/internal/core/ports"
	"github.com/t-tkm/rcon-resolver/internal/errors"
)

// Application glues the resolution pipeline to a reporter and an
// optional command dispatcher. It owns no state beyond its wiring.
type Application struct {
	Config     *config.Config
	Resolver   ports.Resolver
	Reporter   ports.Reporter
	Dispatcher ports.CommandDispatcher
	Logger     ports.Logger
}

// Run resolves the deployed resources and reports the snapshot.
func (a *Application) Run(ctx context.Context) error {
	snapshot, err := a.Resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	return a.Reporter.Report(ctx, snapshot)
}

// Exec resolves the deployed resources and dispatches one command into
// the resolved container.
func (a *Application) Exec(ctx context.Context, command string) error {
	if a.Dispatcher == nil {
		return errors.New(errors.CodeInternal, "no command dispatcher configured")
	}

	snapshot, err := a.Resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	result, err := a.Dispatcher.Dispatch(ctx, snapshot, command)
	if err != nil {
		return err
	}

	a.Logger.Infof(ctx, "Command session opened (session_id=%s)", result.SessionID)
	if result.StreamURL != "" {
		a.Logger.Debugf(ctx, "Session stream URL: %s", result.StreamURL)
	}
	return nil
}
