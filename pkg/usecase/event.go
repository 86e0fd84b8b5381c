package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeql-fly/pkg/domain/model"
	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
	"github.com/secmon-lab/codeql-fly/pkg/utils/logging"
)

// HandleEvent runs the handler of a verified webhook event to completion
func (x *UseCase) HandleEvent(ctx context.Context, ev model.Event) error {
	if ev == nil {
		return goerr.Wrap(types.ErrValidationFailed, "event is nil")
	}
	if err := ev.Validate(); err != nil {
		return err
	}

	ctx = logging.WithAttrs(ctx, slog.String("event", ev.EventName()))
	logging.From(ctx).Info("handling event")

	switch v := ev.(type) {
	case model.InstallationCreated:
		return x.handleInstallationCreated(ctx, v)
	case model.InstallationDeleted:
		return x.handleInstallationDeleted(ctx, v)
	case model.InstallationReposAdded:
		return x.handleInstallationReposAdded(ctx, v)
	case model.InstallationReposRemoved:
		return x.handleInstallationReposRemoved(ctx, v)
	case model.ReleasePublished:
		return x.handleReleasePublished(ctx, v)
	case model.WorkflowRunCompleted:
		return x.handleWorkflowRunCompleted(ctx, v)
	default:
		return goerr.Wrap(types.ErrValidationFailed, "unsupported event", goerr.V("event", ev.EventName()))
	}
}
