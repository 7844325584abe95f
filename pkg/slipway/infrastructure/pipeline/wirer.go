package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/slipway-sh/slipway/pkg/slipway/application/service"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/command"
)

func NewPipelineWirer(runner command.Runner) service.PipelineWirer {
	return &wirer{
		runner: runner,
	}
}

type wirer struct {
	runner command.Runner
}

// Link assumes both apps already exist; no existence check is made.
func (w wirer) Link(ctx context.Context, upstream, downstream string) error {
	_, err := w.runner.Execute(ctx, command.Command{
		Executable: "heroku",
		Args:       []string{"pipeline:add", downstream, "-a", upstream},
	})
	return errors.Wrapf(err, "failed to link %v to %v", upstream, downstream)
}
