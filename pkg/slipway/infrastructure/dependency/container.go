package dependency

import (
	"context"
	"errors"
	"os"

	"github.com/slipway-sh/slipway/pkg/slipway/application/model"
	"github.com/slipway-sh/slipway/pkg/slipway/application/service"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/circleci"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/command"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/pipeline"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/platform"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/provider"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/reporter"
	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"
)

var dependencyContainer = struct{}{}

type Container interface {
	Bootstrap() service.Bootstrap
}

func NewDependencyContainer(
	logger applogger.Logger,
	config model.Config,
	silentMode bool,
) Container {
	runner := command.NewCommandRunner(logger, silentMode)
	sourceControl := provider.NewSourceControlProvider(runner)
	gateway := platform.NewClient(config.APIURL, config.GitHost, config.Token)
	bootstrap := service.NewBootstrapService(
		config,
		logger,
		reporter.NewConsoleReporter(os.Stdout),
		sourceControl,
		gateway,
		pipeline.NewPipelineWirer(runner),
		circleci.NewConfigGenerator(config.Branch, gateway, sourceControl),
	)

	return &container{
		bootstrap: bootstrap,
	}
}

type container struct {
	bootstrap service.Bootstrap
}

func (c *container) Bootstrap() service.Bootstrap {
	return c.bootstrap
}

func ContainerFromContext(ctx context.Context) (Container, error) {
	v := ctx.Value(dependencyContainer)
	if c, ok := v.(Container); ok {
		return c, nil
	}
	return nil, errors.New("dependency container not found")
}

func ContainerToContext(ctx context.Context, c Container) context.Context {
	return context.WithValue(ctx, dependencyContainer, c)
}
