package service

import (
	"context"
	"fmt"
	"time"

	"github.com/slipway-sh/slipway/pkg/slipway/application/model"
	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"
)

const originRemote = "origin"

type SourceControl interface {
	RemoteURL(ctx context.Context, dir, name string) (string, error)
	AddRemote(ctx context.Context, dir, name, url string) error
	Push(ctx context.Context, dir, remote, branch string) error
	Commit(ctx context.Context, dir, path, message string) error
}

type PlatformGateway interface {
	CreateApp(ctx context.Context, name string) error
	AddCollaborator(ctx context.Context, app, user string) error
	// DeleteApp is a teardown helper, never called by the setup workflow.
	DeleteApp(ctx context.Context, name string) error
	GitURL(app string) string
}

type PipelineWirer interface {
	Link(ctx context.Context, upstream, downstream string) error
}

type ConfigGenerator interface {
	Generate(ctx context.Context, dir string, pipeline model.Pipeline) error
}

type Reporter interface {
	Step(label string)
	Warn(label string)
	Fail(label string, err error)
}

type Bootstrap interface {
	Setup(ctx context.Context, dir string) error
}

func NewBootstrapService(
	config model.Config,
	logger applogger.Logger,
	reporter Reporter,
	sourceControl SourceControl,
	gateway PlatformGateway,
	wirer PipelineWirer,
	generator ConfigGenerator,
) Bootstrap {
	return &bootstrap{
		config:        config,
		logger:        logger,
		reporter:      reporter,
		sourceControl: sourceControl,
		gateway:       gateway,
		wirer:         wirer,
		generator:     generator,
	}
}

type bootstrap struct {
	config model.Config

	logger        applogger.Logger
	reporter      Reporter
	sourceControl SourceControl
	gateway       PlatformGateway
	wirer         PipelineWirer
	generator     ConfigGenerator
}

// Setup is cumulative: the first failing step aborts the run and leaves
// everything created so far in place.
func (service bootstrap) Setup(ctx context.Context, dir string) error {
	start := time.Now()
	defer func() {
		service.logger.Info(fmt.Sprintf("done in %v", time.Since(start).String()))
	}()

	var base string
	err := service.run("Resolving application name", func() error {
		var resolveErr error
		base, resolveErr = service.resolveBaseName(ctx, dir)
		return resolveErr
	})
	if err != nil {
		return err
	}

	pipeline := model.NewPipeline(service.config.AppPrefix, base)
	for _, app := range pipeline.Apps {
		if err = service.provision(ctx, dir, app); err != nil {
			return err
		}
	}
	for _, link := range pipeline.Links() {
		l := link
		err = service.run(fmt.Sprintf("Linking pipeline %v -> %v", l.Upstream.Name, l.Downstream.Name), func() error {
			return service.wirer.Link(ctx, l.Upstream.Name, l.Downstream.Name)
		})
		if err != nil {
			return err
		}
	}
	err = service.run("Writing CI configuration", func() error {
		return service.generator.Generate(ctx, dir, pipeline)
	})
	if err != nil {
		return err
	}
	return service.run(fmt.Sprintf("Pushing %v to %v", service.config.Branch, originRemote), func() error {
		return service.sourceControl.Push(ctx, dir, originRemote, service.config.Branch)
	})
}

func (service bootstrap) provision(ctx context.Context, dir string, app model.App) error {
	service.logger.Info(fmt.Sprintf("provisioning %v environment \"%v\"...", app.Tier.ID, app.Name))

	err := service.run(fmt.Sprintf("Creating app %v", app.Name), func() error {
		return service.gateway.CreateApp(ctx, app.Name)
	})
	if err != nil {
		return err
	}
	err = service.run(fmt.Sprintf("Adding git remote %v", app.Tier.Remote), func() error {
		return service.sourceControl.AddRemote(ctx, dir, app.Tier.Remote, service.gateway.GitURL(app.Name))
	})
	if err != nil {
		return err
	}
	if err = service.addCollaborators(ctx, app); err != nil {
		return err
	}
	return service.run(fmt.Sprintf("Pushing %v to %v", service.config.Branch, app.Tier.Remote), func() error {
		return service.sourceControl.Push(ctx, dir, app.Tier.Remote, service.config.Branch)
	})
}

func (service bootstrap) addCollaborators(ctx context.Context, app model.App) error {
	for _, user := range service.config.Collaborators {
		label := fmt.Sprintf("Adding collaborator %v to %v", user, app.Name)
		if service.config.StrictCollaborators {
			if err := service.run(label, func() error {
				return service.gateway.AddCollaborator(ctx, app.Name, user)
			}); err != nil {
				return err
			}
			continue
		}
		service.reporter.Step(label)
		if err := service.gateway.AddCollaborator(ctx, app.Name, user); err != nil {
			service.reporter.Warn(fmt.Sprintf("failed to add collaborator %v to %v: %v", user, app.Name, err))
		}
	}
	return nil
}

func (service bootstrap) resolveBaseName(ctx context.Context, dir string) (string, error) {
	remoteURL, err := service.sourceControl.RemoteURL(ctx, dir, originRemote)
	if err != nil {
		return "", err
	}
	name := model.BaseName(remoteURL)
	if name == "" {
		return "", fmt.Errorf("can not derive an application name from remote %q", remoteURL)
	}
	return name, nil
}

func (service bootstrap) run(label string, f func() error) error {
	service.reporter.Step(label)
	start := time.Now()
	if err := f(); err != nil {
		service.reporter.Fail(label, err)
		return err
	}
	service.logger.Debug(fmt.Sprintf("%v: done in %v", label, time.Since(start).String()))
	return nil
}
