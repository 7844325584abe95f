package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/slipway-sh/slipway/pkg/slipway/application/service"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/command"
)

func NewSourceControlProvider(runner command.Runner) service.SourceControl {
	return &sourceControlProvider{
		runner: runner,
	}
}

type sourceControlProvider struct {
	runner command.Runner
}

func (provider sourceControlProvider) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	output, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    dir,
		Executable: "git",
		Args:       []string{"config", "--get", fmt.Sprintf("remote.%v.url", name)},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to read url of remote %v", name)
	}
	return strings.TrimSpace(output), nil
}

func (provider sourceControlProvider) AddRemote(ctx context.Context, dir, name, url string) error {
	_, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    dir,
		Executable: "git",
		Args:       []string{"remote", "add", name, url},
	})
	return errors.Wrapf(err, "failed to add remote %v", name)
}

func (provider sourceControlProvider) Push(ctx context.Context, dir, remote, branch string) error {
	_, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    dir,
		Executable: "git",
		Args:       []string{"push", remote, branch},
	})
	return errors.Wrapf(err, "failed to push %v to %v", branch, remote)
}

func (provider sourceControlProvider) Commit(ctx context.Context, dir, path, message string) error {
	_, err := provider.runner.Execute(ctx, command.Command{
		WorkDir:    dir,
		Executable: "git",
		Args:       []string{"add", path},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to stage %v", path)
	}
	_, err = provider.runner.Execute(ctx, command.Command{
		WorkDir:    dir,
		Executable: "git",
		Args:       []string{"commit", "-m", message},
	})
	return errors.Wrapf(err, "failed to commit %v", path)
}
