package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"
)

type Command struct {
	WorkDir    string
	Executable string
	Args       []string
}

type Runner interface {
	Execute(ctx context.Context, command Command) (string, error)
}

func NewCommandRunner(logger applogger.Logger, silentMode bool) Runner {
	return &runner{
		logger: logger,
		silent: silentMode,
	}
}

type runner struct {
	logger applogger.Logger
	silent bool
}

func (r runner) Execute(ctx context.Context, command Command) (string, error) {
	if command.Executable == "" {
		return "", errors.New("command executable can not be empty")
	}
	// nolint:gosec
	cmd := exec.CommandContext(ctx, command.Executable, command.Args...)
	cmd.Dir = command.WorkDir
	if r.silent {
		r.logger.Debug(cmd.String())
	} else {
		r.logger.Info(cmd.String())
	}
	result, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return string(result), fmt.Errorf("%v: %s", err, bytes.TrimSpace(exitErr.Stderr))
		}
		return string(result), err
	}
	return string(result), nil
}
