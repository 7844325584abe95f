package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/config"
	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/dependency"
	"github.com/tss-calculator/go-lib/pkg/infrastructure/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()
	ctx = listenOSKillSignalsContext(ctx)
	mainLogger := logger.NewTextLogger()

	cfg, err := config.Load(configPath())
	if err != nil {
		mainLogger.FatalError(err, "failed load config")
	}
	if err = cfg.Validate(); err != nil {
		mainLogger.FatalError(err, "invalid config")
	}
	container := dependency.NewDependencyContainer(mainLogger, cfg, os.Getenv("SILENT") != "")
	ctx = dependency.ContainerToContext(ctx, container)

	err = newApp().RunContext(ctx, os.Args)
	if err != nil {
		mainLogger.FatalError(err, "failed execute command "+strings.Join(os.Args, " "))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "slipway",
		Usage: "bootstrap dev, stage and prod apps with a promotion pipeline",
		Commands: cli.Commands{
			&cli.Command{
				Name:      "setup",
				Usage:     "provision the pipeline for the repository at path (default \".\")",
				ArgsUsage: "[path-to-repository]",
				Action: func(c *cli.Context) error {
					return setup(c.Context, c.Args().First())
				},
			},
		},
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.ErrWriter, "usage: %v setup [path-to-repository]\n", c.App.Name)
			if c.Args().Present() {
				return fmt.Errorf("unknown command %q", c.Args().First())
			}
			return errors.New("no command given")
		},
	}
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sliprc")
}

func listenOSKillSignalsContext(ctx context.Context) context.Context {
	var cancelFunc context.CancelFunc
	ctx, cancelFunc = context.WithCancel(ctx)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-ch:
			cancelFunc()
		case <-ctx.Done():
			return
		}
	}()
	return ctx
}
