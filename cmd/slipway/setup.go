package main

import (
	"context"

	"github.com/slipway-sh/slipway/pkg/slipway/infrastructure/dependency"
)

func setup(ctx context.Context, dir string) error {
	if dir == "" {
		dir = "."
	}
	dependencyContainer, err := dependency.ContainerFromContext(ctx)
	if err != nil {
		return err
	}
	return dependencyContainer.Bootstrap().Setup(ctx, dir)
}
