//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/nestcodec/internal/app"
	"github.com/zeusync/nestcodec/internal/config"
	"github.com/zeusync/nestcodec/internal/observability/log"
)

func InitializeRunner(cfg *config.Config) *app.Runner {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		app.NewRunner,
	)
	return nil
}
