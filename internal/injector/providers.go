package injector

import (
	"github.com/zeusync/nestcodec/internal/config"
	"github.com/zeusync/nestcodec/internal/observability/log"
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.Level())
}
