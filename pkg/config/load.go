// Package config loads typed configuration with cleanenv.
package config

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"moviecards/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgFailedLoadConfiguration = "failed to load configuration"

	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
	attrSource  = "source"

	sourceFile = "file"
	sourceEnv  = "env"
)

// Load fills a T from path when it is set, otherwise from the process
// environment. env-default tags apply in both cases.
func Load[T any](ctx context.Context, serviceName, path string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName))

	var (
		cfg T
		err error
	)

	if path != "" {
		log.Info(ctx, msgLoadingConfiguration, zap.String(attrSource, sourceFile), zap.String(attrPath, path))
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		log.Info(ctx, msgLoadingConfiguration, zap.String(attrSource, sourceEnv))
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, msgFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
