package main

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/swapneel/go-hnsw/internal/telemetry"
	"github.com/swapneel/go-hnsw/pkg/hnsw"
)

func newLogger() (*zap.Logger, error) {
	cfg := telemetry.DefaultConfig("hnsw-cli")
	cfg.Level = viper.GetString("log-level")
	cfg.Format = viper.GetString("log-format")
	return telemetry.NewLogger(cfg)
}

func indexOptions(logger *zap.Logger) hnsw.Options {
	return hnsw.Options{
		M:              viper.GetInt("m"),
		EfConstruction: viper.GetInt("ef-construction"),
		EfSearch:       viper.GetInt("ef-search"),
		MaxLayer:       viper.GetInt("max-layer"),
		Logger:         logger,
	}
}
