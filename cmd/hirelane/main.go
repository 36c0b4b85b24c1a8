package main

import (
	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/config"
	"github.com/hirelane/hirelane/internal/ident"
	"github.com/hirelane/hirelane/internal/logger"
	"github.com/hirelane/hirelane/internal/metrics"
	"github.com/hirelane/hirelane/internal/seed"
	"github.com/hirelane/hirelane/internal/server"
	"github.com/hirelane/hirelane/internal/store"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		clock.Module,
		ident.Module,
		store.Module,
		metrics.Module,

		// Demo workspace fixtures, then the HTTP surface over the managers.
		seed.Module,
		server.Module,
	)
	app.Run()
}
