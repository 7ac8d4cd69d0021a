package main

import (
	"ZamCare/internal/bootstrap"
	"ZamCare/pkg/routes"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		routes.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)
	app.Run()
}
