package main

import (
	"fmt"
	"os"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/di"
	"minigrep/internal/settings"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	var (
		runner *app.Runner
		log    *zap.Logger
	)
	fxApp := fx.New(
		di.CLI,
		fx.Supply(settings.FromEnv(os.LookupEnv)),
		fx.Populate(&runner, &log),
	)
	if err := fxApp.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to start:", err)
		os.Exit(1)
	}

	// os.Args[0] - имя программы, в разбор не идёт
	err := runner.Run(os.Args[1:], config.OSEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, app.Describe(err))
	}
	_ = log.Sync()
	os.Exit(app.ExitCode(err))
}
