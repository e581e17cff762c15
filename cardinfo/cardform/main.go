package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/cardform/api"
	"github.com/alovak/cardform/internal/config"
	"golang.org/x/exp/slog"
)

var flagEnv = flag.String("env", ".env", "optional .env file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*flagEnv)
	if err != nil {
		fail("%v", err)
	}
	lvl, err := cfg.Level()
	if err != nil {
		fail("%v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	app := api.NewApp(logger, cfg)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
