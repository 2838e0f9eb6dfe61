// Command taskchi serves the demo in-memory task list over HTTP using the
// chi router. The same API is served by cmd/taskmux on gorilla/mux.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/erraggy/casetools/internal/taskstore"
)

type config struct {
	Addr string `env:"TASKCHI_ADDR" envDefault:":8080"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: parsing config: %v\n", err)
		os.Exit(1)
	}

	srv := newServer(taskstore.New())

	slog.Info("taskchi listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.routes()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
