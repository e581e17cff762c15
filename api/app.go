package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/alovak/cardform/cardutils"
	"github.com/alovak/cardform/internal/config"
	"github.com/alovak/cardform/internal/expiry"
	"github.com/alovak/cardform/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// App is the main application, it wires the card helpers into an HTTP server
// and is responsible for starting and stopping it.
type App struct {
	srv    *http.Server
	wg     *sync.WaitGroup
	Addr   string
	logger *slog.Logger
	config *config.Config
}

func NewApp(logger *slog.Logger, cfg *config.Config) *App {
	logger = logger.With(slog.String("app", "cardform"))

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &App{
		wg:     &sync.WaitGroup{},
		logger: logger,
		config: cfg,
	}
}

func (a *App) Start() error {
	a.logger.Info("starting app...")

	schemes, err := a.config.Schemes()
	if err != nil {
		return fmt.Errorf("loading schemes: %w", err)
	}
	if a.config.SchemesFile != "" {
		a.logger.Info("scheme table loaded", slog.String("file", a.config.SchemesFile), slog.Int("schemes", schemes.Len()))
	}

	loc, err := a.config.Location()
	if err != nil {
		return fmt.Errorf("loading expiry location: %w", err)
	}
	expiry.SetDefaultExpiryLocation(loc)

	svc := NewService(cardutils.New(schemes), loc, []byte(a.config.FingerprintKey))

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(a.logger))

	api := NewAPI(svc)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler: router,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		a.logger.Info("http server started", slog.String("addr", a.Addr))

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}
	}()

	return nil
}

func (a *App) Shutdown() {
	a.logger.Info("shutting down app...")

	if a.srv != nil {
		if err := a.srv.Shutdown(context.Background()); err != nil {
			a.logger.Error("shutting down http server", "err", err)
		}
	}

	a.wg.Wait()

	a.logger.Info("app stopped")
}
