package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/queue"
	"github.com/Beka01247/sizzlesync-pos/internal/service"
	"github.com/Beka01247/sizzlesync-pos/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

// archiveStore is the connection behind the archive repository.
type archiveStore interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type application struct {
	config         config
	logger         *zap.SugaredLogger
	storage        archiveStore
	broker         queue.Broker
	archiveService *service.ArchiveService
	archiveWorker  *worker.OrderArchiveWorker
	location       *time.Location
	now            func() time.Time
}

type config struct {
	addr     string
	env      string
	backend  string
	mongo    mongoConfig
	postgres postgresConfig
	rabbitMQ rabbitMQConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type postgresConfig struct {
	URL      string
	MaxConns int
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/orders", app.listOrdersHandler)
		r.Get("/orders/{session_id}/{order_number}", app.getOrderHandler)

		r.Get("/sales/summary", app.salesSummaryHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	if app.archiveWorker != nil {
		if err := app.archiveWorker.Start(); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.archiveWorker != nil {
			app.archiveWorker.Stop()
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing archive storage", "backend", app.config.backend, "error", err)
			} else {
				app.logger.Infow("archive storage closed gracefully", "backend", app.config.backend)
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
