package main

import (
	"ShoppingList/internal/config"
	"ShoppingList/internal/handlers"
	"ShoppingList/internal/middleware"
	"ShoppingList/internal/repo"
	"ShoppingList/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}

	os.Exit(serve(cfg, logger))
}

// serve запускает сервер и возвращает код выхода. Буфер логгера сбрасывается
// до возврата, чтобы ошибка запуска не потерялась при os.Exit.
func serve(cfg *config.Config, logger *zap.Logger) int {
	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("Server failed", "error", err)
		return 1
	}
	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.CloseDB(gormDB); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
			return
		}
		sugar.Infow("Database pool closed")
	}()

	listService := service.NewListService(repo.NewListRepository(gormDB), sugar)
	itemService := service.NewItemService(repo.NewItemRepository(gormDB), sugar)

	h := handlers.NewHandler(listService, itemService, sugar)

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sugar.Infow("Starting server",
		"addr", srv.Addr,
		"dialect", gormDB.Dialector.Name(),
		"debug", cfg.Debug,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
