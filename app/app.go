package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yichuanzhang/booktracker/config"
	"github.com/yichuanzhang/booktracker/internal/handler"
	"github.com/yichuanzhang/booktracker/internal/recommend"
	"github.com/yichuanzhang/booktracker/internal/repository"
	"github.com/yichuanzhang/booktracker/internal/server"
	"github.com/yichuanzhang/booktracker/internal/service"
	"github.com/yichuanzhang/booktracker/migrations"
	"github.com/yichuanzhang/booktracker/pkg/logger"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "booktracker")
	db, err := repository.NewDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}
	if err := repo.Seed(context.Background(), repository.PresetBooks()); err != nil {
		return fmt.Errorf("seed %v", err)
	}

	fetcher := recommend.NewService(cfg.Recommendations, log)
	svc := service.NewService(repo, fetcher, log)

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()
	svc.Start(runCtx)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	stop()
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
