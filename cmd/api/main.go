package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sanzh-11/Server/internal/repository"
	"github.com/Sanzh-11/Server/internal/service"
	transport "github.com/Sanzh-11/Server/internal/transport/http"
	"github.com/Sanzh-11/Server/pkg/config"
	"github.com/Sanzh-11/Server/pkg/db"
	"github.com/Sanzh-11/Server/pkg/mq"
	"github.com/Sanzh-11/Server/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	if cfg.OtelEnabled {
		shutdown := obs.InitTracer("booking-api")
		defer func() { _ = shutdown(context.Background()) }()
	}

	// DB
	gdb := db.Open(cfg.DatabaseDSN)
	repo := repository.NewBookingRepo(gdb)
	must(0, repo.Migrate())

	must(0, os.MkdirAll(cfg.UploadDir, 0o755))

	// Publisher for booking.* events; skipped when RABBIT_URL is unset
	var pub *mq.Publisher
	if cfg.RabbitURL != "" {
		pub = must(mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange))
		defer pub.Close()
	}

	svc := service.NewBookingSvc(repo, pub)

	r := gin.Default()
	transport.NewServer(svc, cfg.UploadDir, cfg.PublicBaseURL).Register(r)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Println("[api] stopped")
}
