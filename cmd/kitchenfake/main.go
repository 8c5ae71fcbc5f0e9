package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/kitchenkeeper/internal/kitchenfake"
	"github.com/dmitrijs2005/kitchenkeeper/internal/kitchenfake/config"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	srv, err := kitchenfake.NewServer(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
