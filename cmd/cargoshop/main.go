package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cargoshop/cargoshop/config"
	"github.com/cargoshop/cargoshop/internal/app"
	"github.com/cargoshop/cargoshop/internal/restapi"
	"github.com/cargoshop/cargoshop/internal/webserver"
)

var (
	configFile = flag.String("c", "cargoshop.yml", "config file path")
	showVer    = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVer {
		fmt.Println(version)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig(*configFile)
	application := app.NewApplication(cfg)
	if err := application.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	ws := webserver.New(application)
	api := restapi.New(application)
	api.Register(ws)
	ws.ApiGET("/ws", application.Hub().Handler())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ws.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return ws.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server exited: %v", err)
	}
}
