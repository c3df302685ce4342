package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/riizpect/ServiceApp-sub000/config"
	"github.com/riizpect/ServiceApp-sub000/internal/adminapi"
	"github.com/riizpect/ServiceApp-sub000/internal/app"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

var (
	configFile = flag.String("c", "serviceapp.yml", "config file")
	showVer    = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVer {
		fmt.Println("serviceappd", version)
		return
	}

	cfg := config.LoadConfig(*configFile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	server := webserver.Init(application)
	adminapi.RegisterRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Listen)
	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown()
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("serviceappd exited with error: %v", err)
	}
}
