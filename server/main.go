package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/ponyo877/karaokesh/grpc"
	"github.com/ponyo877/karaokesh/server/adaptor"
	"github.com/ponyo877/karaokesh/server/domain"
	"github.com/ponyo877/karaokesh/server/metrics"
	"github.com/ponyo877/karaokesh/server/repository"
	"github.com/ponyo877/karaokesh/server/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	limiterSweepInterval = 5 * time.Minute
	shutdownTimeout      = 10 * time.Second
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "karaokesh-server",
		Short:        "Serves karaoke sessions, devices and playback queues over gRPC.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./karaokesh.yaml)")
	bindFlags(v, cmd)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	logger := log.New(os.Stdout, "", log.LstdFlags)
	metrics.Init()

	directory := domain.NewHostcodeDirectory(nil)
	pool := domain.NewRandomPool(nil)
	watcher := repository.NewCatalogWatcher(cfg.CatalogPath, directory, pool)
	if err := watcher.Reload(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	repo, closeStore, err := repository.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Printf("failed to close store: %v", err)
		}
	}()

	uc := usecase.NewUsecase(repo, directory, pool)
	if err := uc.Open(ctx); err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := uc.Close(flushCtx); err != nil {
			logger.Printf("failed to flush sessions: %v", err)
		}
	}()

	limiter := adaptor.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		adaptor.LoggingInterceptor(logger),
		limiter.UnaryInterceptor(),
	))
	pb.RegisterKaraokeServiceServer(s, adaptor.NewAdaptor(uc))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(pb.KaraokeService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	reflection.Register(s)

	lis, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Printf("Server is running on %s (store=%s)", cfg.ListenAddress, cfg.Store.Driver)
		return s.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		healthServer.Shutdown()
		s.GracefulStop()
		return nil
	})
	g.Go(func() error {
		limiter.Run(gctx, limiterSweepInterval)
		return nil
	})
	if cfg.CatalogWatch {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Printf("Metrics listening on %s", cfg.MetricsAddress)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = g.Wait()
	logger.Printf("Server stopped")
	return err
}
