package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	api "github.com/rogerio-castellano/vigilio-gateway/internal/http"
	"github.com/rogerio-castellano/vigilio-gateway/internal/http/ban"
	"github.com/rogerio-castellano/vigilio-gateway/internal/http/handlers"
	rl "github.com/rogerio-castellano/vigilio-gateway/internal/http/rate_limiter"
	"github.com/rogerio-castellano/vigilio-gateway/internal/redissvc"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "HTTP listen address (env VIGILIO_HTTP_ADDR, default :8080)")
	_ = v.BindPFlag("http_addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := dialUpstream()
	if err != nil {
		return err
	}
	defer client.Close()
	handlers.SetUpstream(client)
	api.SetTrustProxyHeaders(cfg.TrustProxyHeaders)

	if cfg.RateLimit.Enabled {
		limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.StartVisitorCleanupLoop(ctx, time.Minute, rl.DefaultIdleTTL)
		api.SetRateLimiter(limiter)

		banner, closeStore, err := newBanner(ctx)
		if err != nil {
			return err
		}
		defer closeStore()
		if banner != nil {
			go banner.StartDailyBanSummary(ctx, 24*time.Hour)
			api.SetBanner(banner)
		}
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on %s, upstream %s (secure=%t)", cfg.HTTPAddr, cfg.GRPCHost, cfg.GRPCSecure)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newBanner returns nil when bans are disabled. Bans live in Redis when an
// address is configured and in memory otherwise.
func newBanner(ctx context.Context) (*ban.Banner, func(), error) {
	policy := cfg.BanPolicy()
	if !policy.Enabled() {
		return nil, func() {}, nil
	}

	if cfg.Redis.Addr == "" {
		return ban.NewBanner(ban.NewMemoryStore(), policy), func() {}, nil
	}

	rs, err := redissvc.Connect(ctx, cfg.RedisOptions())
	if err != nil {
		return nil, nil, err
	}
	closeStore := func() {
		if err := rs.Close(); err != nil {
			log.Printf("closing redis: %v", err)
		}
	}
	return ban.NewBanner(ban.NewRedisStore(rs), policy), closeStore, nil
}
