package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/minashiro/recruit-admin/internal/clients/auth"
	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/minashiro/recruit-admin/internal/config"
	"github.com/minashiro/recruit-admin/internal/gateway"
	"github.com/minashiro/recruit-admin/internal/logger"
	"github.com/minashiro/recruit-admin/internal/metrics"
	"github.com/minashiro/recruit-admin/internal/provider"
	"github.com/minashiro/recruit-admin/internal/repositories"
	"github.com/minashiro/recruit-admin/internal/services"
	log "github.com/sirupsen/logrus"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Gateway.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	ancestors := repositories.NewCachedAncestors(repositories.NewAncestorsRepository(dbContext.DB))
	audits := repositories.NewAuditsRepository(dbContext.DB)
	bus := EventBus.New()

	tokens := auth.NewTokenStore()
	authClient := auth.NewClient(cfg.Gateway.AuthBaseURL)

	backendClient := backend.NewClient(cfg.Backend.BaseURL)
	backendClient.SetRateLimit(cfg.Backend.MaxRequestsPerSecond)
	backendClient.SetTokenSource(tokens)

	prov := provider.New(backendClient, ancestors, bus, cfg.Backend.MasterListCacheTTL)

	cleaner, err := services.NewAncestryCleaner(
		repositories.NewAncestorsRepository(dbContext.DB), cfg.DB.AncestryExpirationInDays)
	if err != nil {
		log.Fatalf("can't create ancestry cleaner: %v", err)
	}
	defer cleaner.Stop()

	_, err = services.NewAuditRecorder(bus, audits)
	if err != nil {
		log.Fatalf("can't create audit recorder: %v", err)
	}

	server := gateway.NewServer(prov, authClient, tokens, cfg.Gateway.Port)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("gateway stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("gateway shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
