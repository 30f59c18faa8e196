package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/config"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/dto"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/endpoints"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/service"
	"github.com/meetonsamepage/flight-meetup-service/internal/app/transport"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/airports"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flight"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/flightprovider/kiwi"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/logger"
	"github.com/meetonsamepage/flight-meetup-service/internal/pkg/pacer"
	"github.com/redis/go-redis/v9"
)

// @title           Flight Meetup Service API
// @version         0.0.1
// @description     flight-meetup-service
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	directory, err := airports.NewDirectory()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load airport directory", slog.String("error", err.Error()))
		panic(err)
	}

	endpts := makeEndpoints(ctx, &cfg, directory)
	router := transport.MakeHTTPRouter(&cfg, endpts, directory)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, directory *airports.Directory) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init registry
	registry := initFlightProviderRegistry(cfg, redisClient)

	// init service endpoint
	return endpoints.Endpoints{
		MeetupEndpoint: makeMeetupEndpoint(registry, redisClient, directory, cfg),
	}
}

// register flight provider
func initFlightProviderRegistry(cfg *config.Config, redisClient *redis.Client) *flightprovider.FlightProviderRegistry {
	limiter := redis_rate.NewLimiter(redisClient)

	registry := flightprovider.NewFlightProviderRegistry()
	registry.AddProvider(kiwi.ProviderName, kiwi.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.Providers.KiwiProvider.SearchAPIURL,
		APIKey:       cfg.Providers.KiwiProvider.APIKey,
		Timeout:      cfg.Providers.KiwiProvider.Timeout,
		RateLimitRPS: cfg.Providers.KiwiProvider.RateLimitRPS,
		Limiter:      limiter,
	}))

	return registry
}

func makeMeetupEndpoint(registry *flightprovider.FlightProviderRegistry,
	redisClient *redis.Client, directory *airports.Directory, cfg *config.Config,
) endpoints.MeetupEndpoint {
	provider := registry.GetProvider(cfg.Providers.Active)
	if provider == nil {
		panic(fmt.Errorf("unknown flight provider: %s", cfg.Providers.Active))
	}

	// cache
	offerCache := flight.NewOfferCache(redisClient)

	pacing := service.Pacing{
		Search:     pacer.New(cfg.Pacing.SearchDelay),
		BestMatch:  pacer.New(cfg.Pacing.BestMatchDelay),
		Explore:    pacer.New(cfg.Pacing.ExploreDelay),
		Everywhere: pacer.New(cfg.Pacing.EverywhereDelay),
	}

	// service
	meetupService := service.NewMeetupService(provider, offerCache, directory, pacing,
		cfg.Providers.CacheExpiration, cfg.Providers.LockTimeout)

	// endpoint
	return endpoints.MakeMeetupEndpoint(meetupService)
}
