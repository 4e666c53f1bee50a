// Package bootstrap assembles the full MolCanvas service from configuration:
// infrastructure clients, domain services, the HTTP router and the server
// lifecycle. Both binaries (cmd/apiserver and the molcanvas serve command)
// share this wiring.
package bootstrap

import (
	"context"
	"time"

	"github.com/turtacn/MolCanvas/internal/application/editor"
	"github.com/turtacn/MolCanvas/internal/config"
	"github.com/turtacn/MolCanvas/internal/domain/element"
	"github.com/turtacn/MolCanvas/internal/domain/fragmentlib"
	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/database/postgres"
	"github.com/turtacn/MolCanvas/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/MolCanvas/internal/infrastructure/database/redis"
	"github.com/turtacn/MolCanvas/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MolCanvas/internal/infrastructure/storage/minio"
	httpserver "github.com/turtacn/MolCanvas/internal/interfaces/http"
	"github.com/turtacn/MolCanvas/internal/interfaces/http/handlers"
)

// Options tunes service assembly beyond what the config file carries.
type Options struct {
	// Version is reported by the liveness probe and startup log line.
	Version string

	// MigrationsURL is the golang-migrate source URL for schema migrations.
	// Empty skips migrations (useful when an operator runs them separately).
	MigrationsURL string
}

// Run assembles the service and serves HTTP until ctx is cancelled. All
// infrastructure resources are released before it returns.
func Run(ctx context.Context, cfg *config.Config, logger logging.Logger, opts Options) error {
	logger.Info("starting molcanvas api server",
		logging.String("version", opts.Version),
		logging.Int("port", cfg.Server.Port),
	)

	// Metrics first so every later component can observe.
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            prometheus.DefaultNamespace,
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		return err
	}
	metrics := prometheus.NewAppMetrics(collector)

	// PostgreSQL pool and schema.
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if opts.MigrationsURL != "" {
		if err := postgres.RunMigrations(postgres.BuildDSN(cfg.Database), opts.MigrationsURL); err != nil {
			return err
		}
		logger.Info("database schema up to date")
	}

	var repo molecule.Repository = repositories.NewMoleculeRepository(pool.Pgx(), logger)

	checkers := []handlers.HealthChecker{
		handlers.HealthCheckFunc{ComponentName: "postgres", CheckFunc: pool.HealthCheck},
	}

	// Redis read-through cache in front of the repository.
	redisClient, err := redis.NewClient(cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	cacheOpts := []redis.CacheOption{}
	if cfg.Redis.KeyPrefix != "" {
		cacheOpts = append(cacheOpts, redis.WithPrefix(cfg.Redis.KeyPrefix))
	}
	if cfg.Redis.DefaultTTL > 0 {
		cacheOpts = append(cacheOpts, redis.WithDefaultTTL(cfg.Redis.DefaultTTL))
	}
	cache := redis.NewRedisCache(redisClient, logger, cacheOpts...)
	repo = redis.NewCachedMoleculeRepository(repo, cache, cfg.Redis.DefaultTTL, logger)

	checkers = append(checkers, handlers.HealthCheckFunc{
		ComponentName: "redis",
		CheckFunc:     redisClient.Ping,
	})

	// Kafka event publishing is optional; without it domain events are
	// dropped by the molecule service's nop publisher.
	var publisher molecule.EventPublisher
	if cfg.Kafka.Enabled {
		producer, perr := kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.ProducerRetries,
			BatchSize:    cfg.Kafka.BatchSize,
			WriteTimeout: time.Duration(cfg.Kafka.TimeoutMS) * time.Millisecond,
		}, logger)
		if perr != nil {
			return perr
		}
		defer func() { _ = producer.Close() }()

		topics, terr := kafka.NewTopicManager(cfg.Kafka.Brokers, logger)
		if terr != nil {
			return terr
		}
		if terr := topics.EnsureEventTopic(ctx, cfg.Kafka.Topic); terr != nil {
			_ = topics.Close()
			return terr
		}
		_ = topics.Close()

		publisher = kafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger)
	}

	moleculeSvc := molecule.NewService(repo, publisher, logger)

	// MinIO export storage is optional; exports return 501 when disabled.
	var artifacts editor.ArtifactStore
	if cfg.MinIO.Enabled {
		objClient, merr := minio.NewClient(ctx, cfg.MinIO, logger)
		if merr != nil {
			return merr
		}
		store := minio.NewExportStore(objClient, cfg.MinIO.PresignExpiry, logger)
		artifacts = NewArtifactStore(store)

		checkers = append(checkers, handlers.HealthCheckFunc{
			ComponentName: "minio",
			CheckFunc:     objClient.HealthCheck,
		})
	}

	editorSvc := editor.NewService(
		cfg.Editor,
		element.NewRegistry(),
		fragmentlib.NewLibrary(),
		moleculeSvc,
		artifacts,
		metrics,
		logger,
	)
	editorSvc.StartReaper()
	defer editorSvc.Close()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		SessionHandler:   handlers.NewSessionHandler(editorSvc),
		MoleculeHandler:  handlers.NewMoleculeHandler(moleculeSvc),
		LibraryHandler:   handlers.NewLibraryHandler(element.NewRegistry(), fragmentlib.NewLibrary()),
		HealthHandler:    handlers.NewHealthHandler(opts.Version, checkers...),
		Logger:           logger,
		AppMetrics:       metrics,
		MetricsCollector: collector,
	})

	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return srv.Stop(context.Background())
}

//Personal.AI order the ending
