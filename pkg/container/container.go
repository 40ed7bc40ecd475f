package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"specialist-directory-backend/internal/config"
	infraCache "specialist-directory-backend/internal/infrastructure/cache"
	infraDB "specialist-directory-backend/internal/infrastructure/database"
	"specialist-directory-backend/pkg/cache"
	"specialist-directory-backend/pkg/database"
	"specialist-directory-backend/pkg/jwt"

	mediaHandler "specialist-directory-backend/internal/domains/media/handler"
	mediaRepo "specialist-directory-backend/internal/domains/media/repository"
	mediaService "specialist-directory-backend/internal/domains/media/service"
	feeHandler "specialist-directory-backend/internal/domains/platformfee/handler"
	feeRepo "specialist-directory-backend/internal/domains/platformfee/repository"
	feeService "specialist-directory-backend/internal/domains/platformfee/service"
	specialistHandler "specialist-directory-backend/internal/domains/specialist/handler"
	specialistRepo "specialist-directory-backend/internal/domains/specialist/repository"
	specialistService "specialist-directory-backend/internal/domains/specialist/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton wired once at startup, in layer order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *infraDB.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	TxManager  database.TxManager

	SpecialistRepo  specialistRepo.RepositoryInterface
	MediaRepo       mediaRepo.RepositoryInterface
	PlatformFeeRepo feeRepo.RepositoryInterface

	SpecialistService  specialistService.ServiceInterface
	MediaService       mediaService.ServiceInterface
	PlatformFeeService feeService.ServiceInterface

	SpecialistHandler  *specialistHandler.SpecialistHandler
	MediaHandler       *mediaHandler.MediaHandler
	PlatformFeeHandler *feeHandler.PlatformFeeHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Configuration loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	db := infraDB.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	c.TxManager = database.NewTxManager(db.Pool)
	log.Info().Msg("Database connected")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(context.Background()); err != nil {
		// Redis is an accelerator, not a dependency; degrade to cold reads.
		log.Warn().Err(err).Msg("Redis unavailable, continuing without warm cache")
	} else {
		log.Info().Msg("Redis connected")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.SpecialistRepo = specialistRepo.NewPostgresRepository(pool)
	c.MediaRepo = mediaRepo.NewPostgresRepository(pool)
	c.PlatformFeeRepo = feeRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.SpecialistService = specialistService.NewSpecialistService(
		c.SpecialistRepo,
		c.MediaRepo,
		c.TxManager,
		c.Cache,
	)
	c.MediaService = mediaService.NewMediaService(c.MediaRepo)
	c.PlatformFeeService = feeService.NewPlatformFeeService(c.PlatformFeeRepo)
}

func (c *Container) initHandlers() {
	c.SpecialistHandler = specialistHandler.NewSpecialistHandler(c.SpecialistService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
	c.PlatformFeeHandler = feeHandler.NewPlatformFeeHandler(c.PlatformFeeService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}
}
