package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/ParthDhengle/ClipHub/internal/auth"
	"github.com/ParthDhengle/ClipHub/internal/config"
	"github.com/ParthDhengle/ClipHub/internal/handlers"
	"github.com/ParthDhengle/ClipHub/internal/identity"
	"github.com/ParthDhengle/ClipHub/internal/repository"
	"github.com/ParthDhengle/ClipHub/internal/services"
	"github.com/ParthDhengle/ClipHub/internal/storage"
	"github.com/ParthDhengle/ClipHub/internal/utils"
)

// AppContext holds the process-wide clients, constructed once at startup and
// read-only afterwards.
type AppContext struct {
	Config   *config.Config
	Logger   *zap.Logger
	Mongo    *mongo.Client
	Handler  *handlers.Handler
	Resolver *auth.Resolver
}

type CleanupFn func(context.Context)

func Init(ctx context.Context) (*AppContext, CleanupFn, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.NewLogger(cfg.App.Env == "development")
	if err != nil {
		return nil, nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	mc, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := mc.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	db := mc.Database(cfg.Mongo.Database)

	provider, err := identity.NewFirebaseProvider(ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("identity provider: %w", err)
	}

	issuer, err := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.Algorithm, cfg.TokenTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("token issuer: %w", err)
	}

	userRepo := repository.NewMongoUserRepo(db)
	mediaRepo := repository.NewMongoMediaRepo(db)
	collectionRepo := repository.NewMongoCollectionRepo(db)
	analyticsRepo := repository.NewMongoAnalyticsRepo(db)

	remote, err := newRemote(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("storage remote: %w", err)
	}
	store := storage.NewStore(remote, cfg.Storage.MaxUploadBytes, cfg.Storage.AllowedTypes)

	library, err := storage.NewLocalLibrary(cfg.Storage.UploadDir)
	if err != nil {
		return nil, nil, fmt.Errorf("local library: %w", err)
	}

	resolver := auth.NewResolver(provider, issuer, userRepo, logger)

	authSvc := services.NewAuthService(provider, userRepo, issuer, logger)
	userSvc := services.NewUserService(userRepo)
	mediaSvc := services.NewMediaService(mediaRepo, store, library)

	h := handlers.NewHandler(authSvc, userSvc, mediaSvc, collectionRepo, analyticsRepo, logger)

	app := &AppContext{
		Config:   cfg,
		Logger:   logger,
		Mongo:    mc,
		Handler:  h,
		Resolver: resolver,
	}
	cleanup := func(c context.Context) {
		_ = mc.Disconnect(c)
		_ = logger.Sync()
	}
	return app, cleanup, nil
}

func newRemote(ctx context.Context, cfg *config.Config) (storage.Remote, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return storage.NewS3Remote(ctx, cfg.Storage.AWS.Region, cfg.Storage.AWS.Bucket, cfg.Storage.AWS.Endpoint)
	case "cloudinary":
		return storage.NewCloudinaryRemote(cfg.Storage.Cloudinary.CloudName, cfg.Storage.Cloudinary.APIKey, cfg.Storage.Cloudinary.APISecret)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
