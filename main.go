package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mahatta/config"
	"mahatta/database"
	"mahatta/handlers"
	"mahatta/middleware"
	"mahatta/routes"
	"mahatta/services/catalog"
	"mahatta/services/chat"
	"mahatta/services/commerce"
	ai "mahatta/services/intelligence"
	"mahatta/services/media"
	"mahatta/services/recommend"
	"mahatta/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Cart and wishlist live in Redis. Without it the assistant still runs, it just cannot
	// remember what the shopper added.
	var (
		storeClient *redis.Client
		cart        chat.Cart
		wishlist    chat.Wishlist
		cartReader  handlers.CartReader
	)
	if client, err := utils.GetStoreClient(); err != nil {
		logger.Warn("main: Redis store unavailable; cart and wishlist disabled", zap.Error(err))
	} else {
		storeClient = client
		redisCart := commerce.NewRedisCart(client, cfg.CartTTL, logger)
		cart, cartReader = redisCart, redisCart
		wishlist = commerce.NewRedisWishlist(client, cfg.CartTTL)
	}

	var (
		mongoClient *mongo.Client
		cat         catalog.Catalog = catalog.Default()
	)
	if cfg.CatalogSource == "mongo" {
		client, err := database.InitDB(ctx)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to connect catalog database: %v", err)
		}
		mongoClient = client
		loaded, err := catalog.LoadMongoCatalog(ctx, database.CatalogCollection(client), logger)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to load catalog: %v", err)
		}
		cat = loaded
	}

	var resolver media.Resolver = media.Passthrough{}
	if cfg.CloudinaryCloudName != "" {
		cld, err := media.NewCloudinaryResolver(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, logger)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
		}
		resolver = cld
	}

	generator, err := ai.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize text generation: %v", err)
	}
	if closer, ok := generator.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	engine := recommend.NewEngine(cat, generator, cfg.GeminiTimeout, logger)
	manager := chat.NewManager(chat.Deps{
		Engine:   engine,
		Catalog:  cat,
		Cart:     cart,
		Wishlist: wishlist,
		Pacing:   cfg.Pacing,
		Logger:   logger,
	}, cfg.SessionTTL)
	go manager.Run(ctx, time.Minute)

	utils.StartHealthMonitor(ctx, 30*time.Second, storeClient, mongoClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewNurHandler(manager, cat, resolver),
		handlers.NewStorefrontHandler(cat, resolver, cartReader),
	)
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stop()
	manager.Shutdown()
	if storeClient != nil {
		_ = storeClient.Close()
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
