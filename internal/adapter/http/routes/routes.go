package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academia_bere/config"
	_ "academia_bere/docs"
	"academia_bere/internal/adapter/http/handlers"
	"academia_bere/internal/adapter/http/middleware"
	"academia_bere/internal/adapter/persistence/repository"
	"academia_bere/internal/infrastructure/auth"
	"academia_bere/internal/infrastructure/cache"
	"academia_bere/internal/infrastructure/database"
	"academia_bere/internal/infrastructure/notifier"
	"academia_bere/internal/infrastructure/payments"
	"academia_bere/internal/infrastructure/storage"
	"academia_bere/internal/usecase"
	"academia_bere/internal/usecase/interfaces"
	"academia_bere/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

var router = gin.New()

// Run wires every dependency, serves the API and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst, time.Minute, 3*time.Minute)
	defer limiter.Shutdown()
	webhookLimiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.WebhookRequestsPerSecond), cfg.RateLimit.WebhookBurst, time.Minute, 3*time.Minute)
	defer webhookLimiter.Shutdown()

	if err := getRoutes(ctx, cfg, limiter, webhookLimiter); err != nil {
		logger.Fatal().Err(err).Msg("[startup] failed wiring dependencies")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Str("env", cfg.Server.Env).Msg("[startup] http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("[startup] failed to start the application")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("[shutdown] shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("[shutdown] server forced to shutdown")
	}
	logger.Info().Msg("[shutdown] server exited")
}

func getRoutes(ctx context.Context, cfg *config.Config, limiter, webhookLimiter *middleware.RateLimiter) error {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.AWS)

	couponRepo := repository.NewCouponDynamoRepository(ddb, cfg.Tables.Coupons)
	courseRepo := repository.NewCourseDynamoRepository(ddb, cfg.Tables.Courses)
	lessonRepo := repository.NewLessonDynamoRepository(ddb, cfg.Tables.Lessons)
	progressRepo := repository.NewProgressDynamoRepository(ddb, cfg.Tables.Progress)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.Tables.Users)
	paymentRepo := repository.NewPaymentRecordDynamoRepository(ddb, cfg.Tables.Payments)
	transferRepo := repository.NewTransferRequestDynamoRepository(ddb, cfg.Tables.TransferRequests)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock)
	if err != nil {
		logger.Warn().Err(err).Msg("[startup] Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}
	if cfg.MercadoPago.WebhookSecret == "" {
		logger.Warn().Msg("[startup] MERCADOPAGO_WEBHOOK_SECRET not set, webhook signatures are not verified")
	}

	var objectStorage interfaces.IObjectStorage
	s3Storage, err := storage.NewS3Storage(awsCfg, cfg.Storage)
	if err != nil {
		logger.Warn().Err(err).Msg("[startup] object storage not configured")
	} else {
		objectStorage = s3Storage
	}

	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	catalogCache := cache.NewMemoryCache(cfg.Cache.CatalogTTL, cfg.Cache.CleanupInterval)

	couponUseCase := usecase.NewCouponUseCase(couponRepo)
	courseUseCase := usecase.NewCourseUseCase(courseRepo, catalogCache, cfg.Cache.CatalogTTL)
	lessonUseCase := usecase.NewLessonUseCase(lessonRepo, courseRepo, userRepo, objectStorage)
	studentUseCase := usecase.NewStudentUseCase(userRepo, courseUseCase, lessonRepo, progressRepo)
	preferenceUseCase := usecase.NewPaymentPreferenceUseCase(couponUseCase, courseRepo, paymentGateway, usecase.PreferenceSettings{
		FrontendURL:     cfg.Server.FrontendURL,
		NotificationURL: cfg.WebhookURL(),
		CurrencyID:      cfg.MercadoPago.CurrencyID,
	})
	webhookUseCase := usecase.NewPaymentWebhookUseCase(paymentGateway, userRepo, paymentRepo, cfg.MercadoPago.WebhookSecret)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo)
	transferUseCase := usecase.NewTransferRequestUseCase(transferRepo, courseRepo, userRepo, notifier.New(cfg.SMTP))
	userUseCase := usecase.NewUserUseCase(userRepo, courseRepo, cfg.Auth.MinPasswordChars)
	authUseCase := usecase.NewAuthUseCase(userUseCase, userRepo, tokens, cfg.Auth.SetupAdminToken)

	h := routeHandlers{
		auth:      handlers.NewAuthHandler(authUseCase),
		coupons:   handlers.NewCouponHandler(couponUseCase),
		courses:   handlers.NewCourseHandler(courseUseCase, lessonUseCase),
		students:  handlers.NewStudentHandler(studentUseCase),
		payments:  handlers.NewPaymentHandler(preferenceUseCase, webhookUseCase, paymentUseCase),
		transfers: handlers.NewTransferRequestHandler(transferUseCase),
		users:     handlers.NewUserHandler(userUseCase),
	}

	addHealthRoutes(router, ddb, cfg.Tables.Courses)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAPIRoutes(v1, h, middleware.Authenticate(tokens), limiter.Middleware(), webhookLimiter.Middleware())
	return nil
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithContext(c.Request.Context()).Error().Interface("panic", recovered).Msg("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestLogger())
}
