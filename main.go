package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"smsbridge/internal/api"
	"smsbridge/internal/config"
	"smsbridge/internal/notify"
	"smsbridge/internal/repository"
	"smsbridge/internal/secrets"
	"smsbridge/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	loader, err := newSecretLoader(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise secret store", zap.Error(err))
	}
	creds, err := loader.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load pushover credentials", zap.String("store", cfg.SecretStore), zap.Error(err))
	}

	sender, err := notify.NewPushoverSender(creds)
	if err != nil {
		logger.Fatal("failed to authenticate with pushover", zap.Error(err))
	}
	logger.Info("pushover credentials verified")

	var cache service.MessageCache
	if cfg.RedisAddr != "" {
		repo, err := repository.NewRedisRepo(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.DedupeTTL)
		if err != nil {
			logger.Fatal("failed to initialize redelivery cache", zap.Error(err))
		}
		defer repo.Close()
		cache = repo
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	serv := service.NewMessageService(sender, cache, logger)

	inLambda := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
	if inLambda {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewRouter(api.NewAPIHandler(serv, logger), logger, api.RouterOptions{DocsEnabled: cfg.DocsEnabled})

	if inLambda {
		lambda.Start(ginadapter.New(r).ProxyWithContext)
		return
	}
	runServer(cfg, r, logger)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func newSecretLoader(ctx context.Context, cfg *config.Config) (secrets.Loader, error) {
	if cfg.SecretStore == config.StoreEnv {
		return secrets.EnvLoader{AppKey: cfg.AppKey, UserKey: cfg.UserKey}, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.SecretStore == config.StoreSecretsManager {
		return secrets.NewSecretsManagerLoader(awsCfg, cfg.SecretID), nil
	}
	return secrets.NewSSMLoader(awsCfg, cfg.SSMPath), nil
}

func runServer(cfg *config.Config, r http.Handler, logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	servers := []*http.Server{srv}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		servers = append(servers, metricsSrv)
		go func() {
			logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.String("addr", s.Addr), zap.Error(err))
		}
	}
}
