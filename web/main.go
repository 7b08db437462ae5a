package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"univen.com/backoffice/config"
	"univen.com/backoffice/core"
	"univen.com/backoffice/logging"
	"univen.com/backoffice/web/handlers/customers"
	"univen.com/backoffice/web/middlewares"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync()

	db, err := core.Connect(cfg.Database.GetDSN(), cfg.Database.MaxConnections)
	if err != nil {
		logger.Fatal("connecting to univen store", zap.Error(err))
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.Auth.SigningSecret)
	if err != nil {
		logger.Fatal("decoding signing secret", zap.Error(err))
	}

	svc := core.NewCustomerService(db, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Metrics())

	if len(cfg.Server.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Sequence"},
			ExposeHeaders:    []string{"Content-Length", "X-Sequence", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := r.Group("/api/univen/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	customers.Register(protected, svc, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
