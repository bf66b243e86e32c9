package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/appointment-notification-service/internal/handler"
	"github.com/koungkub/appointment-notification-service/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http_server",
	fx.Provide(
		NewHTTP,
		NewConfig,
	),
)

type HTTPParams struct {
	fx.In

	Config              HTTPConfig
	NotificationHandler *handler.Notification
	DeviceTokenHandler  *handler.DeviceToken
	HTTPMetrics         *metrics.HTTPServerCollector
	Logger              *zap.Logger
}

type HTTPServer struct {
	router *gin.Engine
	srv    *http.Server

	notificationHandler *handler.Notification
	deviceTokenHandler  *handler.DeviceToken
	httpMetrics         *metrics.HTTPServerCollector
	logger              *zap.Logger
}

func NewHTTP(lc fx.Lifecycle, params HTTPParams) *HTTPServer {
	httpServer := newHTTPServer(params)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", httpServer.srv.Addr)
			if err != nil {
				return err
			}
			httpServer.logger.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := httpServer.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					httpServer.logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpServer.srv.Shutdown(ctx)
		},
	})

	return httpServer
}

func newHTTPServer(params HTTPParams) *HTTPServer {
	if params.Config.Mode != "" {
		gin.SetMode(params.Config.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	httpServer := &HTTPServer{
		router: router,
		srv: &http.Server{
			Addr:              params.Config.Port,
			Handler:           router,
			ReadHeaderTimeout: params.Config.ReadHeaderTimeout,
		},
		notificationHandler: params.NotificationHandler,
		deviceTokenHandler:  params.DeviceTokenHandler,
		httpMetrics:         params.HTTPMetrics,
		logger:              params.Logger,
	}

	httpServer.setupRoutes()

	return httpServer
}

type HTTPConfig struct {
	Port              string        `envconfig:"HTTP_SERVER_PORT" default:":8080"`
	Mode              string        `envconfig:"GIN_MODE" default:"release"`
	ReadHeaderTimeout time.Duration `envconfig:"HTTP_SERVER_READ_HEADER_TIMEOUT" default:"10s"`
}

func NewConfig() HTTPConfig {
	var cfg HTTPConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}
