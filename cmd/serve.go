package cmd

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/transactify/transactify/app/controller"
	"github.com/transactify/transactify/app/manifest"
	"github.com/transactify/transactify/app/provider"
	"github.com/transactify/transactify/app/repository"
	"github.com/transactify/transactify/app/service"
	"github.com/transactify/transactify/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP payment server",
	Long:  "Serve the payment facade over HTTP using the manifest in the current directory.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, paymentService, cleanup := mustCreatePaymentService()
	defer cleanup()

	paymentController := controller.NewPaymentController(paymentService)
	e := setupHTTPServer(paymentController, cfg.App.ServiceName)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	logrus.Info("Server stopped")
}

func setupHTTPServer(paymentController *controller.PaymentController, serviceName string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"service":   serviceName,
				"remote_ip": v.RemoteIP,
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(ensureRequestID())

	e.GET("/health", paymentController.Health)
	e.POST("/payments/:provider", paymentController.Charge)

	return e
}

// ensureRequestID assigns a request id when the caller did not send one,
// so failures are traceable in the request log.
func ensureRequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := strings.TrimSpace(ctx.Request().Header.Get(echo.HeaderXRequestID))
			if requestID == "" {
				requestID = uuid.NewString()
				ctx.Request().Header.Set(echo.HeaderXRequestID, requestID)
			}
			ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)
			return next(ctx)
		}
	}
}

func mustCreatePaymentService() (*config.Config, *service.PaymentService, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to resolve working directory")
	}

	cleanup := func() {}
	var store repository.TransactionStore
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		documentStore, err := repository.OpenDocumentStore(cfg.Store.SQLitePath)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to open document store")
		}
		store = documentStore
		cleanup = func() {
			if err := documentStore.Close(); err != nil {
				logrus.WithError(err).Warn("Failed to close document store")
			}
		}
	default:
		store = repository.NewLedgerStore(cfg.Store.LedgerPath)
	}

	paymentService := service.NewPaymentService(
		manifest.NewStore(cwd),
		provider.DefaultRegistry(),
		store,
		cfg.Store.HTTPTimeout,
	)

	return cfg, paymentService, cleanup
}
