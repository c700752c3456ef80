package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"openspace/config"
	"openspace/internal/delivery"
	httpmiddleware "openspace/internal/delivery/http/middleware"
	"openspace/internal/delivery/http/router"
	"openspace/internal/delivery/http/validator"
	deliverymiddleware "openspace/internal/delivery/middleware"
	"openspace/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Config.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Config.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Config.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Config.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before loggers so every log line carries it)
	requestIDMiddleware := deliverymiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Access log, plus verbose request logging in debug environments
	echoServer.Use(slogecho.New(params.Logger))
	loggerMiddleware := deliverymiddleware.NewLoggerMiddleware(params.Logger, params.Config)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))

	// Set up centralized error handler
	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	// Set up validator
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
