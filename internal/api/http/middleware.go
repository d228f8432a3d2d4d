package http

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-gate/internal/observability"
	apperrors "github.com/spec-kit/admin-gate/pkg/util/errorutil"
)

// MiddlewareConfig bundles what the global middlewares need.
type MiddlewareConfig struct {
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	Timeout        time.Duration
	AllowedOrigins []string
	Production     bool
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, cfg MiddlewareConfig) {
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: observability.RequestIDLocal,
	}))
	app.Use(observability.RequestLogger(cfg.Logger, cfg.Metrics))
	app.Use(errorHandlingMiddleware(cfg.Logger, cfg.Metrics, cfg.Production))
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
	app.Use(helmet.New())
	app.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
}

// corsConfig builds the CORS policy. A "*" entry allows any origin, in
// which case credentials are not allowed (fiber rejects that pair).
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowOrigins = "*"
			cfg.AllowCredentials = false
			break
		}
	}
	return cfg
}

// NotFound terminates the chain for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	c.Status(fiber.StatusNotFound)
	return apperrors.NewRouteNotFound(c.OriginalURL())
}

// NewErrorHandler renders errors that escape the middleware chain, such as
// fiber's own routing and body errors.
func NewErrorHandler(logger *zap.Logger, metrics *observability.Metrics, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return renderError(c, err, logger, metrics, production)
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, production bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewUnclassified(fmt.Errorf("panic: %v", r))
				c.Status(fiber.StatusInternalServerError)
			}
			if err != nil {
				err = renderError(c, err, logger, metrics, production)
			}
		}()
		return c.Next()
	}
}

func renderError(c *fiber.Ctx, err error, logger *zap.Logger, metrics *observability.Metrics, production bool) error {
	domainErr := apperrors.ToDomainError(err)
	status := apperrors.ResolveStatus(domainErr, c.Response().StatusCode())
	metrics.RecordError(string(domainErr.Kind))

	if status >= fiber.StatusInternalServerError {
		logger.Error("request failed", zap.String("kind", string(domainErr.Kind)), zap.Error(domainErr))
	} else {
		logger.Debug("request rejected", zap.String("kind", string(domainErr.Kind)), zap.Error(domainErr))
	}

	return c.Status(status).JSON(apperrors.NewEnvelope(domainErr, production))
}
