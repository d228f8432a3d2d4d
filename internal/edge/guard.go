package edge

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-gate/internal/observability"
)

// Guard is the fiber handler form of Decide.
type Guard struct {
	cookieName string
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewGuard builds a guard keyed on cookieName. metrics may be nil.
func NewGuard(cookieName string, logger *zap.Logger, metrics *observability.Metrics) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{cookieName: cookieName, logger: logger, metrics: metrics}
}

// Handle redirects or forwards one navigation request.
func (g *Guard) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if Excluded(path) {
		return c.Next()
	}

	decision := Decide(path, c.Cookies(g.cookieName) != "")
	g.metrics.RecordEdge(decision.Reason)
	if decision.Action == ActionPass {
		return c.Next()
	}

	g.logger.Debug("edge redirect",
		zap.String("path", path),
		zap.String("class", Classify(path).String()),
		zap.String("location", decision.Location),
	)
	return c.Redirect(decision.Location, fiber.StatusTemporaryRedirect)
}
