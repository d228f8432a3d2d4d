package edge

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"

	"github.com/spec-kit/admin-gate/internal/config"
)

// Mount attaches whatever serves the pages once the guard lets a request
// through: a reverse proxy when an upstream is configured, otherwise the
// static directory.
func Mount(app *fiber.App, cfg config.EdgeConfig) error {
	if cfg.UpstreamURL == "" {
		app.Static("/", cfg.StaticDir)
		return nil
	}

	upstream, err := url.Parse(cfg.UpstreamURL)
	if err != nil || upstream.Scheme == "" || upstream.Host == "" {
		return fmt.Errorf("invalid EDGE_UPSTREAM_URL %q", cfg.UpstreamURL)
	}
	base := strings.TrimSuffix(upstream.String(), "/")

	app.All("/*", func(c *fiber.Ctx) error {
		return proxy.Do(c, base+c.OriginalURL())
	})
	return nil
}
