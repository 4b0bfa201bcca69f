package api

import (
	"time"

	"github.com/okian/salesboard/pkg/logger"
)

const (
	defaultCookieName   = "salesboard_client"
	defaultCookieMaxAge = 30 * 24 * time.Hour
)

type serverConfig struct {
	cookieName   string
	cookieMaxAge time.Duration
	renderer     ChartRenderer
	logger       logger.Logger
	toggleRate   float64
	toggleBurst  int
}

// Option configures the Server.
type Option func(*serverConfig)

// WithClientCookie sets the name and lifetime of the client id cookie.
func WithClientCookie(name string, maxAge time.Duration) Option {
	return func(c *serverConfig) {
		if name != "" {
			c.cookieName = name
		}
		if maxAge > 0 {
			c.cookieMaxAge = maxAge
		}
	}
}

// WithChartRenderer sets the SVG renderer behind /chart.svg.
func WithChartRenderer(r ChartRenderer) Option {
	return func(c *serverConfig) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithLogger sets the logger used for server-side failures.
func WithLogger(l logger.Logger) Option {
	return func(c *serverConfig) {
		c.logger = l
	}
}

// WithToggleRateLimit throttles theme toggles to perSecond per client with
// the given burst.
func WithToggleRateLimit(perSecond float64, burst int) Option {
	return func(c *serverConfig) {
		if perSecond > 0 && burst > 0 {
			c.toggleRate = perSecond
			c.toggleBurst = burst
		}
	}
}
