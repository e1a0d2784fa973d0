package voronoi

import (
	"io"
	"log"
)

// config is the resolved set of options a Build call runs with.
type config struct {
	epsilon  float64
	validate bool
	logger   *log.Logger
}

func defaultConfig() config {
	return config{
		epsilon:  1e-4,
		validate: true,
		logger:   log.New(io.Discard, "", 0),
	}
}

// Option configures a Build call.
type Option func(*config)

// WithEpsilon overrides the tolerance Build uses for coincident-site
// detection and a circle event's predicted-trigger comparison against
// the sweep line (default 1e-4). The geometry kernel's own internal
// robustness constant is unaffected.
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.epsilon = eps }
}

// WithoutValidation skips Build's input validation (ErrNoSites,
// ErrDuplicateSite, ErrSiteOutOfBounds, ErrNonFiniteCoordinate,
// ErrDegenerateBounds). Intended for callers re-validating sites they
// already checked once, such as a relaxation loop rebuilding a diagram
// every iteration from sites it derived itself. Package lloyd does not
// set this on the caller's behalf — it forwards whatever voronoiOpts are
// passed in on every Build call it makes, so a caller wanting this
// skipped on relaxation steps must include it explicitly.
func WithoutValidation() Option {
	return func(c *config) { c.validate = false }
}

// WithLogger routes the sweep's per-event trace logging (site and circle
// events, vertex emission) to l. The default discards it.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}
