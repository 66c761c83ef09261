package rewrite

import (
	"go.uber.org/zap"

	"microapp-routes/internal/config"
	"microapp-routes/internal/route"
)

// Rewriter applies the legacy registration and attach passes to a route tree.
// A Rewriter keeps no state between calls.
type Rewriter struct {
	logger *zap.Logger
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithLogger sets the logger used to report rewrite decisions.
func WithLogger(logger *zap.Logger) Option {
	return func(rw *Rewriter) {
		if logger != nil {
			rw.logger = logger
		}
	}
}

// New creates a Rewriter.
func New(opts ...Option) *Rewriter {
	rw := &Rewriter{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(rw)
	}

	return rw
}

// Modify rewrites routes in place and returns them.
//
// Legacy registration runs first and only when some app declares a base
// path; the attach pass always runs afterwards. On error the returned tree is
// nil and routes may be partially rewritten, so callers must discard them.
func (rw *Rewriter) Modify(routes []*route.Route, opts config.Options) ([]*route.Route, error) {
	var stats stats

	if apps := opts.RegistrableApps(); len(apps) > 0 {
		rw.registerLegacyApps(routes, apps, opts.HistoryType, &stats)
	}

	err := rw.attachMicroApps(routes, opts, &stats)
	if err != nil {
		rw.logger.Error("route rewrite aborted", zap.Error(err))
		return nil, err
	}

	rw.logger.Info("routes rewritten",
		zap.Int("attached", stats.attached),
		zap.Int("placeholders", stats.placeholders),
		zap.Int("widened", stats.widened),
		zap.String("history", string(opts.HistoryType)),
	)

	return routes, nil
}

// Modify rewrites routes with a Rewriter built from opts.
func Modify(routes []*route.Route, cfg config.Options, opts ...Option) ([]*route.Route, error) {
	return New(opts...).Modify(routes, cfg)
}

type stats struct {
	attached     int
	placeholders int
	widened      int
}
