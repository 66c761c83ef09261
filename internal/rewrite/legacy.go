package rewrite

import (
	"go.uber.org/zap"

	"microapp-routes/internal/common"
	"microapp-routes/internal/config"
	"microapp-routes/internal/route"
)

// registerLegacyApps keeps the base paths of apps registered by base routable.
// Only root routes ("/" with children) receive placeholders, and only apps
// sharing the host history type are considered.
func (rw *Rewriter) registerLegacyApps(routes []*route.Route, apps []config.App, historyType config.HistoryType, st *stats) {
	for _, root := range routes {
		if root == nil || root.Path != "/" || !root.HasChildren() {
			continue
		}

		for _, app := range apps {
			if common.IsEmpty(app.Base) {
				continue
			}

			if app.History.Or(historyType) != historyType {
				rw.logger.Debug("legacy app skipped, history type differs",
					zap.String("app", app.Name),
					zap.String("history", string(app.History)),
				)

				continue
			}

			for _, basePath := range app.Base {
				existing := findRouteWithPrefix(routes, basePath)
				if existing == nil {
					root.Routes = append([]*route.Route{newPlaceholderRoute(basePath)}, root.Routes...)
					st.placeholders++

					rw.logger.Debug("placeholder route registered",
						zap.String("app", app.Name),
						zap.String("base", basePath),
					)

					continue
				}

				// Routes the user declared under the base path stay, widened.
				existing.SetExact(false)
				st.widened++

				rw.logger.Debug("route widened for legacy app",
					zap.String("app", app.Name),
					zap.String("base", basePath),
					zap.String("path", existing.Path),
				)
			}
		}
	}
}

// findRouteWithPrefix returns the first route whose path lies under basePath.
// The search descends into the first route with children that does not match
// itself and returns whatever that subtree yields, without looking at the
// siblings that follow it.
func findRouteWithPrefix(routes []*route.Route, basePath string) *route.Route {
	for _, r := range routes {
		if r == nil {
			continue
		}

		if r.Path != "" && common.HasPathPrefix(basePath, r.Path) {
			return r
		}

		if r.HasChildren() {
			return findRouteWithPrefix(r.Routes, basePath)
		}
	}

	return nil
}

func newPlaceholderRoute(basePath string) *route.Route {
	r := &route.Route{
		Path:      basePath,
		Component: &route.Placeholder{Path: basePath},
	}
	r.SetExact(false)

	return r
}
