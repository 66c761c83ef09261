package rewrite

import (
	"maps"

	"go.uber.org/zap"

	"microapp-routes/internal/config"
	"microapp-routes/internal/route"
)

// attachMicroApps replaces the component of every bound route with a
// delegation. Routes are visited in pre-order; the first bound route with
// children aborts the pass.
func (rw *Rewriter) attachMicroApps(routes []*route.Route, opts config.Options, st *stats) error {
	base := opts.Base
	if base == "/" {
		base = ""
	}

	var patch func(routes []*route.Route) error

	patch = func(routes []*route.Route) error {
		for _, r := range routes {
			if r == nil {
				continue
			}

			if appName, ok := r.Binding(opts.RouteBindingAlias); ok {
				if r.HasChildren() {
					return &StructuralViolationError{AppName: appName, Path: r.Path, Children: len(r.Routes)}
				}

				settings := maps.Clone(r.Settings)
				if settings == nil {
					settings = map[string]any{}
				}

				r.SetExact(false)
				r.Component = &route.Delegation{
					AppName:  appName,
					Base:     base,
					History:  string(opts.HistoryType),
					Settings: settings,
				}
				st.attached++

				rw.logger.Debug("micro app attached",
					zap.String("app", appName),
					zap.String("path", r.Path),
					zap.String("base", base),
				)
			}

			if r.HasChildren() {
				if err := patch(r.Routes); err != nil {
					return err
				}
			}
		}

		return nil
	}

	return patch(routes)
}
