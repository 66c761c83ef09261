package config

import (
	"fmt"
	"strings"

	"microapp-routes/internal/diagnostic"
	"microapp-routes/internal/match"
	"microapp-routes/internal/route"
)

// Validate checks a config for values the rewriter cannot honor.
// Skipped legacy registrations are reported as infos, not errors.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	opts := cfg.Options()

	validateHistory(res, "history", opts.HistoryType)

	if !strings.HasPrefix(opts.Base, "/") {
		res.AddError("invalid_base", fmt.Sprintf("host base %q must start with \"/\"", opts.Base), "base", opts.Base)
	}

	if strings.TrimSpace(opts.RouteBindingAlias) == "" {
		res.AddError("empty_binding_alias", "routeBindingAlias must not be blank", "qiankun.master", "")
	} else if route.IsReservedKey(opts.RouteBindingAlias) {
		res.AddError("reserved_binding_alias",
			fmt.Sprintf("routeBindingAlias %q is a route field and can never bind a micro app", opts.RouteBindingAlias),
			"qiankun.master", "", DefaultRouteBindingAlias)
	}

	seenNames := map[string]struct{}{}

	for i, app := range opts.Apps {
		subject := app.Name
		if subject == "" {
			subject = fmt.Sprintf("apps[%d]", i)
			res.AddWarning("missing_app_name", "app has no name", subject, "")
		} else if _, ok := seenNames[app.Name]; ok {
			res.AddError("duplicate_app_name", fmt.Sprintf("duplicate app %q", app.Name), subject, "")
		} else {
			seenNames[app.Name] = struct{}{}
		}

		if app.History != "" {
			validateHistory(res, subject, app.History)
		}

		for _, base := range app.Base {
			if !strings.HasPrefix(base, "/") {
				res.AddError("invalid_base", fmt.Sprintf("app base %q must start with \"/\"", base), subject, base)
			}
		}

		if app.IsRegistrable() && app.History.Or(opts.HistoryType) != opts.HistoryType {
			res.AddInfo("history_mismatch",
				fmt.Sprintf("app history %q differs from host history %q, base paths are not registered",
					app.History, opts.HistoryType),
				subject, app.Base.First())
		}
	}

	return res
}

func validateHistory(res *diagnostic.Diagnostics, subject string, h HistoryType) {
	if h.IsValid() {
		return
	}

	known := make([]string, len(HistoryTypes))
	for i, t := range HistoryTypes {
		known[i] = string(t)
	}

	res.AddError("invalid_history_type", fmt.Sprintf("unknown history type %q", h), subject, "",
		match.Suggest(string(h), known, 0.5)...)
}
