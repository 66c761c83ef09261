package route

import (
	"fmt"
	"sort"

	"microapp-routes/internal/diagnostic"
	"microapp-routes/internal/match"
)

// Validate reports structural problems of a route tree before it is rewritten.
// Unlike the rewrite, which stops at the first bound route with children, it
// reports every offending route, and it warns about attributes that look like
// a misspelled binding attribute.
func Validate(routes []*Route, bindingAlias string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	_ = Walk(routes, func(r *Route, parents []*Route) error {
		where := FullPath(r, parents)

		if app, ok := r.Binding(bindingAlias); ok && r.HasChildren() {
			res.AddError("bound_route_has_children",
				fmt.Sprintf("route bound to micro app %q declares %d child routes", app, len(r.Routes)),
				app, where)
		}

		keys := make([]string, 0, len(r.Attrs))
		for key := range r.Attrs {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			if key == bindingAlias {
				continue
			}

			if match.Similarity(key, bindingAlias) >= match.DefaultThreshold {
				res.AddWarning("binding_alias_typo",
					fmt.Sprintf("attribute %q is not the binding attribute", key),
					"", where, bindingAlias)
			}
		}

		return nil
	})

	return res
}
