package route

import (
	"fmt"
	"maps"
	"reflect"
)

// Route is a node of the route tree.
type Route struct {
	// Path is the URL pattern of the route; empty means the route has none.
	Path string
	// Exact requires Path to match the whole URL. Nil means unset.
	Exact *bool
	// Component is what the route renders.
	Component Component
	// Routes are the child routes. Nil and empty are equivalent.
	Routes []*Route
	// Settings are passed through to a bound micro-app.
	Settings map[string]any
	// Attrs holds every other attribute of the route definition.
	Attrs map[string]any
}

// IsExact reports whether the route requires a full match.
func (r *Route) IsExact() bool {
	return r.Exact != nil && *r.Exact
}

// SetExact sets the exact flag.
func (r *Route) SetExact(exact bool) {
	r.Exact = &exact
}

// HasChildren reports whether the route declares child routes.
func (r *Route) HasChildren() bool {
	return len(r.Routes) > 0
}

// Attr returns the attribute stored under key.
func (r *Route) Attr(key string) (any, bool) {
	v, ok := r.Attrs[key]
	return v, ok
}

// SetAttr stores an attribute, allocating Attrs when needed.
func (r *Route) SetAttr(key string, value any) {
	if r.Attrs == nil {
		r.Attrs = map[string]any{}
	}

	r.Attrs[key] = value
}

// Binding returns the micro-app name bound to the route through the
// attribute key. Nil, "", false and numeric zero values leave the route unbound.
func (r *Route) Binding(key string) (string, bool) {
	v, ok := r.Attrs[key]
	if !ok || !truthy(v) {
		return "", false
	}

	if s, ok := v.(string); ok {
		return s, true
	}

	return fmt.Sprint(v), true
}

func truthy(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	default:
		return true
	}
}

// Clone returns a deep copy of the route and its children.
// Attribute and settings values are copied one level deep.
func (r *Route) Clone() *Route {
	if r == nil {
		return nil
	}

	c := &Route{
		Path:      r.Path,
		Component: cloneComponent(r.Component),
		Routes:    CloneAll(r.Routes),
		Settings:  maps.Clone(r.Settings),
		Attrs:     maps.Clone(r.Attrs),
	}

	if r.Exact != nil {
		c.SetExact(*r.Exact)
	}

	return c
}

// CloneAll deep copies a list of routes.
func CloneAll(routes []*Route) []*Route {
	if routes == nil {
		return nil
	}

	out := make([]*Route, len(routes))
	for i, r := range routes {
		out[i] = r.Clone()
	}

	return out
}

func cloneComponent(c Component) Component {
	switch v := c.(type) {
	case *Delegation:
		d := *v
		d.Settings = maps.Clone(v.Settings)

		return &d
	case *Placeholder:
		p := *v
		return &p
	default:
		return c
	}
}

// Walk visits routes depth-first in pre-order. Returning an error from fn
// stops the walk and returns that error.
func Walk(routes []*Route, fn func(r *Route, parents []*Route) error) error {
	return walk(routes, nil, fn)
}

func walk(routes []*Route, parents []*Route, fn func(r *Route, parents []*Route) error) error {
	for _, r := range routes {
		if r == nil {
			continue
		}

		if err := fn(r, parents); err != nil {
			return err
		}

		if r.HasChildren() {
			if err := walk(r.Routes, append(parents[:len(parents):len(parents)], r), fn); err != nil {
				return err
			}
		}
	}

	return nil
}

// FullPath returns a readable location for diagnostics, e.g. "/ > /shop".
func FullPath(r *Route, parents []*Route) string {
	out := ""
	for _, p := range append(parents[:len(parents):len(parents)], r) {
		path := p.Path
		if path == "" {
			path = "<no path>"
		}

		if out != "" {
			out += " > "
		}

		out += path
	}

	return out
}
